package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/finnbar-api/internal/application/ports"
	"github.com/jhoicas/finnbar-api/internal/domain"
	"github.com/jhoicas/finnbar-api/internal/domain/entity"
	"github.com/jhoicas/finnbar-api/internal/domain/repository"
)

// AvailabilityUseCase consulta de disponibilidad de productos por país.
// No guarda estado mutable propio: llamadas concurrentes con argumentos
// distintos son seguras entre sí.
type AvailabilityUseCase struct {
	feed      ports.AvailabilityFeed
	directory repository.StoreDirectory
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(feed ports.AvailabilityFeed, directory repository.StoreDirectory) *AvailabilityUseCase {
	return &AvailabilityUseCase{feed: feed, directory: directory}
}

// Check consulta la disponibilidad de productIDs en las tiendas del país.
// buCode vacío significa sin filtro por tienda. El resultado llega ordenado
// ascendente por (StoreName, ProductID) y puede ser vacío. Sin ids útiles la
// consulta ni siquiera sale a la red.
func (uc *AvailabilityUseCase) Check(ctx context.Context, countryCode string, productIDs []string, buCode string) ([]entity.StockInfo, error) {
	cc := strings.ToLower(strings.TrimSpace(countryCode))
	itemNos := normalizeProductIDs(productIDs)
	if len(itemNos) == 0 {
		return []entity.StockInfo{}, nil
	}

	records, err := uc.feed.FetchAvailabilities(ctx, cc, itemNos)
	if err != nil {
		return nil, err
	}

	// Lookup buCode → Store para denormalizar metadatos sin re-join.
	stores := uc.directory.StoresForCountry(cc)
	lookup := make(map[string]entity.Store, len(stores))
	for _, s := range stores {
		lookup[s.BuCode] = s
	}

	results := make([]entity.StockInfo, 0, len(records))
	for _, rec := range records {
		store, ok := lookup[rec.BuCode]
		if !ok {
			// Tienda fuera del país consultado o desconocida para el directorio.
			continue
		}

		stock := 0
		probability := ""
		updatedAt := ""
		if rec.CashCarry {
			stock = rec.Quantity
			probability = rec.Probability
			if rec.UpdateDateTime != "" {
				updatedAt = formatUpdateTime(rec.UpdateDateTime)
			}
		}
		// El upstream a veces reporta cantidad positiva junto a OUT_OF_STOCK;
		// el stock se fuerza a cero en ese caso.
		if probability == domain.ProbabilityOutOfStock {
			stock = 0
		}

		results = append(results, entity.StockInfo{
			ProductID:   rec.ProductID,
			BuCode:      rec.BuCode,
			StoreName:   store.Name,
			CountryCode: store.CountryCode,
			Country:     store.Country,
			Stock:       stock,
			Probability: probability,
			UpdatedAt:   updatedAt,
		})
	}

	if buCode != "" {
		filtered := make([]entity.StockInfo, 0, len(results))
		for _, r := range results {
			if r.BuCode == buCode {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].StoreName != results[j].StoreName {
			return results[i].StoreName < results[j].StoreName
		}
		return results[i].ProductID < results[j].ProductID
	})

	return results, nil
}

// normalizeProductIDs recorta espacios y elimina los puntos internos: el
// upstream acepta "306.043.67" y "30604367" y la forma sin puntos es la
// canónica para el request. Ids que quedan vacíos se descartan; fuera de eso
// el valor se envía tal cual (passthrough opaco, sin validación adicional).
func normalizeProductIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		normalized := strings.ReplaceAll(strings.TrimSpace(id), ".", "")
		if normalized == "" {
			continue
		}
		out = append(out, normalized)
	}
	return out
}

// formatUpdateTime reduce el timestamp del upstream a "YYYY-MM-DD HH:MM".
// Un valor solo-fecha (sin separador 'T') pasa sin cambios. Ante cualquier
// forma inesperada devuelve el valor crudo: un timestamp feo nunca debe
// tumbar la consulta completa.
func formatUpdateTime(raw string) string {
	date, clock, found := strings.Cut(raw, "T")
	if !found {
		return raw
	}
	if len(date) != len("2006-01-02") || len(clock) < len("15:04") {
		return raw
	}
	return date + " " + clock[:5]
}
