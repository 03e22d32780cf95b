// Package storedata carga el directorio estático de tiendas y países que
// viaja empaquetado en el binario (stores.json vía go:embed).
package storedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/finnbar-api/internal/domain/entity"
	"github.com/jhoicas/finnbar-api/internal/domain/repository"
)

//go:embed stores.json
var rawDataset []byte

// Verificación en tiempo de compilación del contrato de directorio.
var _ repository.StoreDirectory = (*Directory)(nil)

// dataset forma del archivo stores.json.
type dataset struct {
	Stores []struct {
		BuCode      string    `json:"buCode"`
		Name        string    `json:"name"`
		CountryCode string    `json:"countryCode"`
		Country     string    `json:"country"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"stores"`
	Countries map[string]string `json:"countries"`
}

// Directory directorio en memoria de tiendas y países. Solo lectura después
// de construirse; seguro para uso concurrente.
type Directory struct {
	stores    []entity.Store
	countries map[string]string
	codes     []string // ordenados lexicográficamente
}

// Load construye el directorio desde el dataset empaquetado. Si falla, el
// proceso no debe arrancar: el dataset viene con el binario, no del usuario.
func Load() (*Directory, error) {
	return NewFromJSON(rawDataset)
}

// NewFromJSON construye un directorio desde un dataset arbitrario con la
// misma forma que stores.json. Permite sustituir el directorio en tests.
func NewFromJSON(raw []byte) (*Directory, error) {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("storedata: dataset inválido: %w", err)
	}
	if len(ds.Stores) == 0 || len(ds.Countries) == 0 {
		return nil, fmt.Errorf("storedata: dataset sin tiendas o sin países")
	}

	stores := make([]entity.Store, 0, len(ds.Stores))
	for _, s := range ds.Stores {
		stores = append(stores, entity.Store{
			BuCode:      s.BuCode,
			Name:        s.Name,
			CountryCode: s.CountryCode,
			Country:     s.Country,
			Coordinates: s.Coordinates,
		})
	}

	codes := make([]string, 0, len(ds.Countries))
	for code := range ds.Countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &Directory{stores: stores, countries: ds.Countries, codes: codes}, nil
}

// CountryCodes devuelve los códigos soportados, ordenados. La copia evita que
// el caller mute el estado interno.
func (d *Directory) CountryCodes() []string {
	out := make([]string, len(d.codes))
	copy(out, d.codes)
	return out
}

// CountryName devuelve el nombre del país; código desconocido cae al propio
// código en mayúsculas.
func (d *Directory) CountryName(code string) string {
	if name, ok := d.countries[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// StoresForCountry devuelve las tiendas del país, en el orden de inserción
// del dataset. El código se normaliza a minúsculas y sin espacios alrededor.
func (d *Directory) StoresForCountry(code string) []entity.Store {
	normalized := strings.ToLower(strings.TrimSpace(code))
	out := make([]entity.Store, 0, 8)
	for _, s := range d.stores {
		if s.CountryCode == normalized {
			out = append(out, s)
		}
	}
	return out
}

// AllStores devuelve el directorio completo en el orden del dataset.
func (d *Directory) AllStores() []entity.Store {
	out := make([]entity.Store, len(d.stores))
	copy(out, d.stores)
	return out
}
