package ports

import (
	"context"

	"github.com/jhoicas/finnbar-api/internal/application/dto"
)

// AvailabilityFeed define el puerto de salida hacia el proveedor de
// disponibilidad. Cualquier adaptador (cliente Ingka real, mock de tests)
// debe implementar esta interfaz: la aplicación solo conoce este contrato,
// no el formato de wire del proveedor.
type AvailabilityFeed interface {
	// FetchAvailabilities consulta la disponibilidad de itemNos (ya
	// normalizados, sin puntos) en el país dado y devuelve solo los registros
	// de tipo tienda, con defaults aplicados en los campos opcionales.
	// Una sola petición saliente por invocación; sin reintentos ni caché.
	// El contexto debe llevar timeout para evitar bloqueos indefinidos.
	FetchAvailabilities(ctx context.Context, countryCode string, itemNos []string) ([]dto.AvailabilityRecord, error)
}
