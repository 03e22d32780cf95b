package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finnbar-api/internal/application/dto"
	"github.com/jhoicas/finnbar-api/internal/application/usecase"
	"github.com/jhoicas/finnbar-api/internal/domain"
)

// AvailabilityHandler expone la consulta de disponibilidad contra el proveedor.
type AvailabilityHandler struct {
	uc *usecase.AvailabilityUseCase
}

// NewAvailabilityHandler construye el handler.
func NewAvailabilityHandler(uc *usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Check godoc
// @Summary      Consultar disponibilidad de productos por país
// @Tags         availability
// @Produce      json
// @Param        country  query  string  true   "Código de país de dos letras (ej. de)"
// @Param        items    query  string  true   "Ids de producto separados por coma (con o sin puntos)"
// @Param        store    query  string  false  "buCode de tienda para filtrar"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/availability [get]
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	country := strings.TrimSpace(c.Query("country"))
	if country == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "country es requerido"})
	}
	items := splitItems(c.Query("items"))
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items es requerido (ids separados por coma)"})
	}
	store := strings.TrimSpace(c.Query("store"))

	results, err := h.uc.Check(c.UserContext(), country, items, store)
	if err != nil {
		return mapUpstreamError(c, err)
	}

	out := make([]dto.StockInfoResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.StockInfoResponse{
			ProductID:   r.ProductID,
			BuCode:      r.BuCode,
			StoreName:   r.StoreName,
			CountryCode: r.CountryCode,
			Country:     r.Country,
			Stock:       r.Stock,
			Probability: r.Probability,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return c.JSON(dto.AvailabilityResponse{
		Country: strings.ToLower(country),
		Count:   len(out),
		Results: out,
	})
}

// mapUpstreamError traduce los fallos tipados de la consulta a estados HTTP.
// Ninguno se reintenta aquí: el error del proveedor se refleja tal cual.
func mapUpstreamError(c *fiber.Ctx, err error) error {
	var httpErr *domain.UpstreamHTTPError
	switch {
	case errors.As(err, &httpErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "UPSTREAM_HTTP",
			Message: fmt.Sprintf("el proveedor devolvió HTTP %d", httpErr.StatusCode),
		})
	case errors.Is(err, domain.ErrMalformedResponse):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "UPSTREAM_MALFORMED",
			Message: "respuesta del proveedor sin la estructura esperada",
		})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{
			Code:    "UPSTREAM_TIMEOUT",
			Message: "timeout consultando al proveedor",
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "UPSTREAM_NETWORK",
			Message: err.Error(),
		})
	}
}

// splitItems separa la lista de ids por coma descartando vacíos. La
// normalización fina (espacios, puntos) es del caso de uso.
func splitItems(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
