package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finnbar-api/internal/application/dto"
	"github.com/jhoicas/finnbar-api/internal/domain/entity"
	"github.com/jhoicas/finnbar-api/internal/domain/repository"
)

// StoreHandler expone el directorio de tiendas y países (solo lectura).
type StoreHandler struct {
	directory repository.StoreDirectory
}

// NewStoreHandler construye el handler.
func NewStoreHandler(directory repository.StoreDirectory) *StoreHandler {
	return &StoreHandler{directory: directory}
}

// ListCountries godoc
// @Summary      Listar países soportados
// @Tags         directory
// @Produce      json
// @Success      200  {array}  dto.CountryResponse
// @Router       /api/countries [get]
func (h *StoreHandler) ListCountries(c *fiber.Ctx) error {
	codes := h.directory.CountryCodes()
	out := make([]dto.CountryResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, dto.CountryResponse{Code: code, Name: h.directory.CountryName(code)})
	}
	return c.JSON(out)
}

// ListStores godoc
// @Summary      Listar tiendas del directorio
// @Tags         directory
// @Produce      json
// @Param        country  query  string  false  "Código de país de dos letras; vacío = todas"
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/stores [get]
func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	country := c.Query("country")

	var stores []entity.Store
	if country == "" {
		stores = h.directory.AllStores()
	} else {
		stores = h.directory.StoresForCountry(country)
	}

	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{
			BuCode:      s.BuCode,
			Name:        s.Name,
			CountryCode: s.CountryCode,
			Country:     s.Country,
			Coordinates: s.Coordinates,
		})
	}
	return c.JSON(out)
}
