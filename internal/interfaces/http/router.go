package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finnbar-api/internal/application/usecase"
	"github.com/jhoicas/finnbar-api/internal/domain/repository"
	"github.com/jhoicas/finnbar-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Directory    repository.StoreDirectory
	Availability *usecase.AvailabilityUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API. Todas son públicas y de solo lectura:
// el único credencial del sistema es el x-client-id hacia el proveedor, que
// vive en el adaptador saliente.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	api := app.Group("/api")

	storeHandler := NewStoreHandler(deps.Directory)
	api.Get("/countries", storeHandler.ListCountries)
	api.Get("/stores", storeHandler.ListStores)

	availabilityHandler := NewAvailabilityHandler(deps.Availability)
	api.Get("/availability", availabilityHandler.Check)
}
