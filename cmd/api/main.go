package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/finnbar-api/internal/application/usecase"
	"github.com/jhoicas/finnbar-api/internal/infrastructure/ingka"
	"github.com/jhoicas/finnbar-api/internal/infrastructure/storedata"
	httpRouter "github.com/jhoicas/finnbar-api/internal/interfaces/http"
	"github.com/jhoicas/finnbar-api/pkg/config"
	"github.com/jhoicas/finnbar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El directorio viaja empaquetado en el binario; si no carga, el proceso
	// no puede arrancar.
	directory, err := storedata.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("carga del directorio de tiendas")
	}
	log.Info().
		Int("stores", len(directory.AllStores())).
		Int("countries", len(directory.CountryCodes())).
		Msg("directorio de tiendas cargado")

	feed := ingka.NewClient(ingka.Config{
		BaseURL:  cfg.Ingka.BaseURL,
		ClientID: cfg.Ingka.ClientID,
		Timeout:  cfg.Ingka.Timeout(),
	})
	availabilityUC := usecase.NewAvailabilityUseCase(feed, directory)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FINNBAR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Directory:    directory,
		Availability: availabilityUC,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
