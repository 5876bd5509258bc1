package main

import (
	"log"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"reelkit/creator-api/config"
	"reelkit/creator-api/handlers"
	"reelkit/creator-api/internal/ident"
	"reelkit/creator-api/internal/render"
	"reelkit/creator-api/internal/store"
	"reelkit/creator-api/middleware"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)

	ids := ident.New()
	projectStore := store.New(ids, logger)
	renderer := render.NewService(ids, cfg.RenderDelay, logger)
	handler := handlers.NewApplicationHandler(projectStore, renderer, ids, logger)

	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(logger))

	prometheus := fiberprometheus.New("creator-api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	handler.Register(app)

	logger.WithField("port", cfg.Port).Info("Starting Creator API")
	log.Fatal(app.Listen(":" + cfg.Port))
}
