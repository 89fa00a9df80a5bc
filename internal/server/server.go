// Package server exposes the parser and render engine over HTTP.
package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"shapeview/internal/config"
)

// New builds the render service app. Routes share no state, every request
// gets its own shape list and surface.
func New(cfg *config.Config, log *slog.Logger) *fiber.App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Shape Render Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(RequestID())
	if cfg.Environment != "test" {
		app.Use(Logger())
	}

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Shape Routes
	// ============================================================

	h := &Handler{cfg: cfg, log: log}
	app.Post("/parse", h.Parse)
	app.Post("/format", h.Format)
	app.Post("/render", h.Render)

	return app
}
