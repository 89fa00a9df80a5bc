package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"shapeview/internal/config"
	"shapeview/internal/server"
)

// ============================================================
// Shape Render Service
// ============================================================

func main() {
	cfg := config.Load()
	fs := flag.NewFlagSet("shaperender", flag.ExitOnError)
	cfg.BindServer(fs)
	_ = fs.Parse(os.Args[1:])

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	gg.SetLogger(logger)

	app := server.New(cfg, logger)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Shape Render Service on %s (env: %s, backend: %s)", addr, cfg.Environment, cfg.Backend)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
