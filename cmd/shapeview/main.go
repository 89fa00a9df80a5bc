package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"

	"shapeview/internal/config"
	"shapeview/internal/interact"
	"shapeview/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource the viewer opens so that deferred closes happen
// before main exits.
func run(args []string) error {
	cfg := config.Load()
	fs := flag.NewFlagSet("shapeview", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: shapeview [flags] [file.shapefile]")
		fs.PrintDefaults()
	}
	cfg.BindViewer(fs)
	_ = fs.Parse(args)
	if fs.NArg() > 0 {
		cfg.Path = fs.Arg(0)
	}

	// stdout belongs to the terminal UI, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel}))
	gg.SetLogger(logger)
	interact.SetLogger(logger)

	var (
		m   tui.Model
		err error
	)
	if cfg.Path != "" {
		m, err = tui.NewWithPath(cfg, logger, cfg.Path)
	} else {
		m, err = tui.New(cfg, logger)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}
