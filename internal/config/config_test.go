package config

import (
	"flag"
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHAPEVIEW_BACKEND", "")
	t.Setenv("SHAPEVIEW_CELL_WIDTH", "")
	t.Setenv("PORT", "")
	c := Load()
	if c.Backend != "gg" || c.CellW != 8 || c.CellH != 16 || c.Port != "3000" {
		t.Errorf("defaults = %+v", c)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", c.LogLevel)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SHAPEVIEW_BACKEND", "rasterx")
	t.Setenv("SHAPEVIEW_CELL_WIDTH", "10")
	t.Setenv("SHAPEVIEW_CELL_HEIGHT", "not-a-number")
	t.Setenv("SHAPEVIEW_LOG_LEVEL", "debug")
	c := Load()
	if c.Backend != "rasterx" || c.CellW != 10 || c.CellH != 16 {
		t.Errorf("env = %+v", c)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", c.LogLevel)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SHAPEVIEW_BACKEND", "rasterx")
	c := Load()
	fs := flag.NewFlagSet("shapeview", flag.ContinueOnError)
	c.BindViewer(fs)
	if err := fs.Parse([]string{"-backend", "gg", "-cell-height", "8", "-log-level", "warn"}); err != nil {
		t.Fatal(err)
	}
	if c.Backend != "gg" || c.CellH != 8 || c.LogLevel != slog.LevelWarn {
		t.Errorf("flags = %+v", c)
	}
	if err := fs.Parse([]string{"-log-level", "loud"}); err == nil {
		t.Error("expected error for bad level")
	}
}

func TestLaunchFile(t *testing.T) {
	t.Setenv("SHAPEVIEW_FILE", "")
	if c := Load(); c.Path != "" {
		t.Errorf("Path = %q, want empty", c.Path)
	}

	t.Setenv("SHAPEVIEW_FILE", "scene.shapefile")
	c := Load()
	if c.Path != "scene.shapefile" {
		t.Fatalf("Path = %q from env", c.Path)
	}
	fs := flag.NewFlagSet("shapeview", flag.ContinueOnError)
	c.BindViewer(fs)
	if err := fs.Parse([]string{"-file", "other.shapefile"}); err != nil {
		t.Fatal(err)
	}
	if c.Path != "other.shapefile" {
		t.Errorf("Path = %q, want flag value", c.Path)
	}
}
