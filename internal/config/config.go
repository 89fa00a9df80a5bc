package config

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config is shared by the terminal viewer and the render service. Values come
// from SHAPEVIEW_* environment variables and can be overridden by flags.
type Config struct {
	// Viewer
	Path    string
	Dir     string
	Backend string
	CellW   int
	CellH   int
	LogFile string

	// Render service
	Port          string
	Environment   string
	ReadTimeout   int
	WriteTimeout  int
	MaxRenderSize int

	LogLevel slog.Level
}

// Load reads the environment.
func Load() *Config {
	return &Config{
		Path:          getEnv("SHAPEVIEW_FILE", ""),
		Dir:           getEnv("SHAPEVIEW_DIR", "."),
		Backend:       getEnv("SHAPEVIEW_BACKEND", "gg"),
		CellW:         getEnvAsInt("SHAPEVIEW_CELL_WIDTH", 8),
		CellH:         getEnvAsInt("SHAPEVIEW_CELL_HEIGHT", 16),
		LogFile:       getEnv("SHAPEVIEW_LOG", ""),
		Port:          getEnv("PORT", "3000"),
		Environment:   getEnv("ENV", "development"),
		ReadTimeout:   getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:  getEnvAsInt("WRITE_TIMEOUT", 10),
		MaxRenderSize: getEnvAsInt("SHAPEVIEW_MAX_RENDER", 4096),
		LogLevel:      parseLevel(getEnv("SHAPEVIEW_LOG_LEVEL", "info")),
	}
}

// BindViewer registers the viewer flags on fs with the current values as
// defaults.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "file", c.Path, "shape file to open at launch")
	fs.StringVar(&c.Dir, "dir", c.Dir, "directory listed in the side panel")
	fs.StringVar(&c.Backend, "backend", c.Backend, "render backend: gg or rasterx")
	fs.IntVar(&c.CellW, "cell-width", c.CellW, "surface pixels per terminal column")
	fs.IntVar(&c.CellH, "cell-height", c.CellH, "surface pixels per terminal row")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write debug log to this file")
	fs.Func("log-level", "debug, info, warn or error", c.setLevel)
}

// BindServer registers the render service flags on fs.
func (c *Config) BindServer(fs *flag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "listen port")
	fs.StringVar(&c.Backend, "backend", c.Backend, "default render backend: gg or rasterx")
	fs.IntVar(&c.MaxRenderSize, "max-size", c.MaxRenderSize, "largest accepted render width or height")
	fs.Func("log-level", "debug, info, warn or error", c.setLevel)
}

func (c *Config) setLevel(s string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	c.LogLevel = l
	return nil
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
