package server

import (
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/hog-tools-mcp/internal/imaging"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel = "HOG_MCP_LOG_LEVEL"
	EnvMaxWidth = "HOG_MCP_MAX_WIDTH"
	EnvCellSize = "HOG_MCP_CELL_SIZE"
	EnvBins     = "HOG_MCP_BINS"
)

// Default HOG parameters used when neither the environment nor the tool call
// provides one.
const (
	DefaultCellSize = 8
	DefaultBins     = 9
)

// Config holds server-wide defaults. Tool arguments override them per call.
type Config struct {
	// Debug enables per-request logging to stderr.
	Debug bool

	// MaxWidth caps the analyzed image width; 0 disables scaling.
	MaxWidth int

	// CellSize is the default cell side in pixels.
	CellSize int

	// Bins is the default number of orientation bins.
	Bins int
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxWidth: imaging.DefaultMaxWidth,
		CellSize: DefaultCellSize,
		Bins:     DefaultBins,
	}
}

// ConfigFromEnv builds a Config from the HOG_MCP_* environment variables.
// Malformed values are logged and replaced by the built-in default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Debug = os.Getenv(EnvLogLevel) == "debug"
	cfg.MaxWidth = envInt(EnvMaxWidth, cfg.MaxWidth, 0)
	cfg.CellSize = envInt(EnvCellSize, cfg.CellSize, 1)
	cfg.Bins = envInt(EnvBins, cfg.Bins, 1)
	return cfg
}

// envInt reads an integer variable that must be at least minimum.
func envInt(name string, def, minimum int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minimum {
		log.Printf("Ignoring %s=%q: want an integer >= %d, using %d", name, raw, minimum, def)
		return def
	}
	return v
}
