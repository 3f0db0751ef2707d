package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/ironsheep/hog-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hog-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("hog-tools-mcp - MCP server for Histogram of Oriented Gradients features")
			fmt.Println()
			fmt.Println("Usage: hog-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=N        Scale images to at most N pixels wide (default %d, 0 disables)\n", server.EnvMaxWidth, server.DefaultConfig().MaxWidth)
			fmt.Printf("  %s=N        Default cell size in pixels (default %d)\n", server.EnvCellSize, server.DefaultCellSize)
			fmt.Printf("  %s=N             Default orientation bin count (default %d)\n", server.EnvBins, server.DefaultBins)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("HOG MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: cell_size=%d bins=%d max_width=%d", cfg.CellSize, cfg.Bins, cfg.MaxWidth)
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
