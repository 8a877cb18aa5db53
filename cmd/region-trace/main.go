package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ironsheep/region-trace/internal/cli"
	"github.com/ironsheep/region-trace/internal/config"
	"github.com/ironsheep/region-trace/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("region-trace - interactive region growing and contour tracing")
	fmt.Println()
	fmt.Println("Usage: region-trace [options] <image>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  REGIONTRACE_LOG_LEVEL=debug          Enable debug logging")
	fmt.Println("  REGIONTRACE_CHANNELS=1|3             Grayscale or RGB region growing (default 3)")
	fmt.Println("  REGIONTRACE_UPPER_BOUND=50           Seed tolerance, one value or one per channel")
	fmt.Println("  REGIONTRACE_STEP_DIFF=5              Step tolerance, one value or one per channel")
	fmt.Println("  REGIONTRACE_KERNEL=gaussian|fixed    Kernel used by the smooth command")
	fmt.Println("  REGIONTRACE_REGION_COLOR=#FFFFFF     Color of region pixels in display output")
	fmt.Println("  REGIONTRACE_PERIMETER_COLOR=#FF0000  Color of perimeter pixels in display output")
	fmt.Println("  REGIONTRACE_DISPLAY_PATH=display.png Default file written by display")
	fmt.Println("  REGIONTRACE_WORKERS=4                Seeds grown concurrently by one region command")
	fmt.Println()
	fmt.Println("Commands are read from stdin, one per line. Type \"help\" at the prompt for a list.")
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("region-trace %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}
	if len(os.Args) != 2 {
		usage()
		os.Exit(2)
	}
	path := os.Args[1]

	// Logging goes to stderr; stdout carries the interpreter's output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("region-trace v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cache := imaging.NewImageCache()
	src, err := cache.Open(path)
	if err != nil {
		log.Fatalf("Cannot open %s: %v", path, err)
	}
	fmt.Printf("loaded %s: %dx%d %s\n", path, src.Info.Width, src.Info.Height, src.Info.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interp := cli.New(cli.NewSession(cache, src, cfg), cfg, os.Stdout)
	if err := interp.Run(ctx, os.Stdin); err != nil {
		log.Fatalf("Interpreter error: %v", err)
	}
}
