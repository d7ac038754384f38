package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/edge-detect/internal/config"
	"github.com/ironsheep/edge-detect/internal/edgedetect"
	"github.com/ironsheep/edge-detect/internal/imaging"
	"github.com/ironsheep/edge-detect/internal/logging"
	"github.com/ironsheep/edge-detect/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "edge-detect %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printHelp(stdout)
			return 0
		}
	}

	serve := false
	if len(args) > 0 && args[0] == "serve" {
		serve = true
		args = args[1:]
	}

	cfg, err := config.FromEnv(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "edge-detect: %v\n", err)
		return 1
	}

	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log, closer, err := logging.Open(cfg.LogSink, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "edge-detect: %v\n", err)
		return 1
	}
	defer closer.Close()

	proc, err := edgedetect.New(cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "edge-detect: %v\n", err)
		return 1
	}

	if serve {
		log.Debug().Str("version", Version).Str("commit", GitCommit).Stringer("processor", proc).Msg("Starting MCP server")
		if err := server.New(proc, log).Serve(stdin, stdout); err != nil {
			log.Error().Err(err).Msg("Server error")
			return 1
		}
		return 0
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "edge-detect: no image paths given")
		fs.Usage()
		return 2
	}

	status := 0
	for _, path := range fs.Args() {
		output, err := proc.ProcessFile(path)
		if err != nil {
			fmt.Fprintln(stdout, edgedetect.Message(err))
			status = 1
			continue
		}
		fmt.Fprintln(stdout, output)
	}
	return status
}

// newFlagSet binds command-line overrides onto cfg, which already holds the
// environment configuration.
func newFlagSet(cfg *config.Config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("edge-detect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&cfg.LowThreshold, "low", cfg.LowThreshold, "low Canny hysteresis threshold")
	fs.Float64Var(&cfg.HighThreshold, "high", cfg.HighThreshold, "high Canny hysteresis threshold")
	fs.BoolVar(&cfg.L2Gradient, "l2", cfg.L2Gradient, "use the L2 gradient magnitude")
	fs.Float64Var(&cfg.BlurRadius, "blur", cfg.BlurRadius, "Gaussian pre-blur radius (0 disables)")
	fs.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "suffix appended to the source path for the output")
	fs.IntVar(&cfg.JPEGQuality, "quality", cfg.JPEGQuality, "JPEG quality 1-100")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Func("gray", fmt.Sprintf("grayscale conversion: bt601 or lightness (default %s)", cfg.GrayMode), func(s string) error {
		mode, err := imaging.ParseGrayMode(s)
		if err != nil {
			return err
		}
		cfg.GrayMode = mode
		return nil
	})
	fs.Func("backend", fmt.Sprintf("pipeline backend: go or opencv (default %s)", cfg.Backend), func(s string) error {
		cfg.Backend = config.Backend(s)
		return nil
	})

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: edge-detect [options] <image>...")
		fmt.Fprintln(stderr, "       edge-detect serve [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	return fs
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "edge-detect - Canny edge detection for image files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: edge-detect [options] <image>...")
	fmt.Fprintln(w, "       edge-detect serve [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Each image is written as a grayscale edge map to <image>_processed.jpg")
	fmt.Fprintln(w, "and the output path (or an \"Error: ...\" line) is printed per image.")
	fmt.Fprintln(w, "The serve command runs an MCP server over stdin/stdout instead.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w, "  -low, -high      Canny thresholds (default 100, 200)")
	fmt.Fprintln(w, "  -l2              Use the L2 gradient magnitude")
	fmt.Fprintln(w, "  -blur            Gaussian pre-blur radius")
	fmt.Fprintln(w, "  -gray            bt601 or lightness")
	fmt.Fprintln(w, "  -suffix          Output suffix (default _processed.jpg)")
	fmt.Fprintln(w, "  -quality         JPEG quality (default 95)")
	fmt.Fprintln(w, "  -backend         go or opencv")
	fmt.Fprintln(w, "  -log-level       debug, info, warn or error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  EDGE_DETECT_LOW, EDGE_DETECT_HIGH, EDGE_DETECT_L2_GRADIENT,")
	fmt.Fprintln(w, "  EDGE_DETECT_BLUR_RADIUS, EDGE_DETECT_GRAY_MODE, EDGE_DETECT_SUFFIX,")
	fmt.Fprintln(w, "  EDGE_DETECT_JPEG_QUALITY, EDGE_DETECT_AUTO_ORIENT, EDGE_DETECT_BACKEND,")
	fmt.Fprintln(w, "  EDGE_DETECT_LOG_LEVEL, EDGE_DETECT_LOG_SINK (stderr or syslog)")
}
