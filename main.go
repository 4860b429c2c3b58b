// Command mandelbrot renders the Mandelbrot set over a chosen region of
// the complex plane to a PNG file, an SDL window or the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/config"
	"github.com/joshvictor1024/mandelbrotset/pkg/logging"
)

// Version information (set via ldflags during build).
var version = "dev"

const watchDebounce = 200 * time.Millisecond

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// rangeFlag parses "min,max".
type rangeFlag []float64

func (r *rangeFlag) String() string {
	if r == nil || len(*r) != 2 {
		return ""
	}
	return fmt.Sprintf("%g,%g", (*r)[0], (*r)[1])
}

func (r *rangeFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("want min,max, got %q", s)
	}
	v := make([]float64, 2)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("bad bound %q: %w", p, err)
		}
		v[i] = f
	}
	*r = v
	return nil
}

type options struct {
	configPath  string
	logLevel    string
	watch       bool
	showVersion bool

	// overrides, applied only when the flag was given
	real, imag rangeFlag
	iter, n    int
	cmap       string
	scale      int
	out        string
	display    string
	workers    int
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to a .toml or .yaml configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.watch, "watch", false, "Re-render -out whenever the configuration file changes")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Var(&opts.real, "real", "Real axis range as min,max")
	fs.Var(&opts.imag, "imag", "Imaginary axis range as min,max")
	fs.IntVar(&opts.iter, "iter", 0, "Iteration limit")
	fs.IntVar(&opts.n, "n", 0, "Samples per axis (the grid is n x n)")
	fs.StringVar(&opts.cmap, "colormap", "", "Color scale: "+strings.Join(colormap.Names(), ", ")+" (append _r to reverse)")
	fs.IntVar(&opts.scale, "scale", 0, "Pixels per grid cell in the PNG output")
	fs.StringVar(&opts.out, "out", "", "Write the figure to this PNG file")
	fs.StringVar(&opts.display, "display", "", "Display: window, terminal or none")
	fs.IntVar(&opts.workers, "workers", 0, "Compute goroutines (default one per CPU)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mandelbrot [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  mandelbrot                                   Classic view in a window\n")
		fmt.Fprintf(stderr, "  mandelbrot -display none -out set.png        Write a PNG only\n")
		fmt.Fprintf(stderr, "  mandelbrot -real -0.8,-0.7 -imag 0.05,0.15   Seahorse valley\n")
		fmt.Fprintf(stderr, "  mandelbrot -config view.toml -watch          Re-render on every save\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// apply writes the explicitly given flags over f.
func (o *options) apply(f *config.File) {
	if o.set["real"] {
		f.RealRange = o.real
	}
	if o.set["imag"] {
		f.ImagRange = o.imag
	}
	if o.set["iter"] {
		f.IterationLim = o.iter
	}
	if o.set["n"] {
		f.CoordinateCount = o.n
	}
	if o.set["colormap"] {
		f.Render.Colormap = o.cmap
	}
	if o.set["scale"] {
		f.Render.Scale = o.scale
	}
	if o.set["out"] {
		f.Render.Output = o.out
	}
	if o.set["display"] {
		f.Render.Display = o.display
	}
	if o.set["workers"] {
		f.Render.Workers = o.workers
	}
}

// load reads the config file, if any, and applies the flags on top.
func (o *options) load() (config.File, error) {
	f := config.Default()
	if o.configPath != "" {
		var err error
		if f, err = config.Load(o.configPath); err != nil {
			return config.File{}, err
		}
	}
	o.apply(&f)
	return f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "mandelbrot %s\n", version)
		return 0
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := logging.New(stderr, level, "mandelbrot")

	file, err := opts.load()
	if err != nil {
		logger.Error("%v", err)
		return 1
	}

	if opts.watch {
		if err := watch(opts, file, logger); err != nil {
			logger.Error("%v", err)
			return 1
		}
		return 0
	}

	if _, err := newScene(file, logger).render(true); err != nil {
		logger.Error("%v", err)
		return 1
	}
	return 0
}

// watch renders once and then again after every change to the config
// file, until interrupted. Only the PNG output is produced.
func watch(opts *options, file config.File, logger *logging.Logger) error {
	if opts.configPath == "" {
		return errors.New("-watch needs -config")
	}
	if file.Render.Output == "" {
		return errors.New("-watch needs an output file (-out or render.output)")
	}
	if file.Render.Display != config.DisplayNone {
		logger.Warn("display %q is ignored in watch mode", file.Render.Display)
	}
	log := logger.WithComponent("watch")

	w, err := config.NewWatcher(opts.configPath)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := newScene(file, logger).render(false); err != nil {
		log.Error("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("watching %s", opts.configPath)
	return w.Run(ctx, watchDebounce, func() {
		file, err := opts.load()
		if err != nil {
			log.Error("reloading: %v", err)
			return
		}
		log.Info("%s changed, rendering", opts.configPath)
		if _, err := newScene(file, logger).render(false); err != nil {
			log.Error("%v", err)
		}
	})
}
