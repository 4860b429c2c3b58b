package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/config"
	"github.com/joshvictor1024/mandelbrotset/pkg/logging"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
	"github.com/joshvictor1024/mandelbrotset/pkg/plot"
)

// progressStep is how often, in percent of rows, progress is logged.
const progressStep = 10

type displayFunc func(res *mandelbrot.Result, cm *colormap.Colormap, scale int) error

// scene is one render: compute the grid, write the figure, show it.
type scene struct {
	file     config.File
	logger   *logging.Logger
	displays map[string]displayFunc
}

func newScene(file config.File, logger *logging.Logger) *scene {
	return &scene{
		file:   file,
		logger: logger,
		displays: map[string]displayFunc{
			config.DisplayWindow:   showWindow,
			config.DisplayTerminal: showTerminal,
		},
	}
}

// render runs the whole pipeline. display is false in watch mode.
func (s *scene) render(display bool) (*mandelbrot.Result, error) {
	cfg, err := s.file.Mandelbrot()
	if err != nil {
		return nil, err
	}
	if err := s.file.Render.Validate(); err != nil {
		return nil, err
	}
	cm, err := colormap.Get(s.file.Render.Colormap)
	if err != nil {
		return nil, err
	}

	log := s.logger.WithField("run", uuid.New().String())
	log.Info("computing %dx%d grid, real %v, imaginary %v, limit %d",
		cfg.CoordinateCount, cfg.CoordinateCount, cfg.Real, cfg.Imag, cfg.IterationLim)

	start := time.Now()
	opts := []mandelbrot.Option{mandelbrot.WithProgress(progressLogger(log))}
	if s.file.Render.Workers > 0 {
		opts = append(opts, mandelbrot.WithWorkers(s.file.Render.Workers))
	}
	res, err := mandelbrot.Compute(cfg, opts...)
	if err != nil {
		return nil, err
	}
	lo, hi := res.Bounds()
	log.Info("computed in %s, counts %d..%d", time.Since(start).Round(time.Millisecond), lo, hi)

	if out := s.file.Render.Output; out != "" {
		img := plot.Figure(res, cm, plot.FigureOptions{Scale: s.file.Render.Scale})
		if err := plot.SavePNG(out, img); err != nil {
			return nil, err
		}
		log.Info("wrote %s", out)
	}

	if !display {
		return res, nil
	}
	show, ok := s.displays[s.file.Render.Display]
	if !ok {
		return res, nil
	}
	log.Debug("showing %s display", s.file.Render.Display)
	if err := show(res, cm, s.file.Render.Scale); err != nil {
		return nil, err
	}
	return res, nil
}

// progressLogger logs at debug level each time another progressStep
// percent of rows is finished.
func progressLogger(log *logging.Logger) mandelbrot.ProgressFunc {
	if !log.Enabled(logging.LevelDebug) {
		return nil
	}
	next := progressStep
	return func(rowsDone, rows int) {
		pct := rowsDone * 100 / rows
		if pct < next && rowsDone < rows {
			return
		}
		log.Debug("progress %d%% (%d/%d rows)", pct, rowsDone, rows)
		next = pct - pct%progressStep + progressStep
	}
}

func showTerminal(res *mandelbrot.Result, cm *colormap.Colormap, _ int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	plot.NewTerminal(screen, res, cm).Run()
	return nil
}
