package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"fragvec/internal/preview"
	"fragvec/internal/render"
	"fragvec/internal/shape"
)

// ConfigError reports an invalid run configuration. It is returned
// before any input has been read.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "config: " + e.Reason }

// Config describes one pipeline run.
type Config struct {
	Inputs  []string // fragment tables, one per output
	Outputs []string // SVG paths; each PNG name derives from its SVG

	// Preview shows each loaded collection in the terminal viewer
	// before export. Preview failures are logged, never fatal.
	Preview bool

	// KeepGoing processes the remaining pairs after a failure and
	// reports the collected errors at the end. The default is to
	// stop at the first failed pair.
	KeepGoing bool

	Logger *slog.Logger
}

// Run processes every input/output pair in order: load, preview when
// asked, regularize, inspect, close, export SVG and PNG.
func Run(cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if len(cfg.Inputs) != len(cfg.Outputs) {
		return &ConfigError{Reason: fmt.Sprintf("got %d inputs but %d outputs", len(cfg.Inputs), len(cfg.Outputs))}
	}
	var failed []error
	for i, in := range cfg.Inputs {
		out := cfg.Outputs[i]
		log.Info("processing", "in", in, "out", out)
		if err := runPair(cfg, log, in, out); err != nil {
			if !cfg.KeepGoing {
				return err
			}
			log.Error("pair failed, continuing", "in", in, "err", err)
			failed = append(failed, err)
		}
	}
	return errors.Join(failed...)
}

func runPair(cfg Config, log *slog.Logger, in, out string) error {
	c, err := shape.Load(in)
	if err != nil {
		return err
	}
	log.Debug("loaded", "in", in, "shapes", len(c), "subpaths", c.NumSubPaths(), "points", c.NumPoints())
	if cfg.Preview {
		if err := preview.Show(c, filepath.Base(in)); err != nil {
			log.Warn("preview unavailable", "in", in, "err", err)
		}
	}
	c = shape.Regularize(c)
	shape.Inspect(c)
	c = shape.CloseAll(c)
	if err := render.SaveSVG(out, c); err != nil {
		return err
	}
	return render.SavePNG(RasterPath(out), c)
}

// VectorPath derives the default SVG output name for an input table.
func VectorPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".svg"
}

// RasterPath derives the PNG name for an SVG output path.
func RasterPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
}
