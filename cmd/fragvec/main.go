// Command fragvec turns fragment tables into convex, closed SVG and
// PNG renderings, with an optional terminal preview.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fragvec/internal/pipeline"
	"fragvec/internal/preview"
	"fragvec/internal/shape"
)

func main() {
	var (
		outputs  = flag.String("o", "", "comma-separated SVG outputs, one per input (default: derived from inputs)")
		manifest = flag.String("manifest", "", "JSON manifest with input/output pairs")
		show     = flag.Bool("preview", false, "preview each collection in the terminal before export")
		keep     = flag.Bool("k", false, "keep going after a failed pair")
		view     = flag.Bool("view", false, "open the interactive viewer instead of exporting")
		verbose  = flag.Bool("v", false, "log debug detail")
		quiet    = flag.Bool("q", false, "log errors only")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	if *quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shape.SetLogger(logger)

	if *view {
		var m tea.Model
		if flag.NArg() > 0 {
			m = preview.NewWithPath(flag.Arg(0))
		} else {
			m = preview.New()
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := buildConfig(*manifest, flag.Args(), *outputs)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Preview = *show
	cfg.KeepGoing = *keep
	cfg.Logger = logger
	if err := pipeline.Run(cfg); err != nil {
		log.Fatal(err)
	}
}

func buildConfig(manifest string, inputs []string, outputs string) (pipeline.Config, error) {
	if manifest != "" {
		if len(inputs) > 0 || outputs != "" {
			return pipeline.Config{}, &pipeline.ConfigError{Reason: "-manifest excludes positional inputs and -o"}
		}
		return pipeline.LoadManifest(manifest)
	}
	if len(inputs) == 0 {
		return pipeline.Config{}, &pipeline.ConfigError{Reason: "no inputs; pass fragment tables or -manifest"}
	}
	cfg := pipeline.Config{Inputs: inputs}
	if outputs == "" {
		for _, in := range inputs {
			cfg.Outputs = append(cfg.Outputs, pipeline.VectorPath(in))
		}
		return cfg, nil
	}
	for _, o := range strings.Split(outputs, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.Outputs = append(cfg.Outputs, o)
		}
	}
	return cfg, nil
}
