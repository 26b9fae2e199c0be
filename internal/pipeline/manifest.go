package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadManifest reads a JSON run manifest of the form
//
//	{"pairs": [{"in": "a.csv", "out": "a.svg"}, ...]}
//
// A pair may omit "out"; the SVG name then derives from the input.
func LoadManifest(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("manifest: %w", err)
	}
	var doc struct {
		Pairs []struct {
			In  string `json:"in"`
			Out string `json:"out"`
		} `json:"pairs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	if len(doc.Pairs) == 0 {
		return Config{}, &ConfigError{Reason: "manifest has no pairs"}
	}
	var cfg Config
	for i, p := range doc.Pairs {
		if p.In == "" {
			return Config{}, &ConfigError{Reason: fmt.Sprintf("pair %d: missing %q", i, "in")}
		}
		out := p.Out
		if out == "" {
			out = VectorPath(p.In)
		}
		cfg.Inputs = append(cfg.Inputs, p.In)
		cfg.Outputs = append(cfg.Outputs, out)
	}
	return cfg, nil
}
