package pipeline

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fragvec/internal/shape"
)

func diff(t *testing.T, want, got any) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func writeFrag(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunExportsVectorAndRaster(t *testing.T) {
	dir := t.TempDir()
	in := writeFrag(t, dir, "frag.csv", "0,0,10,10\n0,0,90,10\n0,0,50,90\n1,0,5,5\n")
	out := filepath.Join(dir, "frag.svg")

	var buf bytes.Buffer
	cfg := Config{
		Inputs:  []string{in},
		Outputs: []string{out},
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
	}
	if err := Run(cfg); err != nil {
		t.Fatal(err)
	}

	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not an SVG document")
	}
	f, err := os.Open(RasterPath(out))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// extent 99x99 at scale factor 10
	if b := img.Bounds(); b.Dx() != 990 || b.Dy() != 990 {
		t.Errorf("raster size = %dx%d, want 990x990", b.Dx(), b.Dy())
	}
	if !strings.Contains(buf.String(), "processing") {
		t.Error("run did not log the pair")
	}
}

func TestRunRegularizesBeforeExport(t *testing.T) {
	dir := t.TempDir()
	in := writeFrag(t, dir, "frag.csv",
		"0,0,0,0\n0,0,8,0\n0,0,4,4\n0,0,8,8\n0,0,0,8\n")
	out := filepath.Join(dir, "frag.svg")
	if err := Run(Config{Inputs: []string{in}, Outputs: []string{out}}); err != nil {
		t.Fatal(err)
	}
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(svg), "4,4") {
		t.Error("interior point survived regularization")
	}
}

func TestRunLengthMismatchIsConfigError(t *testing.T) {
	dir := t.TempDir()
	in := writeFrag(t, dir, "frag.csv", "0,0,1,1\n")
	out := filepath.Join(dir, "frag.svg")
	err := Run(Config{Inputs: []string{in, in}, Outputs: []string{out}})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Error("mismatched run produced output")
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.csv")
	good := writeFrag(t, dir, "good.csv", "0,0,0,0\n0,0,4,0\n0,0,2,3\n")
	goodOut := filepath.Join(dir, "good.svg")

	err := Run(Config{
		Inputs:  []string{missing, good},
		Outputs: []string{filepath.Join(dir, "missing.svg"), goodOut},
	})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped fs.ErrNotExist", err)
	}
	if _, err := os.Stat(goodOut); !errors.Is(err, fs.ErrNotExist) {
		t.Error("second pair ran after the first failed")
	}
}

func TestRunKeepGoingCollectsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := writeFrag(t, dir, "bad.csv", "0,0,1,1\nnot,a,number,x\n")
	good := writeFrag(t, dir, "good.csv", "0,0,0,0\n0,0,4,0\n0,0,2,3\n")
	goodOut := filepath.Join(dir, "good.svg")

	err := Run(Config{
		Inputs:    []string{bad, good},
		Outputs:   []string{filepath.Join(dir, "bad.svg"), goodOut},
		KeepGoing: true,
	})
	var pe *shape.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want wrapped ParseError", err)
	}
	if _, err := os.Stat(goodOut); err != nil {
		t.Errorf("good pair not exported: %v", err)
	}
	if _, err := os.Stat(RasterPath(goodOut)); err != nil {
		t.Errorf("good pair raster not exported: %v", err)
	}
}

func TestVectorPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"frag.csv", "frag.svg"},
		{filepath.Join("d", "frag.csv"), filepath.Join("d", "frag.svg")},
		{"frag", "frag.svg"},
	}
	for _, tc := range tests {
		if got := VectorPath(tc.in); got != tc.want {
			t.Errorf("VectorPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRasterPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"frag.svg", "frag.png"},
		{filepath.Join("d", "frag.svg"), filepath.Join("d", "frag.png")},
		{"frag", "frag.png"},
	}
	for _, tc := range tests {
		if got := RasterPath(tc.in); got != tc.want {
			t.Errorf("RasterPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	p := writeFrag(t, dir, "run.json", `{"pairs": [
		{"in": "a.csv", "out": "plots/a.svg"},
		{"in": "b.csv"}
	]}`)
	cfg, err := LoadManifest(p)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"a.csv", "b.csv"}, cfg.Inputs)
	diff(t, []string{"plots/a.svg", "b.svg"}, cfg.Outputs)
}

func TestLoadManifestMissingIn(t *testing.T) {
	dir := t.TempDir()
	p := writeFrag(t, dir, "run.json", `{"pairs": [{"out": "a.svg"}]}`)
	_, err := LoadManifest(p)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
}

func TestLoadManifestNoPairs(t *testing.T) {
	dir := t.TempDir()
	p := writeFrag(t, dir, "run.json", `{"pairs": []}`)
	_, err := LoadManifest(p)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
}

func TestLoadManifestBadJSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFrag(t, dir, "run.json", `{"pairs"`)
	if _, err := LoadManifest(p); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped fs.ErrNotExist", err)
	}
}
