package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"scale": 400,
		"light": [0, 0, 1],
		"background": [10, 20, 30],
		"line": "sampled",
		"output": "render.webp"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scale != 400 || cfg.Line != "sampled" || cfg.Output != "render.webp" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Light == nil || *cfg.Light != [3]float64{0, 0, 1} {
		t.Errorf("light = %v", cfg.Light)
	}
	if cfg.Background == nil || *cfg.Background != [3]uint8{10, 20, 30} {
		t.Errorf("background = %v", cfg.Background)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, `{"scale": "big"}`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Scale: 400, Line: "sampled", Workers: 2}
	err := cfg.Resolve(Flags{
		Scale:      800,
		Light:      "1, 0, 0",
		Background: "255,255,0",
		Wireframe:  true,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Scale != 800 || cfg.Line != "sampled" || cfg.Workers != 2 || !cfg.Wireframe {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Output != "out.png" {
		t.Errorf("output default = %q", cfg.Output)
	}

	rc, err := cfg.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rc.LightDir != math3d.V3(1, 0, 0) || rc.Background != render.RGB(255, 255, 0) {
		t.Errorf("render config = %+v", rc)
	}
	if rc.Line != render.LineSampled || !rc.Wireframe || rc.Workers != 2 {
		t.Errorf("render config = %+v", rc)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Resolve(Flags{}); err != nil {
		t.Fatal(err)
	}
	rc, err := cfg.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	def := render.DefaultConfig()
	if rc.Scale != def.Scale || rc.LightDir != def.LightDir || rc.Brightness != def.Brightness || rc.Line != def.Line {
		t.Errorf("render config = %+v, want defaults", rc)
	}
	if rc.Workers < 1 {
		t.Errorf("workers = %d", rc.Workers)
	}
}

func TestResolveBadFlags(t *testing.T) {
	tests := []Flags{
		{Light: "1,2"},
		{Light: "a,b,c"},
		{Background: "0,0,256"},
		{Background: "-1,0,0"},
	}
	for _, f := range tests {
		var cfg Config
		if err := cfg.Resolve(f); err == nil {
			t.Errorf("Resolve(%+v) succeeded, want error", f)
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	zero := [3]float64{}
	cfg := Config{Light: &zero}
	if _, err := cfg.Render(); !errors.Is(err, render.ErrInvalidConfig) {
		t.Errorf("zero light: err = %v, want ErrInvalidConfig", err)
	}
	cfg = Config{Line: "dda"}
	if _, err := cfg.Render(); err == nil {
		t.Error("unknown line algorithm accepted")
	}
}
