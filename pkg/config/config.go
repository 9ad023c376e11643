// Package config loads flatshade settings from an optional JSON file and
// merges them with command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/render"
)

// Config holds render and output settings. Unset fields fall back to
// render.DefaultConfig and the defaults applied by Resolve.
type Config struct {
	// Render settings
	Scale       int         `json:"scale"`
	Light       *[3]float64 `json:"light"`
	Background  *[3]uint8   `json:"background"`
	Brightness  float64     `json:"brightness"`
	Wireframe   bool        `json:"wireframe"`
	WireColor   *[3]uint8   `json:"wire_color"`
	Line        string      `json:"line"`
	Workers     int         `json:"workers"`
	Bounds      bool        `json:"bounds"`
	Triangulate bool        `json:"triangulate"`

	// Output settings
	Output string `json:"output"`
	Size   int    `json:"size"`
	Filter string `json:"filter"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Zero
// values and empty strings leave the file's setting alone.
type Flags struct {
	Scale       int
	Light       string // "x,y,z"
	Background  string // "r,g,b"
	Brightness  float64
	Wireframe   bool
	Line        string
	Workers     int
	Bounds      bool
	Triangulate bool
	Output      string
	Size        int
	Filter      string
}

// Resolve applies flags over the file settings and fills in defaults.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Light != "" {
		v, err := ParseVec3(flags.Light)
		if err != nil {
			return fmt.Errorf("config: light: %w", err)
		}
		c.Light = &v
	}
	if flags.Background != "" {
		rgb, err := ParseRGB(flags.Background)
		if err != nil {
			return fmt.Errorf("config: background: %w", err)
		}
		c.Background = &rgb
	}
	if flags.Brightness > 0 {
		c.Brightness = flags.Brightness
	}
	if flags.Line != "" {
		c.Line = flags.Line
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	c.Wireframe = c.Wireframe || flags.Wireframe
	c.Bounds = c.Bounds || flags.Bounds
	c.Triangulate = c.Triangulate || flags.Triangulate

	// Defaults
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Output == "" {
		c.Output = "out.png"
	}
	return nil
}

// Render builds and validates the render pass configuration.
func (c Config) Render() (render.Config, error) {
	rc := render.DefaultConfig()
	if c.Scale > 0 {
		rc.Scale = c.Scale
	}
	if c.Light != nil {
		rc.LightDir = math3d.V3(c.Light[0], c.Light[1], c.Light[2])
	}
	if c.Background != nil {
		rc.Background = render.RGB(c.Background[0], c.Background[1], c.Background[2])
	}
	if c.Brightness > 0 {
		rc.Brightness = c.Brightness
	}
	if c.WireColor != nil {
		rc.WireColor = render.RGB(c.WireColor[0], c.WireColor[1], c.WireColor[2])
	}
	line, err := render.ParseLineAlgorithm(c.Line)
	if err != nil {
		return render.Config{}, fmt.Errorf("config: %w", err)
	}
	rc.Line = line
	rc.Wireframe = c.Wireframe
	if c.Workers > 0 {
		rc.Workers = c.Workers
	}

	if err := rc.Validate(); err != nil {
		return render.Config{}, fmt.Errorf("config: %w", err)
	}
	return rc, nil
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) ([3]float64, error) {
	parts, err := split3(s)
	if err != nil {
		return [3]float64{}, err
	}
	var v [3]float64
	for i, p := range parts {
		if v[i], err = strconv.ParseFloat(p, 64); err != nil {
			return [3]float64{}, fmt.Errorf("parse %q: %w", s, err)
		}
	}
	return v, nil
}

// ParseRGB parses "r,g,b" with each channel in 0..255.
func ParseRGB(s string) ([3]uint8, error) {
	parts, err := split3(s)
	if err != nil {
		return [3]uint8{}, err
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return [3]uint8{}, fmt.Errorf("parse %q: %w", s, err)
		}
		rgb[i] = uint8(n)
	}
	return rgb, nil
}

func split3(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: want 3 comma-separated values", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
