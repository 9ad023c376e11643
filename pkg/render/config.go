package render

import (
	"fmt"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// MaxScale bounds the raster edge so a typo cannot allocate gigabytes.
const MaxScale = 16384

// Config is everything a render pass needs to know. There is no
// process-wide render state; each Pass gets its own copy.
type Config struct {
	// Scale maps object space [-1, 1] to pixels [0, Scale]; the raster is
	// (Scale+1)×(Scale+1).
	Scale int
	// LightDir is the direction compared against face normals. Unit length
	// is expected but not enforced.
	LightDir math3d.Vec3
	// Background fills the surface before any face is drawn.
	Background Color
	// Brightness is the k in intensity = dot(n, light) * k.
	Brightness float64

	// Wireframe draws face edges instead of shaded fills.
	Wireframe bool
	WireColor Color
	Line      LineAlgorithm

	// Workers > 1 renders horizontal bands concurrently.
	Workers int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Scale:      1000,
		LightDir:   math3d.V3(0, 0, -1),
		Background: ColorBlack,
		Brightness: DefaultBrightness,
		WireColor:  ColorWhite,
		Line:       LineBresenham,
		Workers:    1,
	}
}

// Validate checks c for values a pass cannot work with.
func (c Config) Validate() error {
	if c.Scale <= 0 || c.Scale > MaxScale {
		return fmt.Errorf("%w: scale %d out of range (1..%d)", ErrInvalidConfig, c.Scale, MaxScale)
	}
	if !c.LightDir.IsFinite() || c.LightDir.Magnitude() == 0 {
		return fmt.Errorf("%w: light direction %v must be finite and non-zero", ErrInvalidConfig, c.LightDir)
	}
	if !(c.Brightness > 0 && c.Brightness <= 1) {
		return fmt.Errorf("%w: brightness %v must be in (0, 1]", ErrInvalidConfig, c.Brightness)
	}
	if _, err := ParseLineAlgorithm(string(c.Line)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}
