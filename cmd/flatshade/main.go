// flatshade - flat-shaded software renderer
// Renders OBJ and glTF models to PNG, WebP, TGA or BMP with one light and
// a depth buffer, or previews them spinning in the terminal.
//
// Usage:
//
//	flatshade [options] <model.obj|model.gltf|model.glb>
//	flatshade -view [options] <model>
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/taigrr/flatshade/pkg/config"
	"github.com/taigrr/flatshade/pkg/export"
	"github.com/taigrr/flatshade/pkg/models"
	"github.com/taigrr/flatshade/pkg/render"
)

var (
	configFile  = flag.String("config", "", "Path to a JSON config file")
	scale       = flag.Int("scale", 0, "Raster edge in pixels minus one (default 1000)")
	light       = flag.String("light", "", "Light direction x,y,z (default 0,0,-1)")
	bg          = flag.String("bg", "", "Background color r,g,b (default 0,0,0)")
	brightness  = flag.Float64("brightness", 0, "Lighting multiplier in (0, 1] (default 0.85)")
	wireframe   = flag.Bool("wireframe", false, "Draw face edges instead of shaded faces")
	lineAlg     = flag.String("line", "", "Wireframe line algorithm: bresenham or sampled")
	workers     = flag.Int("workers", 0, "Concurrent raster bands (default: NumCPU)")
	bounds      = flag.Bool("bounds", false, "Overlay the model's bounding box")
	triangulate = flag.Bool("triangulate", false, "Split OBJ quads and n-gons into triangles")
	output      = flag.String("o", "", "Output image path; extension picks the format (default out.png)")
	size        = flag.Int("size", 0, "Resize the output to size×size pixels")
	filter      = flag.String("filter", "", "Resize filter: nearest, bilinear or catmullrom")
	verbose     = flag.Bool("v", false, "Verbose logging")
	view        = flag.Bool("view", false, "Preview the model spinning in the terminal")
	targetFPS   = flag.Int("fps", 30, "Target FPS for -view")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "flatshade - flat-shaded software renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: flatshade [options] <model.obj|model.gltf|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nView controls:\n")
		fmt.Fprintf(os.Stderr, "  A/D, arrows - Spin left/right\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Tilt up/down\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  Q, Esc      - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	if err := run(flag.Arg(0), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string, logger *slog.Logger) error {
	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	err := cfg.Resolve(config.Flags{
		Scale:       *scale,
		Light:       *light,
		Background:  *bg,
		Brightness:  *brightness,
		Wireframe:   *wireframe,
		Line:        *lineAlg,
		Workers:     *workers,
		Bounds:      *bounds,
		Triangulate: *triangulate,
		Output:      *output,
		Size:        *size,
		Filter:      *filter,
	})
	if err != nil {
		return err
	}
	rc, err := cfg.Render()
	if err != nil {
		return err
	}

	mesh, err := models.Load(modelPath, models.Options{Triangulate: cfg.Triangulate})
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	mesh.NormalizeToUnit()
	logger.Info("loaded model",
		"file", filepath.Base(modelPath),
		"vertices", mesh.VertexCount(),
		"faces", mesh.FaceCount(),
		"triangles", mesh.TriangleCount(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *view {
		return runView(ctx, mesh, rc, cfg.Bounds, *targetFPS)
	}
	return renderToFile(ctx, mesh, rc, cfg, logger)
}

func renderToFile(ctx context.Context, mesh *models.Mesh, rc render.Config, cfg config.Config, logger *slog.Logger) error {
	start := time.Now()
	pass, err := render.NewPass(rc)
	if err != nil {
		return err
	}
	stats, err := pass.RenderContext(ctx, mesh)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if cfg.Bounds {
		lo, hi := mesh.GetBounds()
		pass.Overlay().DrawBox(lo, hi, render.RGB(255, 200, 0))
	}
	fb := pass.Finish()

	if err := export.Save(cfg.Output, fb.ToImage(), export.Options{Size: cfg.Size, Filter: cfg.Filter}); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Info("rendered",
		"output", cfg.Output,
		"size", fb.Width,
		"drawn", stats.Drawn,
		"skipped", stats.Skipped(),
		"pixels", stats.Pixels,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
