package render

import (
	"context"
	"fmt"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// Face is one polygon of object-space vertices. The pipeline only accepts
// triangles; any other length is reported as ErrMalformedFace.
type Face []math3d.Vec3

// Tri builds a three-vertex face.
func Tri(v0, v1, v2 math3d.Vec3) Face {
	return Face{v0, v1, v2}
}

// FaceSource supplies faces one at a time without render having to know
// about mesh storage.
type FaceSource interface {
	FaceCount() int
	Face(i int) []math3d.Vec3
}

// FaceList adapts a slice of faces to FaceSource.
type FaceList []Face

func (l FaceList) FaceCount() int            { return len(l) }
func (l FaceList) Face(i int) []math3d.Vec3 { return l[i] }

// Stats counts what happened to every face submitted to a pass.
type Stats struct {
	Faces      int // Faces submitted
	Drawn      int // Faces rasterized (or outlined in wireframe mode)
	Culled     int // Faces facing away from or edge-on to the light
	Degenerate int // Zero-area faces, in object or pixel space
	Malformed  int // Faces without exactly three vertices
	NonFinite  int // Faces with NaN or infinite coordinates
	Pixels     int // Pixel writes that passed the depth test
}

// Skipped returns the number of faces that reached no pixels by rule.
func (s Stats) Skipped() int {
	return s.Culled + s.Degenerate + s.Malformed + s.NonFinite
}

// outcome classifies a face after shading and projection.
type outcome int

const (
	outcomeDraw outcome = iota
	outcomeCulled
	outcomeDegenerate
	outcomeMalformed
	outcomeNonFinite
)

// prepared is a face ready for rasterization.
type prepared struct {
	screen [3]math3d.Vec3
	color  Color
}

// Pass is one render pass. It exclusively owns its surface and depth
// buffer from NewPass until Finish hands the surface off. A Pass is not
// safe for concurrent use; Workers parallelism happens inside Render.
type Pass struct {
	cfg      Config
	proj     Projector
	fb       *Framebuffer
	zb       *DepthBuffer
	stats    Stats
	finished bool
}

// NewPass validates cfg and allocates a cleared surface and depth buffer.
func NewPass(cfg Config) (*Pass, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	proj := NewProjector(cfg.Scale)
	size := proj.Size()

	fb := NewFramebuffer(size, size)
	fb.Fill(cfg.Background)

	return &Pass{
		cfg:  cfg,
		proj: proj,
		fb:   fb,
		zb:   NewDepthBuffer(size, size),
	}, nil
}

// Config returns the pass configuration.
func (p *Pass) Config() Config {
	return p.cfg
}

// Framebuffer returns the surface being drawn. Before Finish, row 0 holds
// object-space y = -1.
func (p *Pass) Framebuffer() *Framebuffer {
	return p.fb
}

// Depth returns the depth buffer.
func (p *Pass) Depth() *DepthBuffer {
	return p.zb
}

// Stats returns the counts accumulated so far.
func (p *Pass) Stats() Stats {
	return p.stats
}

// DrawFace projects, shades and rasterizes one face. Degenerate and unlit
// faces are skipped silently; malformed faces return an error wrapping
// ErrMalformedFace or ErrNonFinite. Neither leaves a mark on the surface.
func (p *Pass) DrawFace(face Face) error {
	if p.finished {
		return ErrPassFinished
	}
	pr, out, err := p.prepare(face)
	p.count(out)
	if out != outcomeDraw {
		return err
	}
	p.stats.Pixels += p.rasterize(pr)
	return nil
}

// Render draws every face in order and returns the pass totals. Bad faces
// are logged and counted, never fatal.
func (p *Pass) Render(faces []Face) Stats {
	stats, _ := p.RenderContext(context.Background(), FaceList(faces))
	return stats
}

// RenderSource draws every face supplied by src.
func (p *Pass) RenderSource(src FaceSource) Stats {
	stats, _ := p.RenderContext(context.Background(), src)
	return stats
}

// RenderContext draws every face supplied by src, stopping early if ctx is
// cancelled. With Config.Workers > 1 filled faces are rasterized in
// concurrent horizontal bands; the result is identical to a sequential run.
func (p *Pass) RenderContext(ctx context.Context, src FaceSource) (Stats, error) {
	if p.finished {
		return p.stats, ErrPassFinished
	}

	var err error
	if p.cfg.Workers > 1 && !p.cfg.Wireframe {
		err = p.renderBanded(ctx, src, p.cfg.Workers)
	} else {
		err = p.renderSequential(ctx, src)
	}

	Logger().Debug("render pass",
		"faces", p.stats.Faces,
		"drawn", p.stats.Drawn,
		"culled", p.stats.Culled,
		"degenerate", p.stats.Degenerate,
		"malformed", p.stats.Malformed+p.stats.NonFinite,
		"pixels", p.stats.Pixels,
	)
	return p.stats, err
}

func (p *Pass) renderSequential(ctx context.Context, src FaceSource) error {
	for i := range src.FaceCount() {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := p.DrawFace(src.Face(i)); err != nil {
			Logger().Warn("skipping face", "index", i, "err", err)
		}
	}
	return nil
}

// Finish flips the surface into image orientation, releases the depth
// buffer and returns the surface. Further draws fail with ErrPassFinished.
func (p *Pass) Finish() *Framebuffer {
	if !p.finished {
		p.fb.FlipVertical()
		p.finished = true
		p.zb = nil
	}
	return p.fb
}

// prepare validates, shades and projects a face.
func (p *Pass) prepare(face Face) (prepared, outcome, error) {
	if len(face) != 3 {
		return prepared{}, outcomeMalformed, fmt.Errorf("%w: got %d", ErrMalformedFace, len(face))
	}
	v0, v1, v2 := face[0], face[1], face[2]
	if !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
		return prepared{}, outcomeNonFinite, ErrNonFinite
	}

	pr := prepared{
		screen: [3]math3d.Vec3{p.proj.Project(v0), p.proj.Project(v1), p.proj.Project(v2)},
		color:  p.cfg.WireColor,
	}
	if p.cfg.Wireframe {
		return pr, outcomeDraw, nil
	}

	intensity, ok := Intensity(v0, v1, v2, p.cfg.LightDir, p.cfg.Brightness)
	if !ok {
		return prepared{}, outcomeDegenerate, nil
	}
	if !Lit(intensity) {
		return prepared{}, outcomeCulled, nil
	}
	if screenDegenerate(pr.screen[0], pr.screen[1], pr.screen[2]) {
		return prepared{}, outcomeDegenerate, nil
	}
	pr.color = ColorFor(intensity)
	return pr, outcomeDraw, nil
}

func (p *Pass) count(out outcome) {
	p.stats.Faces++
	switch out {
	case outcomeDraw:
		p.stats.Drawn++
	case outcomeCulled:
		p.stats.Culled++
	case outcomeDegenerate:
		p.stats.Degenerate++
	case outcomeMalformed:
		p.stats.Malformed++
	case outcomeNonFinite:
		p.stats.NonFinite++
	}
}

// rasterize writes a prepared face and returns the pixels written. In
// wireframe mode every edge pixel counts, with no depth test.
func (p *Pass) rasterize(pr prepared) int {
	s := pr.screen
	if !p.cfg.Wireframe {
		return DrawTriangle(p.fb, p.zb, s[0], s[1], s[2], pr.color)
	}
	for i := range 3 {
		a, b := s[i], s[(i+1)%3]
		p.fb.DrawSegment(p.cfg.Line, math3d.XY(a), math3d.XY(b), pr.color)
	}
	return 0
}
