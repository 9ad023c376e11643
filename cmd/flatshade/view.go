package main

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/models"
	"github.com/taigrr/flatshade/pkg/render"
)

// RotationAxis tracks position and velocity for one rotation axis with spring decay
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis whose velocity settles back to zero.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Low frequency so a spin coasts for a few seconds; critically damped
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 1.5, 1.0),
	}
}

// Update advances position by one frame of velocity and decays velocity.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Spin holds the preview's yaw and pitch.
type Spin struct {
	Pitch, Yaw RotationAxis
	fps        int
}

func NewSpin(fps int) *Spin {
	return &Spin{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		fps:   fps,
	}
}

func (s *Spin) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
}

func (s *Spin) ApplyImpulse(pitch, yaw float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
}

func (s *Spin) Reset() {
	s.Pitch = NewRotationAxis(s.fps)
	s.Yaw = NewRotationAxis(s.fps)
}

// Transform returns the current model rotation.
func (s *Spin) Transform() math3d.Mat4 {
	return math3d.RotateX(s.Pitch.Position).Mul(math3d.RotateY(s.Yaw.Position))
}

// transformed presents a mesh through a transform without copying it.
type transformed struct {
	mesh *models.Mesh
	m    math3d.Mat4
}

func (t transformed) FaceCount() int { return t.mesh.FaceCount() }

func (t transformed) Face(i int) []math3d.Vec3 {
	face := t.mesh.Face(i)
	for j, v := range face {
		face[j] = t.m.MulVec3(v)
	}
	return face
}

// previewScale fits a square raster into a terminal of the given size,
// two raster rows per cell row.
func previewScale(width, height int) int {
	return max(min(width, height*2)-1, 1)
}

func runView(ctx context.Context, mesh *models.Mesh, cfg render.Config, showBounds bool, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	// Log lines would tear the alternate screen.
	render.SetLogger(nil)

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	spin := NewSpin(fps)
	spin.ApplyImpulse(0, 0.05)
	const nudge = 0.02

	events := term.Events()
	frame := time.NewTicker(time.Second / time.Duration(fps))
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
				case ev.MatchString("a"), ev.MatchString("left"):
					spin.ApplyImpulse(0, -nudge)
				case ev.MatchString("d"), ev.MatchString("right"):
					spin.ApplyImpulse(0, nudge)
				case ev.MatchString("w"), ev.MatchString("up"):
					spin.ApplyImpulse(-nudge, 0)
				case ev.MatchString("s"), ev.MatchString("down"):
					spin.ApplyImpulse(nudge, 0)
				case ev.MatchString("space"):
					spin.ApplyImpulse((rand.Float64()-0.5)*0.1, (rand.Float64()-0.5)*0.2)
				case ev.MatchString("x"):
					cfg.Wireframe = !cfg.Wireframe
				case ev.MatchString("r"):
					spin.Reset()
				}
			}
		case <-frame.C:
			spin.Update()
			if err := drawFrame(term, mesh, cfg, spin.Transform(), showBounds, width, height); err != nil {
				return err
			}
		}
	}
}

func drawFrame(term *uv.Terminal, mesh *models.Mesh, cfg render.Config, m math3d.Mat4, showBounds bool, width, height int) error {
	cfg.Scale = previewScale(width, height)
	pass, err := render.NewPass(cfg)
	if err != nil {
		return err
	}
	pass.RenderSource(transformed{mesh: mesh, m: m})
	if showBounds {
		lo, hi := mesh.GetBounds()
		pass.Overlay().DrawTransformedBox(m, lo, hi, render.RGB(255, 200, 0))
	}
	fb := pass.Finish()

	// Center the square raster horizontally.
	offX := max((width-fb.Width)/2, 0)
	fb.Draw(term, image.Rect(offX, 0, width, height))
	if err := term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
