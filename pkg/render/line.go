package render

import (
	"fmt"
	"math"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// LineAlgorithm selects how wireframe edges are rasterized.
type LineAlgorithm string

const (
	// LineBresenham steps one pixel at a time along the major axis.
	LineBresenham LineAlgorithm = "bresenham"
	// LineSampled takes Width evenly spaced samples along the segment no
	// matter how long it is, so short steep segments can show gaps.
	LineSampled LineAlgorithm = "sampled"
)

// ParseLineAlgorithm converts a name to a LineAlgorithm.
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	switch a := LineAlgorithm(s); a {
	case LineBresenham, LineSampled:
		return a, nil
	case "":
		return LineBresenham, nil
	}
	return "", fmt.Errorf("unknown line algorithm %q", s)
}

// DrawSegment draws p0→p1 with the chosen algorithm. Bresenham segments
// are clipped to the surface first, so the walk never leaves it by more
// than a pixel however far away the endpoints are. Segments with a
// non-finite endpoint are dropped.
func (fb *Framebuffer) DrawSegment(alg LineAlgorithm, p0, p1 math3d.Vec2, c Color) {
	if !finite2(p0) || !finite2(p1) {
		return
	}
	if alg == LineSampled {
		fb.DrawLineSampled(p0, p1, c)
		return
	}
	p0, p1, ok := clipSegment(p0, p1, float64(fb.Width), float64(fb.Height))
	if !ok {
		return
	}
	fb.DrawLine(int(math.Floor(p0.X)), int(math.Floor(p0.Y)), int(math.Floor(p1.X)), int(math.Floor(p1.Y)), c)
}

// DrawLineSampled draws a segment by parametric stepping: for
// t = 0, 1/N, ... (N-1)/N with N = fb.Width it floors p0 + (p1-p0)*t to a
// pixel. The far endpoint itself is never sampled.
func (fb *Framebuffer) DrawLineSampled(p0, p1 math3d.Vec2, c Color) {
	n := fb.Width
	if n <= 0 {
		return
	}
	d := p1.Sub(p0)
	step := 1 / float64(n)
	for i := range n {
		p := p0.Add(d.Scale(float64(i) * step))
		fb.SetPixel(int(math.Floor(p.X)), int(math.Floor(p.Y)), c)
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// Off-surface pixels are skipped but still walked; callers with
// unbounded coordinates should go through DrawSegment.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment clips p0→p1 to [0, w]×[0, h] with Liang–Barsky. It reports
// false when no part of the segment lies inside.
func clipSegment(p0, p1 math3d.Vec2, w, h float64) (math3d.Vec2, math3d.Vec2, bool) {
	d := p1.Sub(p0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, p0.X},
		{d.X, w - p0.X},
		{-d.Y, p0.Y},
		{d.Y, h - p0.Y},
	}
	for _, e := range edges {
		pe, q := e[0], e[1]
		if pe == 0 {
			if q < 0 {
				return p0, p1, false
			}
			continue
		}
		r := q / pe
		if pe < 0 {
			if r > t1 {
				return p0, p1, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return p0, p1, false
			}
			t1 = min(t1, r)
		}
	}
	a, b := p0, p1
	if t0 > 0 {
		a = p0.Add(d.Scale(t0))
	}
	if t1 < 1 {
		b = p0.Add(d.Scale(t1))
	}
	return a, b, finite2(a) && finite2(b)
}

func finite2(v math3d.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
