package render

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"
)

// renderBanded shades and projects every face up front, then rasterizes the
// prepared list once per horizontal band. Each band runs in its own
// goroutine and owns a disjoint set of rows in both buffers, and faces are
// drawn in input order within a band, so the surface matches what a
// sequential pass would produce.
func (p *Pass) renderBanded(ctx context.Context, src FaceSource, workers int) error {
	n := src.FaceCount()
	tris := make([]prepared, 0, n)
	for i := range n {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		pr, out, err := p.prepare(src.Face(i))
		p.count(out)
		if out == outcomeDraw {
			tris = append(tris, pr)
			continue
		}
		if err != nil {
			Logger().Warn("skipping face", "index", i, "err", err)
		}
	}
	if len(tris) == 0 {
		return ctx.Err()
	}

	bands := Bands(p.fb.Height, workers)
	counts := make([]int, len(bands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for bi, band := range bands {
		clip := image.Rect(0, band[0], p.fb.Width, band[1])
		g.Go(func() error {
			written := 0
			for i, t := range tris {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				written += DrawTriangleClip(p.fb, p.zb, t.screen[0], t.screen[1], t.screen[2], t.color, clip)
			}
			counts[bi] = written
			return nil
		})
	}
	err := g.Wait()
	for _, c := range counts {
		p.stats.Pixels += c
	}
	return err
}

// Bands splits height rows into at most k contiguous [start, end) ranges of
// near-equal size. Empty ranges are omitted.
func Bands(height, k int) [][2]int {
	if k < 1 {
		k = 1
	}
	if k > height {
		k = height
	}
	out := make([][2]int, 0, k)
	for i := range k {
		start, end := i*height/k, (i+1)*height/k
		if end > start {
			out = append(out, [2]int{start, end})
		}
	}
	return out
}
