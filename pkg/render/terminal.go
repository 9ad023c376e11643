package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// CellSetter is the part of uv.Screen that Draw needs.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// Draw paints the surface into area using upper half blocks, so each
// terminal row shows two surface rows: foreground is the top, background
// the bottom. Surface pixel (0, 0) lands on area.Min. Cells outside the
// surface are left alone.
func (fb *Framebuffer) Draw(scr CellSetter, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			top := fb.GetPixel(x, topY)
			bot := top
			if topY+1 < fb.Height {
				bot = fb.GetPixel(x, topY+1)
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(top),
					Bg: cellColor(bot),
				},
			})
		}
	}
}

func cellColor(c Color) color.Color {
	return c.ToRGBA()
}
