package render

import (
	"math"
	"testing"
)

func TestFramebufferFill(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {17, 9}} {
		fb := NewFramebuffer(size[0], size[1])
		fb.Fill(ColorRed)
		if got := countColor(fb, ColorRed); got != size[0]*size[1] {
			t.Errorf("%dx%d: filled %d pixels, want %d", size[0], size[1], got, size[0]*size[1])
		}
	}
	NewFramebuffer(0, 0).Fill(ColorRed)
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	fb.SetPixel(-1, 0, ColorWhite)
	fb.SetPixel(4, 0, ColorWhite)
	fb.SetPixel(0, 3, ColorWhite)
	if got := countColor(fb, ColorWhite); got != 0 {
		t.Errorf("out-of-bounds writes landed on %d pixels", got)
	}
	if got := fb.GetPixel(10, 10); got != ColorBlack {
		t.Errorf("GetPixel out of bounds = %v, want black", got)
	}

	fb.SetPixel(3, 2, ColorWhite)
	if got := fb.Pixels[2*4+3]; got != ColorWhite {
		t.Errorf("pixel (3, 2) not stored row-major")
	}
}

func TestFramebufferFlipVertical(t *testing.T) {
	for _, h := range []int{1, 4, 5} {
		fb := NewFramebuffer(3, h)
		for y := range h {
			fb.SetPixel(1, y, Gray(uint8(y)))
		}
		fb.FlipVertical()
		for y := range h {
			if got, want := fb.GetPixel(1, y), Gray(uint8(h-1-y)); got != want {
				t.Errorf("h=%d: row %d = %v, want %v", h, y, got, want)
			}
		}
		fb.FlipVertical()
		for y := range h {
			if got := fb.GetPixel(1, y); got != Gray(uint8(y)) {
				t.Errorf("h=%d: double flip changed row %d", h, y)
			}
		}
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(1, 0, RGB(10, 20, 30))
	img := fb.ToImage()

	if got := img.Bounds(); got != fb.Bounds() {
		t.Fatalf("bounds = %v, want %v", got, fb.Bounds())
	}
	c := img.RGBAAt(1, 0)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 0xff {
		t.Errorf("pixel (1, 0) = %v", c)
	}
	if a := img.RGBAAt(0, 1).A; a != 0xff {
		t.Errorf("background alpha = %d, want opaque", a)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(0xff, 0x80, 0).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestDepthBuffer(t *testing.T) {
	zb := NewDepthBuffer(4, 4)
	for i, v := range zb.Values {
		if v != DepthFar {
			t.Fatalf("cell %d = %v after clear, want DepthFar", i, v)
		}
	}

	if !zb.Test(1, 1, -1e300) {
		t.Error("any finite depth should beat a cleared cell")
	}
	if !zb.Test(1, 1, 0.5) {
		t.Error("nearer fragment rejected")
	}
	if zb.Test(1, 1, 0.5) {
		t.Error("equal depth must not pass")
	}
	if zb.Test(1, 1, 0.25) {
		t.Error("farther fragment passed")
	}
	if got := zb.At(1, 1); got != 0.5 {
		t.Errorf("At(1, 1) = %v, want 0.5", got)
	}

	if zb.Test(-1, 0, 1) || zb.Test(0, 4, 1) {
		t.Error("out-of-bounds test passed")
	}
	if got := zb.At(9, 9); !math.IsInf(got, -1) {
		t.Errorf("At out of bounds = %v, want DepthFar", got)
	}

	zb.Clear()
	if got := zb.At(1, 1); got != DepthFar {
		t.Errorf("At(1, 1) after Clear = %v", got)
	}
}

func TestDepthBufferMatches(t *testing.T) {
	if !NewDepthBuffer(3, 4).Matches(NewFramebuffer(3, 4)) {
		t.Error("equal dimensions should match")
	}
	if NewDepthBuffer(4, 3).Matches(NewFramebuffer(3, 4)) {
		t.Error("transposed dimensions should not match")
	}
}
