// Package export writes finished render surfaces to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for output formats with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrInvalidSize is returned when Options.Size is outside 0..MaxSize.
var ErrInvalidSize = errors.New("invalid output size")

// MaxSize bounds the resized edge so a typo cannot allocate gigabytes.
const MaxSize = 16384

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
)

// Formats lists every supported format.
var Formats = []Format{PNG, WebP, TGA, BMP}

// Options controls Save and Encode.
type Options struct {
	// Size, when positive, resizes the image to Size×Size before encoding.
	Size int
	// Filter selects the resampler for Size: "nearest" (default),
	// "bilinear" or "catmullrom".
	Filter string
}

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseFormat(ext)
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case PNG, WebP, TGA, BMP:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Save encodes img to path, choosing the encoder by extension. Parent
// directories are created as needed. A failed encode removes the partial
// file.
func Save(path string, img image.Image, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, format, img, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, format Format, img image.Image, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.Size > 0 {
		var err error
		if img, err = resize(img, opts.Size, opts.Filter); err != nil {
			return err
		}
	}

	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

func (o Options) validate() error {
	if o.Size < 0 || o.Size > MaxSize {
		return fmt.Errorf("%w: %d out of range (0..%d)", ErrInvalidSize, o.Size, MaxSize)
	}
	return nil
}

func resize(img image.Image, size int, filter string) (image.Image, error) {
	var scaler draw.Scaler
	switch filter {
	case "", "nearest":
		scaler = draw.NearestNeighbor
	case "bilinear":
		scaler = draw.BiLinear
	case "catmullrom":
		scaler = draw.CatmullRom
	default:
		return nil, fmt.Errorf("unknown resize filter %q", filter)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
