// Package texture decodes the single-row tile sheet.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG sheets
	"io"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/tileflip/pkg/tiled"
)

// ErrSheetTooSmall is returned when a sheet cannot hold a single tile.
var ErrSheetTooSmall = errors.New("tile sheet smaller than one tile")

// Options controls sheet decoding.
type Options struct {
	Tile tiled.TileSize
	// MagentaKey treats RGB(255,0,255) as transparent.
	MagentaKey bool
}

// Sheet is a decoded tile sheet with tiles laid out left to right.
type Sheet struct {
	Image *image.RGBA
	Tile  tiled.TileSize
}

// LoadSheet reads and decodes a tile sheet from disk.
func LoadSheet(path string, opts Options) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sheet: %w", err)
	}
	defer f.Close()

	s, err := DecodeSheet(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeSheet decodes a BMP or PNG tile sheet.
func DecodeSheet(r io.Reader, opts Options) (*Sheet, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding sheet: %w", err)
	}

	b := img.Bounds()
	if int32(b.Dx()) < opts.Tile.Width || int32(b.Dy()) < opts.Tile.Height {
		return nil, fmt.Errorf("%w: %dx%d %s, tile %dx%d",
			ErrSheetTooSmall, b.Dx(), b.Dy(), format, opts.Tile.Width, opts.Tile.Height)
	}

	return &Sheet{Image: toRGBA(img, opts.MagentaKey), Tile: opts.Tile}, nil
}

// toRGBA converts img to a zero-origin RGBA image.
func toRGBA(img image.Image, magentaKey bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8)

			// Tolerance covers BMP encoders that round the key colour
			if magentaKey && r8 >= 250 && g8 <= 10 && b8 >= 250 {
				r8, g8, b8, a8 = 0, 0, 0, 0
			}

			rgba.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: r8, G: g8, B: b8, A: a8})
		}
	}
	return rgba
}

// Tiles returns the number of whole tiles in the sheet row.
func (s *Sheet) Tiles() int {
	return s.Image.Bounds().Dx() / int(s.Tile.Width)
}

// Contains reports whether a 1-based sheet index lies inside the sheet.
func (s *Sheet) Contains(sheetIndex uint32) bool {
	return sheetIndex >= 1 && int(sheetIndex) <= s.Tiles()
}
