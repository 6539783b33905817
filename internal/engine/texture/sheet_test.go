package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

var tile32 = tiled.TileSize{Width: 32, Height: 32}

// makeSheet builds a sheet of n tiles, tile i filled with gray level 10*i.
func makeSheet(n int, tile tiled.TileSize) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n*int(tile.Width), int(tile.Height)))
	for x := 0; x < img.Bounds().Dx(); x++ {
		level := uint8(10 * (x / int(tile.Width)))
		for y := 0; y < int(tile.Height); y++ {
			img.SetRGBA(x, y, color.RGBA{R: level, G: level, B: level, A: 255})
		}
	}
	return img
}

func TestDecodeSheet_BMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, makeSheet(3, tile32)); err != nil {
		t.Fatalf("encoding BMP: %v", err)
	}

	sheet, err := DecodeSheet(&buf, Options{Tile: tile32})
	if err != nil {
		t.Fatalf("DecodeSheet failed: %v", err)
	}

	if sheet.Tiles() != 3 {
		t.Errorf("expected 3 tiles, got %d", sheet.Tiles())
	}
	if got := sheet.Image.RGBAAt(70, 5); got.R != 20 {
		t.Errorf("expected tile 3 gray level 20 at x=70, got %v", got)
	}
	for idx, want := range map[uint32]bool{0: false, 1: true, 3: true, 4: false} {
		if sheet.Contains(idx) != want {
			t.Errorf("Contains(%d): expected %v", idx, want)
		}
	}
}

func TestDecodeSheet_MagentaKey(t *testing.T) {
	img := makeSheet(1, tile32)
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 0, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 252, G: 4, B: 251, A: 255})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encoding BMP: %v", err)
	}
	data := buf.Bytes()

	keyed, err := DecodeSheet(bytes.NewReader(data), Options{Tile: tile32, MagentaKey: true})
	if err != nil {
		t.Fatalf("DecodeSheet failed: %v", err)
	}
	for x := 0; x < 2; x++ {
		if a := keyed.Image.RGBAAt(x, 0).A; a != 0 {
			t.Errorf("pixel %d: expected transparent, got alpha %d", x, a)
		}
	}

	plain, err := DecodeSheet(bytes.NewReader(data), Options{Tile: tile32})
	if err != nil {
		t.Fatalf("DecodeSheet failed: %v", err)
	}
	if a := plain.Image.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("expected opaque magenta without key, got alpha %d", a)
	}
}

func TestDecodeSheet_TooSmall(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, makeSheet(1, tiled.TileSize{Width: 16, Height: 16})); err != nil {
		t.Fatalf("encoding PNG: %v", err)
	}

	_, err := DecodeSheet(&buf, Options{Tile: tile32})
	if !errors.Is(err, ErrSheetTooSmall) {
		t.Errorf("expected ErrSheetTooSmall, got %v", err)
	}
}

func TestDecodeSheet_Garbage(t *testing.T) {
	if _, err := DecodeSheet(bytes.NewReader([]byte("not an image")), Options{Tile: tile32}); err == nil {
		t.Error("expected error for undecodable data")
	}
}

func TestLoadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tileset.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := bmp.Encode(f, makeSheet(2, tile32)); err != nil {
		t.Fatalf("encoding BMP: %v", err)
	}
	f.Close()

	sheet, err := LoadSheet(path, Options{Tile: tile32})
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}
	if sheet.Tiles() != 2 {
		t.Errorf("expected 2 tiles, got %d", sheet.Tiles())
	}

	if _, err := LoadSheet(filepath.Join(t.TempDir(), "missing.bmp"), Options{Tile: tile32}); err == nil {
		t.Error("expected error for missing sheet")
	}
}
