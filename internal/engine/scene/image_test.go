package scene

import (
	"image"
	"image/color"
	"testing"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

var (
	colA = color.RGBA{R: 255, A: 255}
	colB = color.RGBA{G: 255, A: 255}
	colC = color.RGBA{B: 255, A: 255}
	colD = color.RGBA{R: 255, G: 255, A: 255}
)

// quadSheet is one 2x2 tile laid out as
//
//	a b
//	c d
func quadSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, colA)
	img.SetRGBA(1, 0, colB)
	img.SetRGBA(0, 1, colC)
	img.SetRGBA(1, 1, colD)
	return img
}

func TestImageDrawer_Orientations(t *testing.T) {
	r := tiled.NewResolver(tiled.TileSize{Width: 2, Height: 2}, tiled.Clockwise)

	tests := []struct {
		name     string
		cell     tiled.Cell
		expected [4]color.RGBA // top-left, top-right, bottom-left, bottom-right
	}{
		{"none", 1, [4]color.RGBA{colA, colB, colC, colD}},
		{"horizontal mirror", 0x80000001, [4]color.RGBA{colB, colA, colD, colC}},
		{"rotate 180", 0xC0000001, [4]color.RGBA{colD, colC, colB, colA}},
		{"rotate 90 ccw", 0x40000001, [4]color.RGBA{colB, colD, colA, colC}},
		{"rotate 270 ccw", 0xA0000001, [4]color.RGBA{colC, colA, colD, colB}},
		{"vertical mirror", 0x60000001, [4]color.RGBA{colC, colD, colA, colB}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tiled.NewMap(1, []tiled.Cell{tc.cell})
			if err != nil {
				t.Fatalf("NewMap failed: %v", err)
			}
			out, err := New(m, r).Render(quadSheet())
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			got := [4]color.RGBA{out.RGBAAt(0, 0), out.RGBAAt(1, 0), out.RGBAAt(0, 1), out.RGBAAt(1, 1)}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestImageDrawer_SkipsTransparent(t *testing.T) {
	sheet := quadSheet()
	sheet.SetRGBA(0, 0, color.RGBA{})

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	bg := color.RGBA{R: 9, G: 9, B: 9, A: 255}
	dst.SetRGBA(0, 0, bg)

	r := tiled.NewResolver(tiled.TileSize{Width: 2, Height: 2}, tiled.Clockwise)
	tr, _ := r.Transform(0, 1, 1)
	if err := (&ImageDrawer{Dst: dst, Sheet: sheet}).Draw(tr); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if dst.RGBAAt(0, 0) != bg {
		t.Error("transparent sheet pixel should leave destination untouched")
	}
	if dst.RGBAAt(1, 0) != colB {
		t.Error("opaque sheet pixel should be copied")
	}
}

func TestImageDrawer_ClipsToDestination(t *testing.T) {
	r := tiled.NewResolver(tiled.TileSize{Width: 2, Height: 2}, tiled.Clockwise)
	tr, _ := r.Transform(3, 2, 1) // (2,2) in a 3x3 image

	dst := image.NewRGBA(image.Rect(0, 0, 3, 3))
	if err := (&ImageDrawer{Dst: dst, Sheet: quadSheet()}).Draw(tr); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if dst.RGBAAt(2, 2) != colA {
		t.Errorf("expected visible corner to be drawn, got %v", dst.RGBAAt(2, 2))
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		deg      float64
		cos, sin float64
	}{
		{0, 1, 0},
		{90, 0, 1},
		{-90, 0, -1},
		{180, -1, 0},
		{-270, 0, 1},
		{270, 0, -1},
	}
	for _, tc := range tests {
		c, s := rotation(tc.deg)
		if c != tc.cos || s != tc.sin {
			t.Errorf("%v: expected (%v,%v), got (%v,%v)", tc.deg, tc.cos, tc.sin, c, s)
		}
	}
}
