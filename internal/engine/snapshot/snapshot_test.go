package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriter_Filename(t *testing.T) {
	w := NewWriter("out", "map")
	w.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }

	expected := filepath.Join("out", "map_2024-03-05_14-07-09.png")
	if got := w.Filename(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}

	w.outputDir = ""
	if got := w.Filename(); got != "map_2024-03-05_14-07-09.png" {
		t.Errorf("expected bare filename, got %s", got)
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	w := NewWriter(dir, "frame")

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(2, 1, color.RGBA{R: 200, A: 255})

	path, err := w.Write(img)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening snapshot: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("expected 4x3 image, got %v", decoded.Bounds())
	}
	if r, _, _, _ := decoded.At(2, 1).RGBA(); r>>8 != 200 {
		t.Errorf("expected red 200 at (2,1), got %d", r>>8)
	}
}
