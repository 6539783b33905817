package scene

import (
	"image"
	"math"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

// ImageDrawer composites tiles into an in-memory image without a GPU.
// Like SDL it mirrors first and then rotates clockwise about the pivot, so
// the resolver feeding it must use tiled.Clockwise.
type ImageDrawer struct {
	Dst   *image.RGBA
	Sheet *image.RGBA
}

// Draw implements Drawer. Fully transparent sheet pixels are skipped.
func (d *ImageDrawer) Draw(t tiled.Transform) error {
	cos, sin := rotation(-t.Rotation)
	px, py := float64(t.Pivot.X), float64(t.Pivot.Y)
	clip := d.Dst.Bounds()

	for y := int32(0); y < t.Dest.H; y++ {
		for x := int32(0); x < t.Dest.W; x++ {
			ox, oy := int(t.Dest.X+x), int(t.Dest.Y+y)
			if !(image.Point{X: ox, Y: oy}).In(clip) {
				continue
			}

			// Walk the forward transform backwards from the pixel centre.
			vx, vy := float64(x)+0.5-px, float64(y)+0.5-py
			vx, vy = vx*cos-vy*sin, vx*sin+vy*cos
			switch t.Mirror {
			case tiled.MirrorHorizontal:
				vx = -vx
			case tiled.MirrorVertical:
				vy = -vy
			}
			sx, sy := int32(math.Floor(vx+px)), int32(math.Floor(vy+py))
			if sx < 0 || sy < 0 || sx >= t.Source.W || sy >= t.Source.H {
				continue
			}

			c := d.Sheet.RGBAAt(int(t.Source.X+sx), int(t.Source.Y+sy))
			if c.A == 0 {
				continue
			}
			d.Dst.SetRGBA(ox, oy, c)
		}
	}
	return nil
}

// rotation returns cos and sin of deg, exact for quarter turns.
func rotation(deg float64) (cos, sin float64) {
	if q := deg / 90; q == math.Trunc(q) {
		switch ((int(q) % 4) + 4) % 4 {
		case 0:
			return 1, 0
		case 1:
			return 0, 1
		case 2:
			return -1, 0
		default:
			return 0, -1
		}
	}
	rad := deg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// Render draws the whole scene into a new image sized to the map.
func (s *Scene) Render(sheet *image.RGBA) (*image.RGBA, error) {
	w, h := s.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if _, err := s.Draw(&ImageDrawer{Dst: dst, Sheet: sheet}); err != nil {
		return nil, err
	}
	return dst, nil
}
