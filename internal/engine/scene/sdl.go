package scene

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

// SDLDrawer draws tiles from a sheet texture with SDL_RenderCopyEx.
// SDL flips the source first and then rotates clockwise about the pivot,
// so the resolver feeding it must use tiled.Clockwise.
type SDLDrawer struct {
	Renderer *sdl.Renderer
	Sheet    *sdl.Texture
}

// Draw implements Drawer.
func (d *SDLDrawer) Draw(t tiled.Transform) error {
	src := sdl.Rect{X: t.Source.X, Y: t.Source.Y, W: t.Source.W, H: t.Source.H}
	dst := sdl.Rect{X: t.Dest.X, Y: t.Dest.Y, W: t.Dest.W, H: t.Dest.H}
	pivot := sdl.Point{X: t.Pivot.X, Y: t.Pivot.Y}
	return d.Renderer.CopyEx(d.Sheet, &src, &dst, t.Rotation, &pivot, sdlFlip(t.Mirror))
}

func sdlFlip(m tiled.Mirror) sdl.RendererFlip {
	switch m {
	case tiled.MirrorHorizontal:
		return sdl.FLIP_HORIZONTAL
	case tiled.MirrorVertical:
		return sdl.FLIP_VERTICAL
	default:
		return sdl.FLIP_NONE
	}
}
