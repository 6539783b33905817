// Package scene draws a tile map through a pluggable draw backend.
package scene

import (
	"fmt"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

// Drawer submits one tile draw to a rendering backend.
type Drawer interface {
	Draw(t tiled.Transform) error
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(t tiled.Transform) error

// Draw calls f(t).
func (f DrawerFunc) Draw(t tiled.Transform) error { return f(t) }

// Scene is an immutable map paired with the resolver used to draw it.
type Scene struct {
	Map      *tiled.Map
	Resolver tiled.Resolver
}

// New creates a scene.
func New(m *tiled.Map, r tiled.Resolver) *Scene {
	return &Scene{Map: m, Resolver: r}
}

// Draw issues one draw per non-empty cell, in index order, and returns how
// many were issued. It stops at the first backend error.
func (s *Scene) Draw(d Drawer) (int, error) {
	cols := s.Map.Columns()
	n := 0
	for i := 0; i < s.Map.Len(); i++ {
		t, ok := s.Resolver.Transform(i, cols, s.Map.At(i))
		if !ok {
			continue
		}
		if err := d.Draw(t); err != nil {
			return n, fmt.Errorf("drawing cell %d: %w", i, err)
		}
		n++
	}
	return n, nil
}

// Bounds returns the pixel size of the whole map.
func (s *Scene) Bounds() (width, height int32) {
	return int32(s.Map.Columns()) * s.Resolver.Tile.Width,
		int32(s.Map.Rows()) * s.Resolver.Tile.Height
}
