// Package ebitenview draws a tile scene with ebiten instead of SDL.
package ebitenview

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/tileflip/internal/engine/scene"
	"github.com/Faultbox/tileflip/pkg/tiled"
)

// Game implements ebiten.Game for a static tile scene.
type Game struct {
	scene  *scene.Scene
	sheet  *ebiten.Image
	width  int
	height int
	err    error
}

// New creates a game drawing s from the given sheet image.
// The scene's resolver must use tiled.Clockwise: ebiten rotates positive
// angles clockwise on screen.
func New(s *scene.Scene, sheet image.Image, width, height int) *Game {
	return &Game{
		scene:  s,
		sheet:  ebiten.NewImageFromImage(sheet),
		width:  width,
		height: height,
	}
}

// Update implements ebiten.Game. The scene is static; a draw failure from
// the previous frame ends the game.
func (g *Game) Update() error {
	return g.err
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if _, err := g.scene.Draw(&drawer{screen: screen, sheet: g.sheet}); err != nil {
		g.err = err
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

type drawer struct {
	screen *ebiten.Image
	sheet  *ebiten.Image
}

func (d *drawer) Draw(t tiled.Transform) error {
	src := image.Rect(int(t.Source.X), int(t.Source.Y), int(t.Source.X+t.Source.W), int(t.Source.Y+t.Source.H))
	op := &ebiten.DrawImageOptions{GeoM: GeoM(t)}
	d.screen.DrawImage(d.sheet.SubImage(src).(*ebiten.Image), op)
	return nil
}

// GeoM returns the geometry placing a tile: mirror about the pivot, rotate
// about the pivot, then move to the destination. The order matches
// SDL_RenderCopyEx.
func GeoM(t tiled.Transform) ebiten.GeoM {
	var m ebiten.GeoM
	px, py := float64(t.Pivot.X), float64(t.Pivot.Y)
	m.Translate(-px, -py)
	switch t.Mirror {
	case tiled.MirrorHorizontal:
		m.Scale(-1, 1)
	case tiled.MirrorVertical:
		m.Scale(1, -1)
	}
	m.Rotate(t.Rotation * math.Pi / 180)
	m.Translate(px+float64(t.Dest.X), py+float64(t.Dest.Y))
	return m
}
