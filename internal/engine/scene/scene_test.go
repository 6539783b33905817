package scene

import (
	"errors"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

var tile32 = tiled.TileSize{Width: 32, Height: 32}

type recorder struct {
	draws  []tiled.Transform
	failAt int
}

func (r *recorder) Draw(t tiled.Transform) error {
	if r.failAt > 0 && len(r.draws)+1 == r.failAt {
		return errors.New("backend failure")
	}
	r.draws = append(r.draws, t)
	return nil
}

func newTestScene(t *testing.T, cols int, cells []tiled.Cell) *Scene {
	t.Helper()
	m, err := tiled.NewMap(cols, cells)
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	return New(m, tiled.NewResolver(tile32, tiled.Clockwise))
}

func TestDraw_SkipsEmptyCells(t *testing.T) {
	s := newTestScene(t, 3, []tiled.Cell{0, 0, 0, 0, 0, 0})

	rec := &recorder{}
	n, err := s.Draw(rec)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if n != 0 || len(rec.draws) != 0 {
		t.Errorf("expected no draws for an empty map, got %d", n)
	}
}

func TestDraw_OneDrawPerTile(t *testing.T) {
	cells := make([]tiled.Cell, 18)
	cells[1] = 3
	cells[10] = 2684354561
	s := newTestScene(t, 9, cells)

	rec := &recorder{}
	n, err := s.Draw(rec)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if n != 2 || len(rec.draws) != 2 {
		t.Fatalf("expected 2 draws, got %d", n)
	}

	first := rec.draws[0]
	if first.Source.X != 64 || first.Dest.X != 32 || first.Dest.Y != 0 || first.Rotation != 0 {
		t.Errorf("unexpected first draw %+v", first)
	}

	second := rec.draws[1]
	if second.Dest.X != 32 || second.Dest.Y != 32 {
		t.Errorf("expected index 10 at (32,32), got (%d,%d)", second.Dest.X, second.Dest.Y)
	}
	if second.Rotation != -270 || second.Mirror != tiled.MirrorNone {
		t.Errorf("expected -270/none, got %v/%v", second.Rotation, second.Mirror)
	}
}

func TestDraw_StopsOnError(t *testing.T) {
	s := New(tiled.DemoMap(), tiled.NewResolver(tile32, tiled.Clockwise))

	rec := &recorder{failAt: 3}
	n, err := s.Draw(rec)
	if err == nil {
		t.Fatal("expected error from failing backend")
	}
	if n != 2 {
		t.Errorf("expected 2 successful draws before failure, got %d", n)
	}
}

func TestDraw_MatchesTransforms(t *testing.T) {
	s := New(tiled.DemoMap(), tiled.NewResolver(tile32, tiled.Clockwise))

	var drawn []tiled.Transform
	n, err := s.Draw(DrawerFunc(func(tr tiled.Transform) error {
		drawn = append(drawn, tr)
		return nil
	}))
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	var want []tiled.Transform
	s.Map.Each(func(i int, c tiled.Cell) {
		tr, _ := s.Resolver.Transform(i, s.Map.Columns(), c)
		want = append(want, tr)
	})
	if n != len(want) || n != 31 {
		t.Fatalf("expected 31 draws, got %d (tiles %d)", n, len(want))
	}
	for i := range want {
		if drawn[i] != want[i] {
			t.Errorf("draw %d: expected %+v, got %+v", i, want[i], drawn[i])
		}
	}
}

func TestBounds(t *testing.T) {
	s := New(tiled.DemoMap(), tiled.NewResolver(tile32, tiled.Clockwise))
	w, h := s.Bounds()
	if w != 9*32 || h != 15*32 {
		t.Errorf("expected 288x480, got %dx%d", w, h)
	}
}

func TestSDLFlip(t *testing.T) {
	tests := []struct {
		mirror   tiled.Mirror
		expected sdl.RendererFlip
	}{
		{tiled.MirrorNone, sdl.FLIP_NONE},
		{tiled.MirrorHorizontal, sdl.FLIP_HORIZONTAL},
		{tiled.MirrorVertical, sdl.FLIP_VERTICAL},
	}

	for _, tc := range tests {
		if got := sdlFlip(tc.mirror); got != tc.expected {
			t.Errorf("%v: expected %v, got %v", tc.mirror, tc.expected, got)
		}
	}
}
