package tiled

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Point is a pixel position.
type Point struct {
	X, Y int32
}

// TileSize is the pixel size of one tile, in the sheet and on screen.
type TileSize struct {
	Width  int32
	Height int32
}

// Transform is everything a backend needs to draw one tile.
type Transform struct {
	Source   Rect    // region of the tile sheet
	Dest     Rect    // region of the screen
	Pivot    Point   // rotation centre, relative to Dest
	Rotation float64 // degrees, already in the resolver's convention
	Mirror   Mirror
}

// Resolver turns cells into transforms for a fixed tile size.
// The sheet is a single row of tiles, so source Y is always 0.
type Resolver struct {
	Tile       TileSize
	Convention Convention
}

// NewResolver creates a resolver for the given tile size and convention.
func NewResolver(tile TileSize, conv Convention) Resolver {
	return Resolver{Tile: tile, Convention: conv}
}

// Source returns the sheet rectangle for a 1-based sheet index.
// Indices beyond the sheet are not checked.
func (r Resolver) Source(sheetIndex uint32) Rect {
	return Rect{
		X: (int32(sheetIndex) - 1) * r.Tile.Width,
		W: r.Tile.Width,
		H: r.Tile.Height,
	}
}

// Place returns the screen rectangle for a linear map index.
func (r Resolver) Place(index, columns int) Rect {
	row := index / columns
	col := index - row*columns
	return Rect{
		X: int32(col) * r.Tile.Width,
		Y: int32(row) * r.Tile.Height,
		W: r.Tile.Width,
		H: r.Tile.Height,
	}
}

// Pivot returns the tile centre.
func (r Resolver) Pivot() Point {
	return Point{X: r.Tile.Width / 2, Y: r.Tile.Height / 2}
}

// Resolve returns the source rectangle and orientation for a cell.
// ok is false for an empty cell, which must not be drawn.
func (r Resolver) Resolve(c Cell) (src Rect, o Orientation, ok bool) {
	if c.Empty() {
		return Rect{}, Orientation{}, false
	}
	return r.Source(c.SheetIndex()), OrientationOf(c), true
}

// Transform returns the full draw transform for the cell at a map index.
// ok is false for an empty cell.
func (r Resolver) Transform(index, columns int, c Cell) (Transform, bool) {
	src, o, ok := r.Resolve(c)
	if !ok {
		return Transform{}, false
	}
	return Transform{
		Source:   src,
		Dest:     r.Place(index, columns),
		Pivot:    r.Pivot(),
		Rotation: o.Angle(r.Convention),
		Mirror:   o.Mirror,
	}, true
}
