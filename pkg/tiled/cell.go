// Package tiled decodes Tiled map cells into render transforms.
//
// A cell is a 32-bit value. The top three bits are the horizontal, vertical
// and diagonal flip flags; the remaining bits hold a 1-based tile sheet index.
// A cell of 0 is empty.
package tiled

import "fmt"

// Cell is a raw tile map entry.
type Cell uint32

// Flip flag masks, as written by Tiled into the upper bits of a cell.
const (
	FlipHorizontal Cell = 0x80000000
	FlipVertical   Cell = 0x40000000
	FlipDiagonal   Cell = 0x20000000

	// FlagMask covers all three flip bits.
	FlagMask = FlipHorizontal | FlipVertical | FlipDiagonal
)

// Decoded is a cell split into its sheet index and flip flags.
type Decoded struct {
	SheetIndex uint32 // 1-based, 0 for an empty cell
	Horizontal bool
	Vertical   bool
	Diagonal   bool
}

// Key returns the flags packed as (H<<2)|(V<<1)|D.
func (d Decoded) Key() uint8 {
	var k uint8
	if d.Horizontal {
		k |= 4
	}
	if d.Vertical {
		k |= 2
	}
	if d.Diagonal {
		k |= 1
	}
	return k
}

// String returns a compact form like "3 [H-D]".
func (d Decoded) String() string {
	flag := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	return fmt.Sprintf("%d [%c%c%c]", d.SheetIndex,
		flag(d.Horizontal, 'H'), flag(d.Vertical, 'V'), flag(d.Diagonal, 'D'))
}

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool {
	return c == 0
}

// SheetIndex returns the 1-based sheet index with the flip bits cleared.
func (c Cell) SheetIndex() uint32 {
	return uint32(c &^ FlagMask)
}

// Flags returns the flip bits packed as (H<<2)|(V<<1)|D.
func (c Cell) Flags() uint8 {
	return uint8(c >> 29)
}

// Decode splits the cell into sheet index and flags.
func (c Cell) Decode() Decoded {
	return Decoded{
		SheetIndex: c.SheetIndex(),
		Horizontal: c&FlipHorizontal != 0,
		Vertical:   c&FlipVertical != 0,
		Diagonal:   c&FlipDiagonal != 0,
	}
}

// NewCell encodes a sheet index and flip flags into a cell.
// Index bits overlapping the flag bits are discarded.
func NewCell(index uint32, h, v, d bool) Cell {
	c := Cell(index) &^ FlagMask
	if h {
		c |= FlipHorizontal
	}
	if v {
		c |= FlipVertical
	}
	if d {
		c |= FlipDiagonal
	}
	return c
}
