package tiled

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConvention is returned when a rotation convention name is not recognised.
var ErrUnknownConvention = errors.New("unknown rotation convention")

// Mirror is the axis a tile image is reflected along before placement.
type Mirror uint8

// Mirror axes.
const (
	MirrorNone Mirror = iota
	MirrorHorizontal
	MirrorVertical
)

// String returns the axis name.
func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Mirror(%d)", m)
	}
}

// Orientation is the rotation and mirror applied to a tile.
// Rotation is in degrees, counterclockwise-positive. The mirror is applied
// to the source image first, then the result is rotated about its centre.
type Orientation struct {
	Rotation float64
	Mirror   Mirror
}

// orientations maps the packed (H<<2)|(V<<1)|D key to an orientation.
var orientations = [8]Orientation{
	0b000: {0, MirrorNone},
	0b001: {90, MirrorHorizontal},
	0b010: {90, MirrorNone},
	0b011: {0, MirrorVertical},
	0b100: {0, MirrorHorizontal},
	0b101: {270, MirrorNone},
	0b110: {180, MirrorNone},
	0b111: {90, MirrorVertical},
}

// OrientationFor returns the orientation for a flag combination.
func OrientationFor(h, v, d bool) Orientation {
	return orientations[Decoded{Horizontal: h, Vertical: v, Diagonal: d}.Key()]
}

// OrientationOf returns the orientation encoded in a cell's flip bits.
func OrientationOf(c Cell) Orientation {
	return orientations[c.Flags()]
}

// Convention is the sign of positive angles in a rendering backend.
type Convention uint8

// Rotation conventions.
const (
	// Clockwise backends (SDL_RenderCopyEx, ebiten.GeoM in screen space)
	// turn positive angles clockwise.
	Clockwise Convention = iota
	CounterClockwise
)

// String returns the short name used in config files.
func (c Convention) String() string {
	if c == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// ParseConvention parses "cw"/"clockwise" or "ccw"/"counterclockwise".
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "counterclockwise":
		return CounterClockwise, nil
	default:
		return Clockwise, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
	}
}

// Angle returns the rotation expressed in the given convention.
func (o Orientation) Angle(conv Convention) float64 {
	if conv == Clockwise && o.Rotation != 0 {
		return -o.Rotation
	}
	return o.Rotation
}
