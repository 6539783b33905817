// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Loop    LoopConfig    `yaml:"loop"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// TilesConfig describes the tile sheet and how rotations are signed.
type TilesConfig struct {
	Sheet      string `yaml:"sheet"` // single-row tile sheet image
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Convention string `yaml:"convention"`  // "cw" or "ccw"
	MagentaKey bool   `yaml:"magenta_key"` // treat RGB(255,0,255) as transparent
}

// LoopConfig holds run loop pacing.
type LoopConfig struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "SDL2 Tiled Map Rotation Example",
			Width:  640,
			Height: 480,
		},
		Tiles: TilesConfig{
			Sheet:      "tileset.bmp",
			Width:      32,
			Height:     32,
			Convention: "cw",
		},
		Loop: LoopConfig{
			FrameDelay: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// TileSize returns the configured tile size.
func (c *Config) TileSize() tiled.TileSize {
	return tiled.TileSize{Width: int32(c.Tiles.Width), Height: int32(c.Tiles.Height)}
}

// Validate checks values that would make the viewer unusable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Tiles.Width <= 0 || c.Tiles.Height <= 0 {
		return fmt.Errorf("invalid tile size %dx%d", c.Tiles.Width, c.Tiles.Height)
	}
	if c.Tiles.Sheet == "" {
		return fmt.Errorf("tile sheet path is empty")
	}
	if c.Loop.FrameDelay < 0 {
		return fmt.Errorf("negative frame delay %v", c.Loop.FrameDelay)
	}
	if _, err := tiled.ParseConvention(c.Tiles.Convention); err != nil {
		return err
	}
	return nil
}

// Convention returns the parsed rotation convention, falling back to clockwise.
func (c *Config) Convention() tiled.Convention {
	conv, err := tiled.ParseConvention(c.Tiles.Convention)
	if err != nil {
		return tiled.Clockwise
	}
	return conv
}
