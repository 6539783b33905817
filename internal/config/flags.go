package config

import (
	"flag"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSheet      = flag.String("sheet", "", "Path to the tile sheet image")
	flagConvention = flag.String("convention", "", "Rotation convention of the renderer (cw or ccw)")
	flagDelay      = flag.Duration("delay", 0, "Delay between frames")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSheet != "" {
		cfg.Tiles.Sheet = *flagSheet
	}
	if *flagConvention != "" {
		cfg.Tiles.Convention = *flagConvention
	}
	if *flagDelay > time.Duration(0) {
		cfg.Loop.FrameDelay = *flagDelay
	}
}
