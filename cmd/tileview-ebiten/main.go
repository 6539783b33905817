// Package main runs the tile flip viewer on ebiten.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/tileflip/internal/config"
	"github.com/Faultbox/tileflip/internal/engine/ebitenview"
	"github.com/Faultbox/tileflip/internal/engine/scene"
	"github.com/Faultbox/tileflip/internal/engine/texture"
	"github.com/Faultbox/tileflip/internal/logger"
	"github.com/Faultbox/tileflip/pkg/tiled"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Tile Flip Viewer (ebiten) ===")

	sheet, err := texture.LoadSheet(cfg.Tiles.Sheet, texture.Options{
		Tile:       cfg.TileSize(),
		MagentaKey: cfg.Tiles.MagentaKey,
	})
	if err != nil {
		logger.Error("failed to load tile sheet", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if cfg.Convention() != tiled.Clockwise {
		logger.Warn("ebiten rotates clockwise; ignoring configured convention",
			zap.Stringer("convention", cfg.Convention()))
	}
	s := scene.New(tiled.DemoMap(), tiled.NewResolver(cfg.TileSize(), tiled.Clockwise))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	if d := cfg.Loop.FrameDelay; d > 0 {
		ebiten.SetTPS(max(1, int(time.Second/d)))
	}

	g := ebitenview.New(s, sheet.Image, cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
