// Package viewer wires the render context, tile sheet and scene into the
// frame loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tileflip/internal/config"
	"github.com/Faultbox/tileflip/internal/engine/input"
	"github.com/Faultbox/tileflip/internal/engine/scene"
	"github.com/Faultbox/tileflip/internal/engine/texture"
	"github.com/Faultbox/tileflip/internal/engine/window"
	"github.com/Faultbox/tileflip/internal/logger"
	"github.com/Faultbox/tileflip/pkg/tiled"
)

// Viewer is the SDL tile map viewer.
type Viewer struct {
	cfg    *config.Config
	ctx    *window.Context
	sheet  *sdl.Texture
	scene  *scene.Scene
	input  *input.Input
	frames int
}

// New performs every startup step. Any failure is fatal to the viewer and
// releases what was already acquired.
func New(cfg *config.Config, m *tiled.Map) (*Viewer, error) {
	v := &Viewer{cfg: cfg, input: input.New()}

	var err error
	v.ctx, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	sheet, err := texture.LoadSheet(cfg.Tiles.Sheet, texture.Options{
		Tile:       cfg.TileSize(),
		MagentaKey: cfg.Tiles.MagentaKey,
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to load tile sheet: %w", err)
	}

	v.sheet, err = v.ctx.CreateTexture(sheet.Image)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload tile sheet: %w", err)
	}

	v.scene = scene.New(m, tiled.NewResolver(cfg.TileSize(), cfg.Convention()))
	warnOutOfSheet(m, sheet)

	w, h := v.scene.Bounds()
	logger.Info("viewer initialized",
		zap.String("sheet", cfg.Tiles.Sheet),
		zap.Int("sheet_tiles", sheet.Tiles()),
		zap.Int("columns", m.Columns()),
		zap.Int("rows", m.Rows()),
		zap.Int32("map_width", w),
		zap.Int32("map_height", h),
		zap.Stringer("convention", cfg.Convention()),
	)
	return v, nil
}

// warnOutOfSheet logs cells whose sheet index the loaded sheet cannot supply.
// They are still drawn; SDL clips the source rectangle.
func warnOutOfSheet(m *tiled.Map, sheet *texture.Sheet) {
	m.Each(func(i int, c tiled.Cell) {
		if !sheet.Contains(c.SheetIndex()) {
			logger.Warn("sheet index outside tile sheet",
				zap.Int("cell", i),
				zap.Uint32("sheet_index", c.SheetIndex()),
				zap.Int("sheet_tiles", sheet.Tiles()),
			)
		}
	})
}

// Run draws frames until the window is closed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	logger.Info("starting frame loop", zap.Duration("frame_delay", v.cfg.Loop.FrameDelay))

	l := &loop{
		events: v.input,
		target: v.ctx,
		scene:  v.scene,
		drawer: &scene.SDLDrawer{Renderer: v.ctx.Renderer, Sheet: v.sheet},
		delay:  v.cfg.Loop.FrameDelay,
		sleep:  sleepCtx,
	}
	err := l.run(ctx)
	v.frames = l.frames

	logger.Info("frame loop stopped", zap.Int("frames", v.frames))
	return err
}

// Close releases the sheet texture and the render context.
func (v *Viewer) Close() {
	if v.sheet != nil {
		v.sheet.Destroy()
		v.sheet = nil
	}
	if v.ctx != nil {
		v.ctx.Close()
		v.ctx = nil
	}
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
