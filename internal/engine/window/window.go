// Package window owns the SDL2 window and renderer for the viewer.
package window

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tileflip/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Context is the render context: one window and its renderer.
// Build it with New and release it with Close.
type Context struct {
	sdlInit  bool
	Window   *sdl.Window
	Renderer *sdl.Renderer
}

// New initializes SDL video, then creates the window and renderer.
// Anything acquired before a failing step is released before returning.
func New(cfg Config) (*Context, error) {
	c := &Context{}

	logger.Debug("initializing SDL2 video")
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	c.sdlInit = true

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	c.Window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(0)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	c.Renderer, err = sdl.CreateRenderer(c.Window, -1, rendererFlags)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return c, nil
}

// Close destroys the renderer and window and shuts SDL down.
// It is safe on a partially built context and on repeated calls.
func (c *Context) Close() {
	if c.Renderer != nil {
		c.Renderer.Destroy()
		c.Renderer = nil
	}
	if c.Window != nil {
		c.Window.Destroy()
		c.Window = nil
	}
	if c.sdlInit {
		logger.Debug("shutting down SDL2")
		sdl.Quit()
		c.sdlInit = false
	}
}

// Clear fills the back buffer with black.
func (c *Context) Clear() error {
	if err := c.Renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	return c.Renderer.Clear()
}

// Present flushes submitted draws to the screen.
func (c *Context) Present() {
	c.Renderer.Present()
}

// CreateTexture uploads an RGBA image as a static, alpha-blended texture.
func (c *Context) CreateTexture(img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()),
		32, int32(img.Stride),
		sdl.PIXELFORMAT_RGBA32,
	)
	if err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	defer surface.Free()

	tex, err := c.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("setting blend mode: %w", err)
	}
	return tex, nil
}
