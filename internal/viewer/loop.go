package viewer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tileflip/internal/engine/scene"
	"github.com/Faultbox/tileflip/internal/logger"
)

// closeSource reports a pending close request without blocking.
type closeSource interface {
	Update() bool
}

// frameTarget is the surface frames are cleared on and presented to.
type frameTarget interface {
	Clear() error
	Present()
}

// loop is one run of the frame loop: poll, clear, draw, present, sleep.
type loop struct {
	events closeSource
	target frameTarget
	scene  *scene.Scene
	drawer scene.Drawer
	delay  time.Duration
	sleep  func(context.Context, time.Duration)

	frames int
}

func (l *loop) run(ctx context.Context) error {
	for {
		if l.events.Update() {
			logger.Debug("close requested")
			return nil
		}
		if ctx.Err() != nil {
			logger.Debug("context done", zap.Error(ctx.Err()))
			return nil
		}

		if err := l.target.Clear(); err != nil {
			return fmt.Errorf("clearing frame: %w", err)
		}
		n, err := l.scene.Draw(l.drawer)
		if err != nil {
			return fmt.Errorf("frame %d: %w", l.frames, err)
		}
		l.target.Present()
		l.frames++

		if l.frames == 1 {
			logger.Debug("first frame presented", zap.Int("tiles", n))
		}

		l.sleep(ctx, l.delay)
	}
}
