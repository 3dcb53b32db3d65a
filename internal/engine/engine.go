package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-analogclock/internal/config"
)

// FrameDrawer renders one frame for the given time.
// Draw must not return before the frame is fully written out.
type FrameDrawer interface {
	Draw(ctx context.Context, t ClockTime) error
}

// Runner drives the one-second render loop.
type Runner struct {
	Clock  Clock       // Interface for time mocking.
	Drawer FrameDrawer // Output side (terminal in production).

	// Interval between frames. Zero means config.TickInterval.
	Interval time.Duration
}

// NewRunner creates a Runner with the real clock and the default interval.
func NewRunner(drawer FrameDrawer) *Runner {
	return &Runner{
		Clock:    RealClock{},
		Drawer:   drawer,
		Interval: config.TickInterval,
	}
}

// Run draws start, advances it by one second, waits one interval and repeats.
// Frame N is always drawn before the time is advanced to N+1.
// It returns nil once ctx is cancelled, or the first drawing error.
func (r *Runner) Run(ctx context.Context, start ClockTime) error {
	if r.Drawer == nil {
		return errors.New(config.ErrDrawerMissing)
	}

	clock := r.Clock
	if clock == nil {
		clock = RealClock{}
	}
	interval := r.Interval
	if interval <= 0 {
		interval = config.TickInterval
	}

	log := slog.With(config.LogKeyComponent, config.CompRunner)
	log.Info(config.MsgRunnerStart,
		config.LogKeyTime, start.String(),
		config.LogKeyInterval, interval,
	)

	current := start
	for tick := 0; ; tick++ {
		if ctx.Err() != nil {
			log.Info(config.MsgRunnerStop, config.LogKeyTick, tick)
			return nil
		}

		began := clock.Now()
		if err := r.Drawer.Draw(ctx, current); err != nil {
			return fmt.Errorf("%s at %s: %w", config.ErrDrawFrame, current, err)
		}
		log.Debug(config.MsgFrameDrawn,
			config.LogKeyTick, tick,
			config.LogKeyTime, current.String(),
			config.LogKeyDuration, clock.Now().Sub(began).Milliseconds(),
		)

		current = current.Next()

		select {
		case <-ctx.Done():
			log.Info(config.MsgRunnerStop, config.LogKeyTick, tick+1)
			return nil
		case <-clock.After(interval):
		}
	}
}
