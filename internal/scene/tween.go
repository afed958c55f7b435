package scene

import (
	"time"
)

// Tween timing constants
const (
	// TweenStepsPerSecond fixes the timeline resolution
	TweenStepsPerSecond = 60

	// DefaultTweenDuration is the standard page-transition slide time
	DefaultTweenDuration = 400 * time.Millisecond
)

// easeOutCubic maps linear progress 0..1 onto a cubic ease-out curve
func easeOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

// AnimateDepth tweens the entity's depth coordinate from its current value to
// target over duration, stepping on a fixed 60-per-second timeline with cubic
// ease-out. The returned channel closes when the timeline finishes — or
// immediately, without the entity reaching target, if the entity or the world
// is disposed mid-flight.
func (w *World) AnimateDepth(e *Entity, target float64, duration time.Duration) <-chan struct{} {
	done := make(chan struct{})

	if duration <= 0 {
		duration = DefaultTweenDuration
	}

	if w.Disposed() || e.Disposed() {
		close(done)
		return done
	}

	start := e.Z()
	steps := int(duration.Seconds() * TweenStepsPerSecond)
	if steps < 1 {
		steps = 1
	}
	interval := duration / time.Duration(steps)

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for step := 1; step <= steps; step++ {
			<-ticker.C
			if w.Disposed() || e.Disposed() {
				return
			}

			progress := easeOutCubic(float64(step) / float64(steps))
			e.SetZ(start + (target-start)*progress)
		}

		// Land exactly on target regardless of easing rounding
		if !w.Disposed() && !e.Disposed() {
			e.SetZ(target)
		}
	}()

	return done
}

// AwaitAll blocks until every completion channel has resolved. This is the
// barrier used when several slot entities animate in parallel.
func AwaitAll(channels ...<-chan struct{}) {
	for _, ch := range channels {
		<-ch
	}
}
