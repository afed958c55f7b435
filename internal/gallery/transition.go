package gallery

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/galleryroom/vr-gallery/internal/content"
	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/scene"
)

// transitionRequest is one queued page slide
type transitionRequest struct {
	direction int
	done      chan struct{}
}

// Controller serializes page transitions: animate current slots out, fetch
// the next page, rebind, animate the new slots in. Requests run strictly in
// arrival order, one at a time; rapid calls queue rather than coalesce.
type Controller struct {
	mu            sync.Mutex
	page          model.PageState
	status        model.TransitionStatus
	pending       []transitionRequest
	stopped       bool
	tweenDuration time.Duration
	onStatus      func(model.TransitionStatus)

	world   *scene.World
	slots   *SlotManager
	fetcher content.PageFetcher

	wake chan struct{}
}

// NewController creates a transition controller and starts its worker
func NewController(world *scene.World, slots *SlotManager, fetcher content.PageFetcher) *Controller {
	c := &Controller{
		status:        model.TransitionIdle,
		tweenDuration: scene.DefaultTweenDuration,
		world:         world,
		slots:         slots,
		fetcher:       fetcher,
		wake:          make(chan struct{}, 1),
	}
	go c.worker()
	return c
}

// SetTweenDuration overrides the per-slide animation time
func (c *Controller) SetTweenDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.tweenDuration = d
	}
}

// SetStatusCallback sets the callback invoked on every phase change
func (c *Controller) SetStatusCallback(callback func(model.TransitionStatus)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStatus = callback
}

// SetPageState seeds pagination state after the initial load
func (c *Controller) SetPageState(page model.PageState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
}

// PageState returns the current pagination state
func (c *Controller) PageState() model.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Status returns the current transition phase
func (c *Controller) Status() model.TransitionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Advance queues a slide to the next (+1) or previous (-1) page and returns
// a channel that closes when that slide has fully resolved. The queue is
// ordered: each request's work begins only after the prior request's full
// animate-out/fetch/animate-in sequence finished.
func (c *Controller) Advance(direction int) <-chan struct{} {
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	req := transitionRequest{direction: direction, done: make(chan struct{})}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		close(req.done)
		return req.done
	}
	c.pending = append(c.pending, req)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	return req.done
}

// Stop shuts the worker down. Queued requests resolve without running.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, req := range pending {
		close(req.done)
	}

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// worker drains the queue one request at a time
func (c *Controller) worker() {
	for {
		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			return
		}
		if len(c.pending) == 0 {
			c.mu.Unlock()
			<-c.wake
			continue
		}
		req := c.pending[0]
		c.pending = c.pending[1:]
		c.mu.Unlock()

		c.run(req.direction)
		close(req.done)
	}
}

// run executes one full transition. A failed fetch resolves the transition
// in a degraded state (slots off-stage or hidden) but never wedges the queue.
func (c *Controller) run(direction int) {
	if c.world.Disposed() {
		return
	}

	c.mu.Lock()
	duration := c.tweenDuration
	c.mu.Unlock()

	c.setStatus(model.TransitionAnimatingOut)
	c.animateOut(duration)

	c.setStatus(model.TransitionFetching)
	next := c.PageState().NextOffset(direction)

	page, err := c.fetcher.FetchPage(context.Background(), next)
	if err != nil {
		// Prior slot content stays bound; only positions are off-stage.
		log.Printf("gallery: page fetch failed at offset %d: %v", next, err)
		c.setStatus(model.TransitionIdle)
		return
	}

	c.mu.Lock()
	c.page = model.PageState{Offset: page.Offset, TotalCount: page.TotalCount}
	c.mu.Unlock()

	if err := c.slots.BindPage(page); err != nil {
		log.Printf("gallery: rebind failed: %v", err)
		c.setStatus(model.TransitionIdle)
		return
	}

	c.setStatus(model.TransitionAnimatingIn)
	c.animateIn(len(page.Contents), duration)

	c.setStatus(model.TransitionIdle)
}

// animateOut slides every enabled slot's entities to its wall's off-stage
// depth, preserving each entity's fixed depth offset. Waits for all of them.
func (c *Controller) animateOut(duration time.Duration) {
	var barriers []<-chan struct{}
	for _, slot := range c.slots.EnabledSlots() {
		placement := slotPlacements[slot.Index]
		for _, e := range slot.Entities() {
			target := placement.offStageZ + (e.Z() - slot.OriginalZ)
			barriers = append(barriers, c.world.AnimateDepth(e, target, duration))
		}
	}
	scene.AwaitAll(barriers...)
}

// animateIn jumps the freshly bound slots to off-stage depth and slides them
// to their rest positions in parallel.
func (c *Controller) animateIn(boundCount int, duration time.Duration) {
	var barriers []<-chan struct{}
	for i := 0; i < boundCount && i < model.PageSize; i++ {
		slot := c.slots.Slot(i)
		if !slot.Bound() {
			continue
		}
		placement := slotPlacements[slot.Index]
		for _, e := range slot.Entities() {
			restZ := e.Z()
			e.SetZ(placement.offStageZ + (restZ - slot.OriginalZ))
			barriers = append(barriers, c.world.AnimateDepth(e, restZ, duration))
		}
	}
	scene.AwaitAll(barriers...)
}

// setStatus records the phase and notifies the observer
func (c *Controller) setStatus(status model.TransitionStatus) {
	c.mu.Lock()
	c.status = status
	callback := c.onStatus
	c.mu.Unlock()

	if callback != nil {
		callback(status)
	}
}
