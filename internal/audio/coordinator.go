package audio

import (
	"log"
	"sync"

	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/scene"
)

// Coordinator owns the background-music source. It selects a backend once at
// initialization by walking the factory list in preference order, tracks the
// listener (active camera) and the source (an attached visual plane) every
// frame, and swaps backends across VR session boundaries.
type Coordinator struct {
	mu sync.Mutex

	factories []Factory
	active    Backend
	playing   bool

	world  *scene.World
	target *scene.Entity

	// preVR holds the desktop backend while a VR-constructed spatial
	// backend is active, so LeaveVR can restore it.
	preVR Backend
	inVR  bool
}

// NewCoordinator selects the first backend whose factory succeeds. Every
// construction failure is logged and falls through; total exhaustion leaves
// the coordinator inert, where Toggle is a safe no-op.
func NewCoordinator(world *scene.World, factories []Factory) *Coordinator {
	c := &Coordinator{
		factories: factories,
		world:     world,
	}

	for _, factory := range factories {
		backend, err := factory.New()
		if err != nil {
			log.Printf("audio: %s backend unavailable: %v", factory.Kind, err)
			continue
		}
		c.active = backend
		break
	}

	if c.active == nil {
		log.Printf("audio: all backends failed, playback unavailable")
	}
	return c
}

// Backend returns the active backend kind, or BackendNone when exhausted
func (c *Coordinator) Backend() model.BackendKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return model.BackendNone
	}
	return c.active.Kind()
}

// Playing reports whether the music is currently playing
func (c *Coordinator) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// AttachTo binds the music source's position to a visual plane. The binding
// is positional only: the entity is read each frame, never reparented.
func (c *Coordinator) AttachTo(target *scene.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

// Toggle flips play/pause on the active backend. Inert coordinators log a
// diagnostic and do nothing.
func (c *Coordinator) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		log.Printf("audio: toggle ignored, no backend available")
		return
	}

	if c.playing {
		c.active.Pause()
	} else {
		c.active.Play()
	}
	c.playing = !c.playing
}

// UpdateFrame refreshes listener and source positions from the world. Call
// once per rendered frame; the reads are idempotent and order-independent.
func (c *Coordinator) UpdateFrame() {
	c.mu.Lock()
	backend := c.active
	target := c.target
	c.mu.Unlock()

	if backend == nil {
		return
	}

	backend.SetListener(c.world.ActiveCamera())
	if target != nil && !target.Disposed() {
		backend.SetSourcePosition(target.Position())
	}
}

// EnterVR performs the session-start handoff: when the active backend is
// non-spatial and a spatial backend can be built from the same media, swap to
// it, preserving the playing flag and loop position best-effort.
func (c *Coordinator) EnterVR() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inVR {
		return
	}
	c.inVR = true

	if c.active == nil || c.active.Kind().Spatial() {
		return
	}

	spatial := c.buildSpatialLocked()
	if spatial == nil {
		return
	}

	position := c.active.Current()
	c.active.Pause()
	spatial.Seek(position)
	if c.playing {
		spatial.Play()
	}

	c.preVR = c.active
	c.active = spatial
}

// LeaveVR reverses the session-start handoff, restoring whichever backend
// was active before the session and resuming iff the music was playing.
func (c *Coordinator) LeaveVR() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inVR {
		return
	}
	c.inVR = false

	if c.preVR == nil {
		return
	}

	position := c.active.Current()
	c.active.Pause()
	if err := c.active.Close(); err != nil {
		log.Printf("audio: failed to close VR backend: %v", err)
	}

	c.active = c.preVR
	c.preVR = nil

	c.active.Seek(position)
	if c.playing {
		c.active.Play()
	}
}

// buildSpatialLocked walks the factory list for the first constructible
// spatial backend. Caller holds c.mu.
func (c *Coordinator) buildSpatialLocked() Backend {
	for _, factory := range c.factories {
		if !factory.Kind.Spatial() {
			continue
		}
		backend, err := factory.New()
		if err != nil {
			log.Printf("audio: %s backend unavailable for VR handoff: %v", factory.Kind, err)
			continue
		}
		return backend
	}
	return nil
}
