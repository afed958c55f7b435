package xr

import (
	"log"
	"sync"

	"github.com/galleryroom/vr-gallery/internal/audio"
	"github.com/galleryroom/vr-gallery/internal/scene"
)

// Names of the two navigation-arrow landmarks whose midpoint defines the
// room's recentering anchor.
const (
	LandmarkArrowPrev = "arrow-prev"
	LandmarkArrowNext = "arrow-next"
)

// Controller bridges the platform's VR session lifecycle to the rest of the
// app: the XR-active flag, one-time world recentering, and the audio
// coordinator's backend handoff.
type Controller struct {
	mu sync.Mutex

	world *scene.World
	audio *audio.Coordinator

	active    bool
	recentred bool
}

// NewController creates an XR session controller
func NewController(world *scene.World, coordinator *audio.Coordinator) *Controller {
	return &Controller{
		world: world,
		audio: coordinator,
	}
}

// Active reports whether a VR session is in progress
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// OnSessionStart handles VR session entry: flags the world XR-active,
// recenters the room once, and hands the music off to a spatial backend.
func (c *Controller) OnSessionStart() {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return
	}
	c.active = true
	c.mu.Unlock()

	c.world.SetXRActive(true)
	c.Recenter()

	if c.audio != nil {
		c.audio.EnterVR()
	}
}

// OnSessionEnd handles VR session exit: reverses the audio handoff and
// clears the XR-active flag. The recentering memo resets so the next session
// recenters again.
func (c *Controller) OnSessionEnd() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	c.recentred = false
	c.mu.Unlock()

	if c.audio != nil {
		c.audio.LeaveVR()
	}
	c.world.SetXRActive(false)
}

// Recenter translates the room so the midpoint of the two navigation arrows
// lands on the user's origin. Idempotent per session: the translation is
// computed and applied at most once, even if the landmarks only become
// available after the session started.
func (c *Controller) Recenter() {
	c.mu.Lock()
	if !c.active || c.recentred {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	prev := c.world.EntityByName(LandmarkArrowPrev)
	next := c.world.EntityByName(LandmarkArrowNext)
	if prev == nil || next == nil {
		log.Printf("xr: recenter deferred, navigation landmarks not ready")
		return
	}

	a := prev.Position()
	b := next.Position()
	mid := scene.Vec3{
		X: (a.X + b.X) / 2,
		Y: 0,
		Z: (a.Z + b.Z) / 2,
	}

	c.mu.Lock()
	if c.recentred {
		c.mu.Unlock()
		return
	}
	c.recentred = true
	c.mu.Unlock()

	c.world.Translate(scene.Vec3{X: -mid.X, Y: 0, Z: -mid.Z})
}
