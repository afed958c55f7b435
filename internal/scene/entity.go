package scene

import (
	"sync"
)

// Entity is one textured plane in the room. The slot manager owns the
// entities it creates; disposal detaches the entity from the world and any
// in-flight tween resolves without finishing.
type Entity struct {
	mu sync.RWMutex

	name      string
	width     float64
	height    float64
	position  Vec3
	rotationY float64
	texture   string
	enabled   bool
	disposed  bool

	world *World
}

// Name returns the registry name the entity was created under
func (e *Entity) Name() string {
	return e.name
}

// Size returns the plane's width and height
func (e *Entity) Size() (width, height float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width, e.height
}

// Position returns the entity's current world position
func (e *Entity) Position() Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.position
}

// SetPosition moves the entity
func (e *Entity) SetPosition(p Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = p
}

// Z returns the entity's depth coordinate
func (e *Entity) Z() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.position.Z
}

// SetZ moves the entity along the depth axis only
func (e *Entity) SetZ(z float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position.Z = z
}

// RotationY returns the plane's rotation around the vertical axis in degrees
func (e *Entity) RotationY() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rotationY
}

// SetRotationY sets the plane's rotation around the vertical axis in degrees
func (e *Entity) SetRotationY(deg float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rotationY = deg
}

// Texture returns the entity's texture reference (a URL or painter tag)
func (e *Entity) Texture() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.texture
}

// SetTexture sets the entity's texture reference
func (e *Entity) SetTexture(ref string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.texture = ref
}

// Enabled reports whether the entity is visible
func (e *Entity) Enabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.enabled
}

// SetEnabled shows or hides the entity without disposing it
func (e *Entity) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
}

// Dispose removes the entity from the world permanently
func (e *Entity) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	world := e.world
	e.mu.Unlock()

	if world != nil {
		world.forget(e)
	}
}

// Disposed reports whether the entity has been disposed
func (e *Entity) Disposed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.disposed
}

// markDisposed flags the entity without touching the world registry; used by
// World.Dispose which already holds the world lock.
func (e *Entity) markDisposed() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed = true
}
