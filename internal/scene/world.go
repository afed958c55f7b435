package scene

import (
	"sync"
)

// Vec3 is a position or direction in world space
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference of two vectors
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Pose is a camera or listener transform: a position plus forward and up
// directions.
type Pose struct {
	Position Vec3
	Forward  Vec3
	Up       Vec3
}

// World owns every entity in the gallery room plus the active camera pose.
// It is safe for concurrent use; animation goroutines and the UI thread both
// touch it.
type World struct {
	mu       sync.RWMutex
	entities map[string][]*Entity
	disposed bool

	desktopCamera Pose
	xrCamera      Pose
	xrActive      bool
}

// NewWorld creates an empty world with a default camera at the origin
// looking down negative depth.
func NewWorld() *World {
	return &World{
		entities: make(map[string][]*Entity),
		desktopCamera: Pose{
			Forward: Vec3{Z: -1},
			Up:      Vec3{Y: 1},
		},
	}
}

// NewEntity creates a plane entity and registers it under name. Multiple
// entities may share a name; lookup returns the first live one.
func (w *World) NewEntity(name string, width, height float64) *Entity {
	e := &Entity{
		name:    name,
		width:   width,
		height:  height,
		enabled: true,
		world:   w,
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disposed {
		e.disposed = true
		return e
	}
	w.entities[name] = append(w.entities[name], e)
	return e
}

// EntityByName returns the first live entity registered under name, or nil.
func (w *World) EntityByName(name string) *Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, e := range w.entities[name] {
		if !e.Disposed() {
			return e
		}
	}
	return nil
}

// Count returns the number of live entities in the world
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	count := 0
	for _, group := range w.entities {
		for _, e := range group {
			if !e.Disposed() {
				count++
			}
		}
	}
	return count
}

// Translate shifts every live entity by delta. Used for one-time world
// recentering when a VR session starts.
func (w *World) Translate(delta Vec3) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, group := range w.entities {
		for _, e := range group {
			if !e.Disposed() {
				e.SetPosition(e.Position().Add(delta))
			}
		}
	}
}

// SetDesktopCamera updates the desktop camera pose
func (w *World) SetDesktopCamera(pose Pose) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.desktopCamera = pose
}

// SetXRCamera updates the head-mounted camera pose
func (w *World) SetXRCamera(pose Pose) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.xrCamera = pose
}

// SetXRActive marks whether an XR session owns the view
func (w *World) SetXRActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.xrActive = active
}

// ActiveCamera returns the pose audio listeners should track: the XR camera
// during a session, the desktop camera otherwise.
func (w *World) ActiveCamera() Pose {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.xrActive {
		return w.xrCamera
	}
	return w.desktopCamera
}

// Dispose tears the world down. In-flight animations observe the flag and
// resolve without completing.
func (w *World) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.disposed = true
	for _, group := range w.entities {
		for _, e := range group {
			e.markDisposed()
		}
	}
	w.entities = make(map[string][]*Entity)
}

// Disposed reports whether the world has been torn down
func (w *World) Disposed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.disposed
}

// forget drops a disposed entity from the registry
func (w *World) forget(e *Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	group := w.entities[e.name]
	for i, candidate := range group {
		if candidate == e {
			w.entities[e.name] = append(group[:i], group[i+1:]...)
			break
		}
	}
	if len(w.entities[e.name]) == 0 {
		delete(w.entities, e.name)
	}
}
