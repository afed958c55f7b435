package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/scene"
)

// Gain model constants shared by the spatial backends
const (
	// referenceDistance is the source distance at which gain is 1
	referenceDistance = 1.0

	// rolloff scales how quickly gain falls with distance
	rolloff = 0.6

	// minGain keeps the music faintly audible anywhere in the room
	minGain = 0.05
)

// Backend is one concrete strategy for producing the background music.
// Exactly one backend is active at a time; swaps happen only through an
// explicit pause/resume bracket.
type Backend interface {
	Kind() model.BackendKind
	Play()
	Pause()
	SetListener(pose scene.Pose)
	SetSourcePosition(position scene.Vec3)
	Current() time.Duration
	Seek(position time.Duration)
	Close() error
}

// Factory constructs one backend, failing when its strategy is unavailable.
// The coordinator walks an ordered factory list exactly once at
// initialization and again when a VR handoff needs a spatial backend.
type Factory struct {
	Kind model.BackendKind
	New  func() (Backend, error)
}

// DefaultFactories returns the standard preference order wired to player.
// Each factory fails cleanly when player is nil, which drives the fall-through.
func DefaultFactories(player Player) []Factory {
	return []Factory{
		{Kind: model.BackendNativeSpatial, New: func() (Backend, error) { return newSpatialBackend(model.BackendNativeSpatial, player) }},
		{Kind: model.BackendAmbisonic, New: func() (Backend, error) { return newSpatialBackend(model.BackendAmbisonic, player) }},
		{Kind: model.BackendPanner, New: func() (Backend, error) { return newSpatialBackend(model.BackendPanner, player) }},
		{Kind: model.BackendFlat, New: func() (Backend, error) { return newFlatBackend(player) }},
	}
}

// spatialBackend drives the shared player with a gain derived from the
// listener/source geometry. The three spatial kinds differ in how a real
// engine routes them; the distance model is common.
type spatialBackend struct {
	kind     model.BackendKind
	player   Player
	listener scene.Pose
	source   scene.Vec3
}

func newSpatialBackend(kind model.BackendKind, player Player) (Backend, error) {
	if player == nil {
		return nil, fmt.Errorf("%s backend unavailable: no player", kind)
	}
	return &spatialBackend{kind: kind, player: player}, nil
}

func (b *spatialBackend) Kind() model.BackendKind { return b.kind }
func (b *spatialBackend) Play()                   { b.player.Play() }
func (b *spatialBackend) Pause()                  { b.player.Pause() }
func (b *spatialBackend) Current() time.Duration  { return b.player.Current() }

func (b *spatialBackend) Seek(position time.Duration) {
	// Loop-position continuity across handoffs is best-effort
	_ = b.player.Seek(position)
}

func (b *spatialBackend) SetListener(pose scene.Pose) {
	b.listener = pose
	b.applyGain()
}

func (b *spatialBackend) SetSourcePosition(position scene.Vec3) {
	b.source = position
	b.applyGain()
}

func (b *spatialBackend) Close() error {
	b.player.Pause()
	return nil
}

// applyGain recomputes playback volume from the current geometry
func (b *spatialBackend) applyGain() {
	delta := b.source.Sub(b.listener.Position)
	distance := math.Sqrt(delta.X*delta.X + delta.Y*delta.Y + delta.Z*delta.Z)

	gain := 1.0
	if distance > referenceDistance {
		gain = referenceDistance / (referenceDistance + rolloff*(distance-referenceDistance))
	}
	if gain < minGain {
		gain = minGain
	}
	b.player.SetVolume(gain)
}

// flatBackend is plain non-spatial playback; geometry updates are ignored
type flatBackend struct {
	player Player
}

func newFlatBackend(player Player) (Backend, error) {
	if player == nil {
		return nil, fmt.Errorf("flat backend unavailable: no player")
	}
	player.SetVolume(1)
	return &flatBackend{player: player}, nil
}

func (b *flatBackend) Kind() model.BackendKind      { return model.BackendFlat }
func (b *flatBackend) Play()                        { b.player.Play() }
func (b *flatBackend) Pause()                       { b.player.Pause() }
func (b *flatBackend) SetListener(scene.Pose)       {}
func (b *flatBackend) SetSourcePosition(scene.Vec3) {}
func (b *flatBackend) Current() time.Duration       { return b.player.Current() }
func (b *flatBackend) Seek(position time.Duration)  { _ = b.player.Seek(position) }
func (b *flatBackend) Close() error {
	b.player.Pause()
	return nil
}
