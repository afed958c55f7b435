package audio

import (
	"fmt"
	"testing"
	"time"

	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/scene"
)

// fakePlayer records playback operations for assertions
type fakePlayer struct {
	playing  bool
	volume   float64
	position time.Duration
	closed   bool
}

func (f *fakePlayer) Play()                      { f.playing = true }
func (f *fakePlayer) Pause()                     { f.playing = false }
func (f *fakePlayer) IsPlaying() bool            { return f.playing }
func (f *fakePlayer) SetVolume(v float64)        { f.volume = v }
func (f *fakePlayer) Seek(p time.Duration) error { f.position = p; return nil }
func (f *fakePlayer) Current() time.Duration     { return f.position }
func (f *fakePlayer) Close() error               { f.closed = true; return nil }

// failingFactory always fails construction
func failingFactory(kind model.BackendKind) Factory {
	return Factory{Kind: kind, New: func() (Backend, error) {
		return nil, fmt.Errorf("forced failure")
	}}
}

func TestNewCoordinator_PrefersFirstBackend(t *testing.T) {
	world := scene.NewWorld()
	player := &fakePlayer{}

	coordinator := NewCoordinator(world, DefaultFactories(player))

	if got := coordinator.Backend(); got != model.BackendNativeSpatial {
		t.Errorf("Expected NativeSpatial backend, got %s", got)
	}
}

func TestNewCoordinator_FallsThroughOnFailure(t *testing.T) {
	world := scene.NewWorld()
	player := &fakePlayer{}

	factories := []Factory{
		failingFactory(model.BackendNativeSpatial),
		{Kind: model.BackendAmbisonic, New: func() (Backend, error) { return newSpatialBackend(model.BackendAmbisonic, player) }},
		{Kind: model.BackendFlat, New: func() (Backend, error) { return newFlatBackend(player) }},
	}

	coordinator := NewCoordinator(world, factories)

	if got := coordinator.Backend(); got != model.BackendAmbisonic {
		t.Errorf("Expected fall-through to Ambisonic, got %s", got)
	}

	// Toggle still functions on the fallback backend
	coordinator.Toggle()
	if !coordinator.Playing() {
		t.Error("Expected playing after toggle")
	}
	if !player.playing {
		t.Error("Expected underlying player to be playing")
	}
}

func TestNewCoordinator_TotalExhaustionIsInert(t *testing.T) {
	world := scene.NewWorld()

	coordinator := NewCoordinator(world, []Factory{
		failingFactory(model.BackendNativeSpatial),
		failingFactory(model.BackendFlat),
	})

	if got := coordinator.Backend(); got != model.BackendNone {
		t.Errorf("Expected BackendNone, got %s", got)
	}

	// Toggle is a safe no-op
	coordinator.Toggle()
	if coordinator.Playing() {
		t.Error("Expected inert coordinator to stay paused")
	}
}

func TestToggle(t *testing.T) {
	world := scene.NewWorld()
	player := &fakePlayer{}
	coordinator := NewCoordinator(world, DefaultFactories(player))

	coordinator.Toggle()
	if !coordinator.Playing() || !player.playing {
		t.Error("Expected playing after first toggle")
	}

	coordinator.Toggle()
	if coordinator.Playing() || player.playing {
		t.Error("Expected paused after second toggle")
	}
}

func TestUpdateFrame_TracksGeometry(t *testing.T) {
	world := scene.NewWorld()
	player := &fakePlayer{}
	coordinator := NewCoordinator(world, DefaultFactories(player))

	target := world.NewEntity("bgm-plane", 1, 1)
	target.SetPosition(scene.Vec3{Z: 3.4})
	coordinator.AttachTo(target)

	world.SetDesktopCamera(scene.Pose{Position: scene.Vec3{Z: 3.4}, Forward: scene.Vec3{Z: -1}, Up: scene.Vec3{Y: 1}})
	coordinator.UpdateFrame()
	nearVolume := player.volume

	world.SetDesktopCamera(scene.Pose{Position: scene.Vec3{Z: -10}, Forward: scene.Vec3{Z: 1}, Up: scene.Vec3{Y: 1}})
	coordinator.UpdateFrame()
	farVolume := player.volume

	if nearVolume != 1 {
		t.Errorf("Expected full gain at the source, got %v", nearVolume)
	}
	if farVolume >= nearVolume {
		t.Errorf("Expected attenuation with distance, got near=%v far=%v", nearVolume, farVolume)
	}
	if farVolume < minGain {
		t.Errorf("Expected gain floor %v, got %v", minGain, farVolume)
	}
}

func TestVRHandoff_SwapsAndRestores(t *testing.T) {
	world := scene.NewWorld()
	desktopPlayer := &fakePlayer{}
	vrPlayer := &fakePlayer{}

	// Desktop ends up on the flat backend; VR can construct a spatial one
	factories := []Factory{
		{Kind: model.BackendNativeSpatial, New: func() (Backend, error) { return newSpatialBackend(model.BackendNativeSpatial, vrPlayer) }},
		{Kind: model.BackendFlat, New: func() (Backend, error) { return newFlatBackend(desktopPlayer) }},
	}

	coordinator := &Coordinator{factories: factories, world: world}
	flat, err := newFlatBackend(desktopPlayer)
	if err != nil {
		t.Fatalf("Failed to build flat backend: %v", err)
	}
	coordinator.active = flat

	// Start playback on desktop, part-way through the loop
	coordinator.Toggle()
	desktopPlayer.position = 42 * time.Second

	coordinator.EnterVR()

	if got := coordinator.Backend(); got != model.BackendNativeSpatial {
		t.Errorf("Expected spatial backend in VR, got %s", got)
	}
	if desktopPlayer.playing {
		t.Error("Expected desktop player paused after handoff")
	}
	if !vrPlayer.playing {
		t.Error("Expected VR player playing after handoff")
	}
	if vrPlayer.position != 42*time.Second {
		t.Errorf("Expected loop position carried over, got %v", vrPlayer.position)
	}

	vrPlayer.position = 50 * time.Second
	coordinator.LeaveVR()

	if got := coordinator.Backend(); got != model.BackendFlat {
		t.Errorf("Expected flat backend restored, got %s", got)
	}
	if vrPlayer.playing {
		t.Error("Expected VR player paused after exit")
	}
	if !desktopPlayer.playing {
		t.Error("Expected desktop player resumed after exit")
	}
	if desktopPlayer.position != 50*time.Second {
		t.Errorf("Expected loop position carried back, got %v", desktopPlayer.position)
	}
}

func TestVRHandoff_PausedStaysPaused(t *testing.T) {
	world := scene.NewWorld()
	desktopPlayer := &fakePlayer{}
	vrPlayer := &fakePlayer{}

	factories := []Factory{
		{Kind: model.BackendPanner, New: func() (Backend, error) { return newSpatialBackend(model.BackendPanner, vrPlayer) }},
	}

	coordinator := &Coordinator{factories: factories, world: world}
	flat, _ := newFlatBackend(desktopPlayer)
	coordinator.active = flat

	coordinator.EnterVR()
	if vrPlayer.playing {
		t.Error("Expected paused music to stay paused through handoff")
	}

	coordinator.LeaveVR()
	if desktopPlayer.playing {
		t.Error("Expected paused music to stay paused after exit")
	}
}

func TestVRHandoff_SpatialBackendNeedsNoSwap(t *testing.T) {
	world := scene.NewWorld()
	player := &fakePlayer{}
	coordinator := NewCoordinator(world, DefaultFactories(player))

	before := coordinator.Backend()
	coordinator.EnterVR()

	if got := coordinator.Backend(); got != before {
		t.Errorf("Expected spatial backend kept across VR entry, got %s", got)
	}

	coordinator.LeaveVR()
	if got := coordinator.Backend(); got != before {
		t.Errorf("Expected backend unchanged after VR exit, got %s", got)
	}
}

func TestVRHandoff_Idempotent(t *testing.T) {
	world := scene.NewWorld()
	desktopPlayer := &fakePlayer{}
	vrPlayer := &fakePlayer{}

	factories := []Factory{
		{Kind: model.BackendPanner, New: func() (Backend, error) { return newSpatialBackend(model.BackendPanner, vrPlayer) }},
	}
	coordinator := &Coordinator{factories: factories, world: world}
	flat, _ := newFlatBackend(desktopPlayer)
	coordinator.active = flat
	coordinator.playing = true
	flat.Play()

	coordinator.EnterVR()
	coordinator.EnterVR()

	if got := coordinator.Backend(); got != model.BackendPanner {
		t.Errorf("Expected single handoff, got %s", got)
	}

	coordinator.LeaveVR()
	coordinator.LeaveVR()

	if got := coordinator.Backend(); got != model.BackendFlat {
		t.Errorf("Expected flat backend after exits, got %s", got)
	}
	if !desktopPlayer.playing {
		t.Error("Expected playback resumed once after exit")
	}
}
