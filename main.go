package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/galleryroom/vr-gallery/internal/assets"
	"github.com/galleryroom/vr-gallery/internal/audio"
	"github.com/galleryroom/vr-gallery/internal/config"
	"github.com/galleryroom/vr-gallery/internal/content"
	"github.com/galleryroom/vr-gallery/internal/gallery"
	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/platform"
	"github.com/galleryroom/vr-gallery/internal/scene"
	"github.com/galleryroom/vr-gallery/internal/texture"
	"github.com/galleryroom/vr-gallery/internal/ui"
	"github.com/galleryroom/vr-gallery/internal/xr"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.galleryroom.vr-gallery"
	AppName = "Gallery Room"

	WindowWidth  = 640
	WindowHeight = 360

	// Listener/emitter poses are re-read at roughly animation rate; audio
	// gain does not need per-render-frame precision.
	FrameInterval = 50 * time.Millisecond

	RoomSize       = 12.0
	WallHeight     = 4.0
	ArrowElevation = 0.9
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Load .env if present; the content API key travels via environment
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply gallery theme
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	registry := assets.NewRegistry()

	cacheDir, err := platform.GetCacheDir()
	if err != nil {
		log.Printf("failed to resolve cache dir, caching disabled: %v", err)
	}
	textures := texture.NewService(cacheDir, registry)

	endpoint, apiKey := settings.GetContentEndpoint(), settings.APIKey()
	if settings.GetUseProxy() {
		// The proxy injects the key server-side
		endpoint, apiKey = settings.GetProxyEndpoint(), ""
	}
	fetcher := content.NewFetcher(endpoint, apiKey, registry)

	// Build the scene
	world := scene.NewWorld()
	bgmEmitter := buildRoom(world, settings, textures)

	slots := gallery.NewSlotManager(world, textures)
	transitions := gallery.NewController(world, slots, fetcher)

	// Audio: first backend that constructs wins
	player, err := audio.LoadMusicFile(settings.GetMusicURL(), registry)
	if err != nil {
		log.Printf("background music unavailable: %v", err)
	}
	coordinator := audio.NewCoordinator(world, audio.DefaultFactories(player))
	coordinator.AttachTo(bgmEmitter)

	session := xr.NewController(world, coordinator)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, transitions, coordinator, session, registry)

	// Initial page load
	go func() {
		page, err := fetcher.FetchPage(context.Background(), 0)
		if err != nil {
			log.Printf("initial page fetch failed: %v", err)
			return
		}
		if err := slots.BindPage(page); err != nil {
			log.Printf("initial page bind failed: %v", err)
			return
		}
		transitions.SetPageState(model.PageState{Offset: page.Offset, TotalCount: page.TotalCount})
	}()

	// Per-frame audio pose updates
	ticker := time.NewTicker(FrameInterval)
	go func() {
		for range ticker.C {
			coordinator.UpdateFrame()
		}
	}()

	myWindow.SetOnClosed(func() {
		ticker.Stop()
		transitions.Stop()
		world.Dispose()
	})

	// Show and run
	myWindow.ShowAndRun()
}

// buildRoom creates the static room geometry and returns the music emitter
// entity. The prev/next arrows double as the landmarks XR recentering aligns
// the player between.
func buildRoom(world *scene.World, settings *config.Settings, textures *texture.Service) *scene.Entity {
	ground := world.NewEntity("ground", RoomSize, RoomSize)
	ground.SetPosition(scene.Vec3{X: 0, Y: 0, Z: 0})
	ground.SetTexture(settings.GetGroundTexture())
	textures.Load(settings.GetGroundTexture())

	wallURL := settings.GetWallTexture()
	textures.Load(wallURL)
	walls := []struct {
		name     string
		position scene.Vec3
		rotation float64
	}{
		{"wall-north", scene.Vec3{X: 0, Y: WallHeight / 2, Z: -RoomSize / 2}, 180},
		{"wall-south", scene.Vec3{X: 0, Y: WallHeight / 2, Z: RoomSize / 2}, 0},
		{"wall-west", scene.Vec3{X: -RoomSize / 2, Y: WallHeight / 2, Z: 0}, 90},
		{"wall-east", scene.Vec3{X: RoomSize / 2, Y: WallHeight / 2, Z: 0}, -90},
	}
	for _, w := range walls {
		e := world.NewEntity(w.name, RoomSize, WallHeight)
		e.SetPosition(w.position)
		e.SetRotationY(w.rotation)
		e.SetTexture(wallURL)
	}

	prev := world.NewEntity(xr.LandmarkArrowPrev, 0.5, 0.5)
	prev.SetPosition(scene.Vec3{X: -1.2, Y: ArrowElevation, Z: 1.0})
	next := world.NewEntity(xr.LandmarkArrowNext, 0.5, 0.5)
	next.SetPosition(scene.Vec3{X: 1.2, Y: ArrowElevation, Z: 1.0})

	// Music plays from beside the back-wall photo slot
	bgm := world.NewEntity("bgm-emitter", 0.3, 0.3)
	bgm.SetPosition(scene.Vec3{X: 1.6, Y: 1.6, Z: 3.4})
	return bgm
}
