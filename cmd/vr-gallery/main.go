package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/galleryroom/vr-gallery/internal/assets"
	"github.com/galleryroom/vr-gallery/internal/audio"
	"github.com/galleryroom/vr-gallery/internal/config"
	"github.com/galleryroom/vr-gallery/internal/content"
	"github.com/galleryroom/vr-gallery/internal/gallery"
	"github.com/galleryroom/vr-gallery/internal/platform"
	"github.com/galleryroom/vr-gallery/internal/scene"
	"github.com/galleryroom/vr-gallery/internal/texture"
	"github.com/galleryroom/vr-gallery/internal/ui"
	"github.com/galleryroom/vr-gallery/internal/xr"
)

// Minimal launcher without room geometry or background music; the root
// package main is the full application.
func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.galleryroom.vr-gallery")
	myWindow := myApp.NewWindow("Gallery Room")
	myWindow.Resize(fyne.NewSize(640, 360))

	settings := config.NewSettings(myApp)
	registry := assets.NewRegistry()

	cacheDir, err := platform.GetCacheDir()
	if err != nil {
		log.Printf("failed to resolve cache dir, caching disabled: %v", err)
	}
	textures := texture.NewService(cacheDir, registry)
	fetcher := content.NewFetcher(settings.GetContentEndpoint(), settings.APIKey(), registry)

	world := scene.NewWorld()
	slots := gallery.NewSlotManager(world, textures)
	transitions := gallery.NewController(world, slots, fetcher)

	coordinator := audio.NewCoordinator(world, audio.DefaultFactories(nil))
	session := xr.NewController(world, coordinator)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, transitions, coordinator, session, registry)

	// Show and run
	myWindow.ShowAndRun()
}
