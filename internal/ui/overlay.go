package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/galleryroom/vr-gallery/internal/assets"
)

// LoadingOverlay renders the shared loading indicator driven by the asset
// registry. It shows the remaining percentage counting down to zero while
// photos, textures and audio are being fetched, and hides itself once the
// registry reports the batch settled.
type LoadingOverlay struct {
	registry     *assets.Registry
	localization *Localization

	content *fyne.Container
	bar     *widget.ProgressBar
	label   *widget.Label

	// Refresh debouncing
	lastRefresh  time.Time
	refreshMutex sync.Mutex
}

// NewLoadingOverlay creates the overlay and subscribes it to the registry.
func NewLoadingOverlay(registry *assets.Registry, localization *Localization) *LoadingOverlay {
	o := &LoadingOverlay{
		registry:     registry,
		localization: localization,
	}

	o.bar = widget.NewProgressBar()
	o.bar.Min = 0
	o.bar.Max = 100

	o.label = widget.NewLabel(o.remainingText(100))
	o.label.Alignment = fyne.TextAlignCenter

	o.content = container.NewVBox(o.label, o.bar)
	o.content.Hide()

	registry.SetOverlayCallbacks(o.onShow, o.onHide)
	registry.SetProgressCallback(o.onProgress)
	return o
}

// Content returns the overlay's root container for embedding in a layout.
func (o *LoadingOverlay) Content() *fyne.Container {
	return o.content
}

// Visible reports whether the overlay is currently shown.
func (o *LoadingOverlay) Visible() bool {
	return o.content.Visible()
}

// onShow fires as a session opens; the first progress callback lands right
// after and corrects the countdown.
func (o *LoadingOverlay) onShow() {
	fyne.Do(func() {
		o.refresh(0)
		o.content.Show()
	})
}

func (o *LoadingOverlay) onHide() {
	fyne.Do(func() {
		o.content.Hide()
	})
}

// onProgress runs on loader goroutines. Intermediate updates are coalesced;
// the terminal 100% update always goes through so the countdown ends at zero.
func (o *LoadingOverlay) onProgress(loaded, total int) {
	percent := 0
	if total > 0 {
		percent = (loaded*100 + total/2) / total
	}

	if percent < 100 {
		o.refreshMutex.Lock()
		now := time.Now()
		if now.Sub(o.lastRefresh) < OverlayRefreshDebounce {
			o.refreshMutex.Unlock()
			return
		}
		o.lastRefresh = now
		o.refreshMutex.Unlock()
	}

	fyne.Do(func() {
		o.refresh(percent)
	})
}

func (o *LoadingOverlay) refresh(percent int) {
	o.bar.SetValue(float64(percent))
	o.label.SetText(o.remainingText(100 - percent))
}

func (o *LoadingOverlay) remainingText(remaining int) string {
	return o.localization.GetText(KeyLoading) + MiddleDotSeparator + fmt.Sprintf(RemainingLabelFormat, remaining)
}
