package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/galleryroom/vr-gallery/internal/assets"
	"github.com/galleryroom/vr-gallery/internal/audio"
	"github.com/galleryroom/vr-gallery/internal/config"
	"github.com/galleryroom/vr-gallery/internal/gallery"
	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/xr"
)

// RootUI represents the main UI structure. The desktop window carries the
// gallery controls; the rendered room itself lives in the scene graph, so the
// window is a control strip rather than a viewport.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	transitions *gallery.Controller
	coordinator *audio.Coordinator
	session     *xr.Controller
	overlay     *LoadingOverlay

	prevBtn      *widget.Button
	nextBtn      *widget.Button
	musicBtn     *widget.Button
	vrBtn        *widget.Button
	statusLabel  *widget.Label
	pageLabel    *widget.Label
	backendLabel *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, transitions *gallery.Controller, coordinator *audio.Coordinator, session *xr.Controller, registry *assets.Registry) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		transitions:  transitions,
		coordinator:  coordinator,
		session:      session,
	}

	log.Printf("RootUI initialized with transition controller: %v", ui.transitions != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Overlay subscribes itself to the registry
	ui.overlay = NewLoadingOverlay(registry, localization)
	ui.setupUI()

	// Status updates arrive from the transition worker goroutine
	ui.transitions.SetStatusCallback(ui.onTransitionStatus)
	return ui
}

// Overlay returns the loading overlay for visibility checks.
func (ui *RootUI) Overlay() *LoadingOverlay {
	return ui.overlay
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Page navigation buttons
	ui.prevBtn = widget.NewButton(IconPrev+" "+ui.localization.GetText(KeyPrevPage), func() {
		ui.onAdvance(-1)
	})
	ui.nextBtn = widget.NewButton(ui.localization.GetText(KeyNextPage)+" "+IconNext, func() {
		ui.onAdvance(1)
	})

	// Music toggle
	ui.musicBtn = widget.NewButton(IconMusic+" "+ui.localization.GetText(KeyMusic), ui.onMusicToggle)

	// VR session toggle
	ui.vrBtn = widget.NewButton(IconHeadset+" "+ui.localization.GetText(KeyEnterVR), ui.onVRToggle)

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Status strip
	ui.statusLabel = widget.NewLabel("")
	ui.pageLabel = widget.NewLabel(DashPlaceholder)
	ui.backendLabel = widget.NewLabel(ui.backendText())

	controls := container.NewHBox(ui.prevBtn, ui.pageLabel, ui.nextBtn, ui.musicBtn, ui.vrBtn)
	statusStrip := container.NewHBox(ui.statusLabel, ui.backendLabel, settingsBtn)

	content := container.NewBorder(
		ui.overlay.Content(),
		container.NewVBox(controls, statusStrip),
		nil, nil,
		widget.NewLabel(""),
	)
	ui.window.SetContent(content)
}

// createMenu builds the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	appMenu := fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem)
	ui.window.SetMainMenu(fyne.NewMainMenu(appMenu))
}

// onAdvance queues a page turn. Repeated clicks while a transition runs are
// deliberately not dropped; the controller serializes them in order.
func (ui *RootUI) onAdvance(direction int) {
	ui.transitions.Advance(direction)
}

// onMusicToggle flips background music playback
func (ui *RootUI) onMusicToggle() {
	ui.coordinator.Toggle()
	ui.refreshMusicButton()
}

// onVRToggle simulates headset session entry and exit
func (ui *RootUI) onVRToggle() {
	if ui.session.Active() {
		ui.session.OnSessionEnd()
	} else {
		ui.session.OnSessionStart()
	}
	ui.refreshVRButton()
	ui.backendLabel.SetText(ui.backendText())
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// onTransitionStatus handles status changes from the transition controller
func (ui *RootUI) onTransitionStatus(status model.TransitionStatus) {
	fyne.Do(func() {
		if status.IsActive() {
			ui.statusLabel.SetText(ui.localization.GetText(KeyTransitionBusy))
			return
		}
		ui.statusLabel.SetText("")
		ui.refreshPageLabel()
	})
}

// refreshPageLabel shows the 1-based page position, e.g. "2 / 4"
func (ui *RootUI) refreshPageLabel() {
	page := ui.transitions.PageState()
	if page.TotalCount <= 0 {
		ui.pageLabel.SetText(DashPlaceholder)
		return
	}
	current := page.Offset/model.PageSize + 1
	total := (page.TotalCount + model.PageSize - 1) / model.PageSize
	ui.pageLabel.SetText(fmt.Sprintf(PageLabelFormat, current, total))
}

func (ui *RootUI) refreshMusicButton() {
	if ui.coordinator.Playing() {
		ui.musicBtn.SetText(IconPause + " " + ui.localization.GetText(KeyMusic))
	} else {
		ui.musicBtn.SetText(IconMusic + " " + ui.localization.GetText(KeyMusic))
	}
}

func (ui *RootUI) refreshVRButton() {
	if ui.session.Active() {
		ui.vrBtn.SetText(IconHeadset + " " + ui.localization.GetText(KeyExitVR))
	} else {
		ui.vrBtn.SetText(IconHeadset + " " + ui.localization.GetText(KeyEnterVR))
	}
}

func (ui *RootUI) backendText() string {
	kind := ui.coordinator.Backend()
	if kind == model.BackendNone {
		return ui.localization.GetText(KeyAudioDisabled)
	}
	return ui.localization.GetText(KeyAudioBackend) + MiddleDotSeparator + string(kind)
}
