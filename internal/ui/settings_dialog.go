package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/galleryroom/vr-gallery/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	endpointEntry  *widget.Entry
	proxyEntry     *widget.Entry
	useProxyCheck  *widget.Check
	musicEntry     *widget.Entry
	groundEntry    *widget.Entry
	wallEntry      *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Content API endpoint
	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultContentEndpoint)

	// Proxy endpoint plus the switch that routes fetches through it
	sd.proxyEntry = widget.NewEntry()
	sd.proxyEntry.SetPlaceHolder(config.DefaultProxyEndpoint)
	sd.useProxyCheck = widget.NewCheck(sd.localization.GetText(KeyUseProxy), nil)

	// Room asset locations
	sd.musicEntry = widget.NewEntry()
	sd.musicEntry.SetPlaceHolder(config.DefaultMusicURL)
	sd.groundEntry = widget.NewEntry()
	sd.groundEntry.SetPlaceHolder(config.DefaultGroundTexture)
	sd.wallEntry = widget.NewEntry()
	sd.wallEntry.SetPlaceHolder(config.DefaultWallTexture)

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyContentAPI)+":"),
		sd.endpointEntry,

		widget.NewLabel(sd.localization.GetText(KeyProxyAPI)+":"),
		sd.proxyEntry,
		sd.useProxyCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyMusicFile)+":"),
		sd.musicEntry,

		widget.NewLabel(sd.localization.GetText(KeyGroundTexture)+":"),
		sd.groundEntry,

		widget.NewLabel(sd.localization.GetText(KeyWallTexture)+":"),
		sd.wallEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetContentEndpoint())
	sd.proxyEntry.SetText(sd.settings.GetProxyEndpoint())
	sd.useProxyCheck.SetChecked(sd.settings.GetUseProxy())
	sd.musicEntry.SetText(sd.settings.GetMusicURL())
	sd.groundEntry.SetText(sd.settings.GetGroundTexture())
	sd.wallEntry.SetText(sd.settings.GetWallTexture())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings. Endpoint and asset changes take effect
// on the next application start; the scene is not rebuilt live.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.endpointEntry.Text != "" {
		sd.settings.SetContentEndpoint(sd.endpointEntry.Text)
	}
	if sd.proxyEntry.Text != "" {
		sd.settings.SetProxyEndpoint(sd.proxyEntry.Text)
	}
	sd.settings.SetUseProxy(sd.useProxyCheck.Checked)

	if sd.musicEntry.Text != "" {
		sd.settings.SetMusicURL(sd.musicEntry.Text)
	}
	if sd.groundEntry.Text != "" {
		sd.settings.SetGroundTexture(sd.groundEntry.Text)
	}
	if sd.wallEntry.Text != "" {
		sd.settings.SetWallTexture(sd.wallEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
