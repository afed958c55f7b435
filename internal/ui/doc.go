package ui

// Package ui contains the Fyne-based desktop user interface for the gallery.
// It wires user interactions to the page transition controller, the audio
// coordinator, and the XR session controller, and renders the loading overlay
// driven by the asset registry. All UI strings are localized via Localization.
