package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconPrev     = "◀"
	IconNext     = "▶"
	IconMusic    = "🎵"
	IconHeadset  = "🥽"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator   = " · "
	DashPlaceholder      = "—"
	RemainingLabelFormat = "%d"
	PageLabelFormat      = "%d / %d"
)

// Layout sizing
const (
	ArrowButtonWidth  float32 = 72
	ArrowButtonHeight float32 = 48

	OverlayBarWidth  float32 = 240
	OverlayBarHeight float32 = 12

	StatusLabelWidth float32 = 120
)

// Overlay update behavior. Progress callbacks arrive from loader
// goroutines; refreshes are coalesced so a burst of texture completions
// does not thrash the canvas.
const (
	OverlayRefreshDebounce = 50 * time.Millisecond
)
