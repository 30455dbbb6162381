package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconStop     = "⏹"
	IconError    = "❌"
	IconAgeMark  = "🔞"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Window and layout sizing
const (
	WindowMinWidth  float32 = 640
	WindowMinHeight float32 = 480

	FormatListMinHeight float32 = 220
	SettingsDialogW     float32 = 460
	SettingsDialogH     float32 = 360
)

// Debounce for progress line updates coming from the pipeline
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
