package parameter

import "time"

// History panel
const (
	// HistorySize is the number of most recent results kept for display
	HistorySize = 10

	// HistoryPanelWidth is the inner width of the history box in cells
	HistoryPanelWidth = 26
)

// HUD text
const (
	TitleText    = "🎲 Dice Roller"
	SubtitleText = "Press space or click anywhere to roll the dice!"
	TipText      = "Tip: space/click roll • p pause • c clear • d debug • q quit"
	PausedText   = " PAUSED "
	HistoryTitle = "Roll History"
)

// HUD colours
const (
	BackgroundHex = "#1a1a2e"
	PanelHex      = "#101018"
	TextHex       = "#ffffff"
	DimTextHex    = "#9a9aa8"
	ResultHex     = "#ffff00"
	ResultGlowHex = "#807a10"
	HighlightHex  = "#ffff00"
	BorderHex     = "#5a5a6a"
	RollingHex    = "#d0d0d0"
	DebugHex      = "#66ccff"
	PausedHex     = "#ff6666"
)

// Animation timing
const (
	// SpinnerFrameDuration is the time each rolling indicator glyph is held
	SpinnerFrameDuration = 120 * time.Millisecond

	// ResultPulsePeriod is the period of the result brightness pulse
	ResultPulsePeriod = time.Second
)

// SpinnerFrames is the rolling indicator cycle
var SpinnerFrames = []rune{'◐', '◓', '◑', '◒'}

// CellPixelAspect is the width/height ratio of one half-block pixel on a typical terminal
const CellPixelAspect = 1.0
