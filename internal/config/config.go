// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Layer stack geometry
	MaxLayers       = 5
	LayerSpacing    = 200.0 // distance between layer anchors along +Z
	CameraDistance  = 40.0  // camera sits this far behind the active layer
	ShiftDuration   = 2.0   // seconds
	InitialOpacity  = 0.90
	SettledOpacity  = 0.95
	MinBrightness   = 0.5
	SpawnRadius     = 50.0 // reward clusters scatter inside this disk
	SpawnZOffset    = 5.0  // clusters float slightly in front of their layer
	// px per world unit at distance 1; the active layer fills ~0.9 of the screen height
	FocalLength = 240.0

	// Run lifecycle
	IntroDelay       = 2.0 // seconds before the first countdown starts
	WarningThreshold = 8.0 // seconds left when the timer warning fires

	// Player
	PlayerRadius = 2.5

	ClickDebounceTime = 200 // ms
	BannerDuration    = 2.5 // seconds a HUD message stays fully visible
	BannerFade        = 0.8 // seconds of fade-out after that

	IndicatorOffsetX = 30
	IndicatorRadius  = 18.0
	TextCharWidth    = 7
	TextOffsetY      = 4
	StrokeWidth      = 2.0
)

// PenaltyNotice is shown when a dive is forced without enough charges.
const PenaltyNotice = "Not enough Charges to Dive - Timer reduced!"

// TimerExpiredMessage is shown when the countdown runs out.
const TimerExpiredMessage = "Timer expired"

var (
	BackgroundColor = color.RGBA{8, 12, 24, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	WarningColor    = color.RGBA{255, 170, 60, 255}
	PenaltyColor    = color.RGBA{230, 70, 70, 255}
	PlayerColor     = color.RGBA{120, 220, 255, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	IndicatorFill   = color.RGBA{40, 60, 110, 220}
	PanelColor      = color.RGBA{10, 16, 32, 190}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
)
