// internal/config/config.go
package config

import (
	"image/color"

	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	FrameRate    = 75 // Hz
	MaxDeltaTime = 0.06

	// Panels that towers cannot be built on.
	BuyPanelHeight    = 100.0
	StatusPanelHeight = 25.0

	LaneWidth = 25.0

	StartingLives = 25
	StartingMoney = 500

	WaveRewardBase       = 150
	WaveRewardMultiplier = 100

	ProjectileSpeed      = 750.0 // pixels per second
	BombExplodeDelay     = 2.0   // seconds
	AirplaneSpeed        = 375.0 // pixels per second
	SpriteRotationOffset = 1.5707963267948966

	MinTimescale  = 1.0
	MaxTimescale  = 5.0
	TimescaleStep = 1.0

	// Buy panel layout.
	TowerIconsX       = 64.0
	TowerIconPadding  = 120.0
	TowerPricePadding = 12.0
)

var (
	EnemyFootprint      = geom.Size{W: 40, H: 40}
	TowerFootprint      = geom.Size{W: 50, H: 50}
	AirplaneFootprint   = geom.Size{W: 60, H: 60}
	ProjectileFootprint = geom.Size{W: 10, H: 10}
)

// Panels returns the screen areas covered by the buy and status panels.
func Panels() []geom.Rect {
	return []geom.Rect{
		{X: 0, Y: 0, W: ScreenWidth, H: BuyPanelHeight},
		{X: 0, Y: ScreenHeight - StatusPanelHeight, W: ScreenWidth, H: StatusPanelHeight},
	}
}

var (
	BackgroundColor   = color.RGBA{34, 46, 34, 255}
	LaneColor         = color.RGBA{120, 100, 70, 255}
	PanelColor        = color.RGBA{40, 40, 50, 230}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	AffordableColor   = color.RGBA{0, 255, 0, 255}
	UnaffordableColor = color.RGBA{255, 0, 0, 255}
	SelectedColor     = color.RGBA{0, 255, 0, 128}
	SpeedupColor      = color.RGBA{0, 255, 0, 255}
	EnemyColor        = color.RGBA{200, 40, 40, 255}
	TowerColor        = color.RGBA{70, 130, 180, 255}
	AirplaneColor     = color.RGBA{194, 178, 128, 255}
	ProjectileColor   = color.RGBA{255, 215, 0, 255}
	BombColor         = color.RGBA{20, 20, 30, 255}
	InvalidPlaceColor = color.RGBA{255, 0, 0, 96}
	PreviewPlaceColor = color.RGBA{255, 255, 255, 96}
)
