// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

const (
	statusLeftPadding = 10.0
	statusItemPadding = 250.0
)

// KeybindsText is shown at the right of the buy panel.
const KeybindsText = "Key binds:\n\nS - Start Wave\nL - Increase Timescale\nK - Decrease Timescale"

// Label — строка текста для отрисовки.
type Label struct {
	Text      string
	Position  geom.Point
	Highlight bool
}

// HUD holds the values shown on the panels.
type HUD struct {
	Wave      int
	Timescale float64
	Status    component.Status
	Lives     int
	Money     int
}

// StatusLabels lays out the status panel columns. The timescale column is
// highlighted while the game runs faster than normal.
func StatusLabels(h HUD) []Label {
	y := float64(config.ScreenHeight) - config.StatusPanelHeight/2
	texts := []string{
		fmt.Sprintf("Wave: %d", h.Wave),
		fmt.Sprintf("Time Scale: %.1f", h.Timescale),
		fmt.Sprintf("Status: %s", h.Status),
		fmt.Sprintf("Lives: %d", h.Lives),
	}
	labels := make([]Label, len(texts))
	for i, s := range texts {
		labels[i] = Label{Text: s, Position: geom.Point{X: statusLeftPadding + float64(i)*statusItemPadding, Y: y}}
	}
	labels[1].Highlight = h.Timescale > config.MinTimescale
	return labels
}

// MoneyLabel is the player's money on the buy panel.
func MoneyLabel(money int) Label {
	return Label{Text: fmt.Sprintf("$%d", money), Position: geom.Point{X: config.ScreenWidth - 200, Y: 65}}
}

// KeybindsLabel is the key reference on the buy panel.
func KeybindsLabel() Label {
	return Label{Text: KeybindsText, Position: geom.Point{X: config.ScreenWidth - 400, Y: 22}}
}

// PriceLabel is an icon's price, highlighted when the player can afford it.
func PriceLabel(icon TowerIcon, money int) Label {
	return Label{Text: fmt.Sprintf("$%d", icon.Cost), Position: icon.PriceAt, Highlight: money >= icon.Cost}
}
