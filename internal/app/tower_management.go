// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/system"
	"github.com/gttkeith/gtt-sdef/internal/ui"
	"github.com/gttkeith/gtt-sdef/internal/utils"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSuspended         = errors.New("game is over")
	ErrInvalidPlacement  = system.ErrInvalidPlacement
	ErrUnknownTower      = system.ErrUnknownTower
)

// PlaceTower buys a tower and builds it centred on pos. Money is only taken
// once the spot has been checked, so a rejected request costs nothing.
func (g *Game) PlaceTower(defID string, pos geom.Point) error {
	if g.PlayerSystem.IsSuspended() {
		return ErrSuspended
	}
	def, ok := g.Catalog.Tower(defID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTower, defID)
	}
	if !g.CombatSystem.ValidPlacement(defID, pos) {
		return ErrInvalidPlacement
	}
	if !g.PlayerSystem.SpendIfAffordable(def.Cost) {
		return fmt.Errorf("%w: %q costs %d, have %d", ErrInsufficientFunds, defID, def.Cost, g.Money())
	}
	_, err := g.CombatSystem.Place(defID, pos)
	return err
}

// CanAfford reports whether the player has money for a purchase of cost.
func (g *Game) CanAfford(cost int) bool {
	return g.PlayerSystem.CanAfford(cost)
}

// ValidPlacement reports whether a tower of type defID may be built at pos.
func (g *Game) ValidPlacement(defID string, pos geom.Point) bool {
	return g.CombatSystem.ValidPlacement(defID, pos)
}

// HandleMouse feeds one frame of mouse input to the buy panel. Input is
// ignored once the game is decided.
func (g *Game) HandleMouse(m ui.MouseState) {
	if g.PlayerSystem.IsSuspended() {
		return
	}
	g.Shop.Update(m, g)
}

// SelectTower picks a tower from the buy panel without clicking its icon.
func (g *Game) SelectTower(defID string) bool {
	if g.PlayerSystem.IsSuspended() {
		return false
	}
	return g.Shop.Select(defID, g)
}

// PlacementPreview describes the tower that would be built at the cursor.
type PlacementPreview struct {
	DefID    string
	Box      geom.Rect
	Rotation float64
	Valid    bool
}

// Preview returns the ghost of the selected tower at pos, if one is selected.
// Air support is shown facing the track it will take.
func (g *Game) Preview(pos geom.Point) (PlacementPreview, bool) {
	defID, ok := g.Shop.Selected()
	if !ok {
		return PlacementPreview{}, false
	}
	def, _ := g.Catalog.Tower(defID)
	p := PlacementPreview{
		DefID: defID,
		Box:   geom.RectAt(pos, def.Footprint),
		Valid: g.CombatSystem.ValidPlacement(defID, pos),
	}
	if def.AirSupport {
		p.Rotation = config.SpriteRotationOffset
		if !g.CombatSystem.PlaneWillBeHorizontal() {
			p.Rotation = 2 * config.SpriteRotationOffset
		}
	}
	return p, true
}

// AdjustTimescale changes the timescale by delta within its limits.
func (g *Game) AdjustTimescale(delta float64) {
	g.timescale = utils.Clamp(g.timescale+delta, config.MinTimescale, config.MaxTimescale)
}

// PressTimescale applies delta once per press: further presses are ignored
// until ReleaseTimescale is called.
func (g *Game) PressTimescale(delta float64) {
	if g.PlayerSystem.IsSuspended() || g.timescaleAdjusting {
		return
	}
	g.AdjustTimescale(delta)
	g.timescaleAdjusting = true
}

// ReleaseTimescale re-arms PressTimescale once every timescale key is up.
func (g *Game) ReleaseTimescale() {
	g.timescaleAdjusting = false
}
