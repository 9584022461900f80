// internal/ui/buy_panel.go
package ui

import (
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// MouseState — состояние мыши в текущем кадре.
type MouseState struct {
	Position geom.Point
	Left     bool // left button is held down
	Right    bool // right button is held down
}

// Shop is what the buy panel needs from the game to sell towers.
type Shop interface {
	CanAfford(cost int) bool
	ValidPlacement(defID string, pos geom.Point) bool
	PlaceTower(defID string, pos geom.Point) error
}

// TowerIcon is one clickable tower on the buy panel.
type TowerIcon struct {
	DefID string
	Name  string
	Cost  int
	Box   geom.Rect
	// PriceAt is where the price label starts.
	PriceAt geom.Point
}

// BuyPanel — панель покупки башен. Помнит выбранную иконку и превращает
// клики по карте в покупки.
type BuyPanel struct {
	icons     []TowerIcon
	selected  int
	active    bool
	mouseDown bool
}

// NewBuyPanel lays the catalog's towers out left to right in catalog order.
func NewBuyPanel(catalog *defs.Catalog) *BuyPanel {
	p := &BuyPanel{}
	center := geom.Point{X: config.TowerIconsX, Y: config.BuyPanelHeight/2 - 10}
	for _, id := range catalog.TowerOrder {
		def, _ := catalog.Tower(id)
		box := geom.RectAt(center, def.Footprint)
		p.icons = append(p.icons, TowerIcon{
			DefID:   id,
			Name:    def.Name,
			Cost:    def.Cost,
			Box:     box,
			PriceAt: geom.Point{X: box.Left(), Y: config.BuyPanelHeight - config.TowerPricePadding},
		})
		center = center.Add(config.TowerIconPadding, 0)
	}
	return p
}

func (p *BuyPanel) Icons() []TowerIcon { return p.icons }

// SelectionActive reports whether a tower is picked and waiting to be placed.
func (p *BuyPanel) SelectionActive() bool { return p.active }

// Selected returns the picked tower type while a selection is active.
func (p *BuyPanel) Selected() (string, bool) {
	if !p.active {
		return "", false
	}
	return p.icons[p.selected].DefID, true
}

// Cancel drops the current selection.
func (p *BuyPanel) Cancel() {
	p.active = false
}

// Select picks the icon with the given tower type, as a click on it would.
func (p *BuyPanel) Select(defID string, shop Shop) bool {
	for i, icon := range p.icons {
		if icon.DefID == defID {
			p.selected = i
			p.active = shop.CanAfford(icon.Cost)
			return p.active
		}
	}
	return false
}

// Update handles one frame of mouse input. A button only counts on the frame
// it goes down. Without a selection, a left click on an affordable icon
// selects it. With one, a left click on a valid spot buys and places the
// tower, and a right click cancels. The selection also drops as soon as the
// tower is no longer affordable.
func (p *BuyPanel) Update(m MouseState, shop Shop) {
	pressed := !p.mouseDown
	switch {
	case len(p.icons) == 0:
	case !p.active:
		if m.Left && pressed {
			for i, icon := range p.icons {
				if icon.Box.Contains(m.Position) {
					p.selected = i
					p.active = shop.CanAfford(icon.Cost)
					break
				}
			}
		}
	default:
		icon := p.icons[p.selected]
		if m.Left && pressed && shop.ValidPlacement(icon.DefID, m.Position) {
			if err := shop.PlaceTower(icon.DefID, m.Position); err == nil {
				p.active = false
			}
		}
		if m.Right && pressed {
			p.active = false
		}
	}
	if p.active {
		p.active = shop.CanAfford(p.icons[p.selected].Cost)
	}
	p.mouseDown = m.Left || m.Right
}
