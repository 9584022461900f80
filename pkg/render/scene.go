// pkg/render/scene.go
package render

import (
	"image/color"
	"math"
	"strings"
	"unicode"

	"github.com/gttkeith/gtt-sdef/internal/app"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/ui"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// Shape is one rectangle of the scene. Glyph is what a terminal draws in its cells.
type Shape struct {
	Box      geom.Rect
	Color    color.RGBA
	Glyph    rune
	Rotation float64
	// Heading shapes show which way they face.
	Heading bool
}

// Label is a line (or several, split on '\n') of text at a screen position.
type Label struct {
	Text     string
	Position geom.Point
	Color    color.RGBA
}

// Scene is one frame in back-to-front order, independent of the backend
// that draws it.
type Scene struct {
	Bounds     geom.Size
	Background color.RGBA
	Shapes     []Shape
	Labels     []Label
}

// BuildScene assembles the frame for g with the mouse at cursor.
func BuildScene(g *app.Game, cursor geom.Point) Scene {
	s := Scene{Bounds: g.Bounds(), Background: config.BackgroundColor}

	for _, cell := range geom.LaneCells(g.Lane(), config.LaneWidth) {
		s.Shapes = append(s.Shapes, Shape{Box: cell, Color: config.LaneColor, Glyph: '.'})
	}

	snap := g.Snapshot()
	for _, t := range snap.Towers {
		shape := Shape{Box: t.Box, Color: config.TowerColor, Glyph: unicode.ToUpper(firstRune(t.DefID)), Rotation: t.Rotation, Heading: true}
		if def, ok := g.Catalog.Tower(t.DefID); ok && def.AirSupport {
			shape.Color = config.AirplaneColor
			shape.Glyph = arrow(t.Rotation)
		}
		s.Shapes = append(s.Shapes, shape)
	}
	for _, e := range snap.Enemies {
		s.Shapes = append(s.Shapes, Shape{Box: e.Box, Color: config.EnemyColor, Glyph: firstRune(e.DefID), Rotation: e.Rotation, Heading: true})
	}
	for _, p := range snap.Projectiles {
		shape := Shape{Box: geom.RectAt(p.Position, config.ProjectileFootprint), Color: config.ProjectileColor, Glyph: '*'}
		if p.Bomb {
			shape.Color = config.BombColor
			shape.Glyph = 'o'
		}
		s.Shapes = append(s.Shapes, shape)
	}

	for _, panel := range g.Panels() {
		s.Shapes = append(s.Shapes, Shape{Box: panel, Color: config.PanelColor, Glyph: ' '})
	}
	s.addBuyPanel(g)
	for _, l := range ui.StatusLabels(g.HUD()) {
		c := config.TextLightColor
		if l.Highlight {
			c = config.SpeedupColor
		}
		s.Labels = append(s.Labels, Label{Text: l.Text, Position: l.Position, Color: c})
	}

	if p, ok := g.Preview(cursor); ok {
		c := config.PreviewPlaceColor
		if !p.Valid {
			c = config.InvalidPlaceColor
		}
		s.Shapes = append(s.Shapes, Shape{Box: p.Box, Color: c, Glyph: '+', Rotation: p.Rotation})
	}
	return s
}

func (s *Scene) addBuyPanel(g *app.Game) {
	money := g.Money()
	selected, active := g.Shop.Selected()
	for _, icon := range g.Shop.Icons() {
		c := config.TowerColor
		if money < icon.Cost {
			c = DarkenColor(c)
		}
		if active && icon.DefID == selected {
			c = config.SelectedColor
		}
		s.Shapes = append(s.Shapes, Shape{Box: icon.Box, Color: c, Glyph: unicode.ToUpper(firstRune(icon.DefID))})

		price := ui.PriceLabel(icon, money)
		pc := config.UnaffordableColor
		if price.Highlight {
			pc = config.AffordableColor
		}
		s.Labels = append(s.Labels, Label{Text: price.Text, Position: price.Position, Color: pc})
	}
	for _, l := range []ui.Label{ui.KeybindsLabel(), ui.MoneyLabel(money)} {
		s.Labels = append(s.Labels, Label{Text: l.Text, Position: l.Position, Color: config.TextLightColor})
	}
}

// Lines splits a label into its text lines.
func (l Label) Lines() []string {
	return strings.Split(l.Text, "\n")
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

// arrow picks a glyph for a sprite rotation. Sprites face up at rotation 0.
func arrow(rotation float64) rune {
	heading := math.Mod(rotation-config.SpriteRotationOffset+2*math.Pi, 2*math.Pi)
	switch quadrant := int(math.Round(heading/(math.Pi/2))) % 4; quadrant {
	case 0:
		return '>'
	case 1:
		return 'v'
	case 2:
		return '<'
	default:
		return '^'
	}
}
