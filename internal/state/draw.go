// internal/state/draw.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/pkg/render"
)

const lineHeight = 15

// drawScene рисует сцену прямоугольниками и текстом, без спрайтов.
func drawScene(screen *ebiten.Image, s render.Scene) {
	screen.Fill(s.Background)

	for _, sh := range s.Shapes {
		b := sh.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), sh.Color, false)
		if !sh.Heading {
			continue
		}
		// линия показывает направление спрайта
		c := b.Center()
		heading := sh.Rotation - config.SpriteRotationOffset
		r := math.Min(b.W, b.H) / 2
		x1, y1 := c.X+r*math.Cos(heading), c.Y+r*math.Sin(heading)
		vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(x1), float32(y1), 2, config.TextLightColor, false)
	}

	face := basicfont.Face7x13
	for _, l := range s.Labels {
		y := int(l.Position.Y) + face.Ascent/2
		for _, line := range l.Lines() {
			text.Draw(screen, line, face, int(l.Position.X), y, l.Color)
			y += lineHeight
		}
	}
}
