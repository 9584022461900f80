// pkg/render/terminal.go
package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

var (
	black      = color.RGBA{0, 0, 0, 255}
	glyphColor = color.RGBA{255, 255, 255, 255}
)

// TerminalRenderer draws a scene into terminal cells. The whole scene is
// scaled to fit the screen, so one cell covers a block of world pixels.
type TerminalRenderer struct {
	screen tcell.Screen
	cells  []color.RGBA // background of every cell in the frame being drawn
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// cellSize returns the world size of one cell.
func (r *TerminalRenderer) cellSize(bounds geom.Size) (float64, float64, bool) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return bounds.W / float64(cols), bounds.H / float64(rows), true
}

// ToWorld maps a cell to the world point at its centre.
func (r *TerminalRenderer) ToWorld(col, row int, bounds geom.Size) geom.Point {
	sx, sy, ok := r.cellSize(bounds)
	if !ok {
		return geom.Point{}
	}
	return geom.Point{X: (float64(col) + 0.5) * sx, Y: (float64(row) + 0.5) * sy}
}

// Draw renders s and shows it.
func (r *TerminalRenderer) Draw(s Scene) {
	sx, sy, ok := r.cellSize(s.Bounds)
	if !ok {
		return
	}
	cols, rows := r.screen.Size()
	if len(r.cells) != cols*rows {
		r.cells = make([]color.RGBA, cols*rows)
	}

	bg := Over(s.Background, black)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r.cells[row*cols+col] = bg
			r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(ToTcell(bg)))
		}
	}

	for _, sh := range s.Shapes {
		box := sh.Box
		if box.Right() <= 0 || box.Bottom() <= 0 || box.Left() >= s.Bounds.W || box.Top() >= s.Bounds.H {
			continue
		}
		c0, c1 := span(box.Left(), box.Right(), sx, cols)
		r0, r1 := span(box.Top(), box.Bottom(), sy, rows)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				i := row*cols + col
				r.cells[i] = Over(sh.Color, r.cells[i])
				style := tcell.StyleDefault.Background(ToTcell(r.cells[i])).Foreground(ToTcell(glyphColor))
				r.screen.SetContent(col, row, sh.Glyph, nil, style)
			}
		}
	}

	for _, l := range s.Labels {
		col0 := int(l.Position.X / sx)
		row := int(l.Position.Y / sy)
		for _, line := range l.Lines() {
			col := col0
			for _, ch := range line {
				if col >= 0 && col < cols && row >= 0 && row < rows {
					style := tcell.StyleDefault.Background(ToTcell(r.cells[row*cols+col])).Foreground(ToTcell(Over(l.Color, black)))
					r.screen.SetContent(col, row, ch, nil, style)
				}
				col++
			}
			row++
		}
	}
	r.screen.Show()
}

// span returns the first and last cell covered by [lo, hi), at least one cell.
func span(lo, hi, size float64, n int) (int, int) {
	first := int(math.Floor(lo / size))
	last := int(math.Ceil(hi/size)) - 1
	if last < first {
		last = first
	}
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	return first, last
}
