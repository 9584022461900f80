// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "github.com/gttkeith/gtt-sdef/internal/app"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/ui"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
	"github.com/gttkeith/gtt-sdef/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	game *game.Game
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	return &GameState{sm: sm, game: g}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.game.Terminated() {
		g.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.Push(NewPauseState(g.sm))
		return
	}

	g.game.Update(deltaTime)

	g.game.HandleMouse(ui.MouseState{
		Position: cursor(),
		Left:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	})

	if g.game.IsSuspended() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.AdvanceWave()
	}
	// один шаг скорости за нажатие
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		g.game.PressTimescale(-config.TimescaleStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		g.game.PressTimescale(config.TimescaleStep)
	}
	if !ebiten.IsKeyPressed(ebiten.KeyK) && !ebiten.IsKeyPressed(ebiten.KeyL) {
		g.game.ReleaseTimescale()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	drawScene(screen, render.BuildScene(g.game, cursor()))
}

func (g *GameState) Exit() {}

func cursor() geom.Point {
	x, y := ebiten.CursorPosition()
	return geom.Point{X: float64(x), Y: float64(y)}
}
