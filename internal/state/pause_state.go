// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gttkeith/gtt-sdef/internal/config"
)

var _ State = (*PauseState)(nil)

const pauseText = "PAUSED"

// PauseState freezes the simulation; the frozen frame stays visible under a dark veil.
type PauseState struct {
	sm *StateMachine
}

func NewPauseState(sm *StateMachine) *PauseState {
	return &PauseState{sm: sm}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if under := s.sm.below(s); under != nil {
		under.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := basicfont.Face7x13
	x := (config.ScreenWidth - len(pauseText)*face.Advance) / 2
	text.Draw(screen, pauseText, face, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
