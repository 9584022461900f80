// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний окна
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps a stack of states. Only the top one is updated; overlays
// such as pause draw whatever lies beneath them.
type StateMachine struct {
	stack []State
	quit  bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Push кладёт состояние поверх текущего, не выходя из него.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние; нижнее продолжает работу.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// below returns the state under s, or nil.
func (sm *StateMachine) below(s State) State {
	for i := len(sm.stack) - 1; i > 0; i-- {
		if sm.stack[i] == s {
			return sm.stack[i-1]
		}
	}
	return nil
}

func (sm *StateMachine) Quit()      { sm.quit = true }
func (sm *StateMachine) Done() bool { return sm.quit }

func (sm *StateMachine) Update(deltaTime float64) {
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].Draw(screen)
	}
}
