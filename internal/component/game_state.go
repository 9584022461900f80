// internal/component/game_state.go
package component

// Status — классификация состояния игры для строки статуса.
type Status int

const (
	AwaitingStart Status = iota
	WaveInProgress
	Placing
	Winner
)

func (s Status) String() string {
	switch s {
	case WaveInProgress:
		return "Wave In Progress"
	case Placing:
		return "Placing"
	case Winner:
		return "Winner!"
	default:
		return "Awaiting Start"
	}
}
