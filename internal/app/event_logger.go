// internal/app/event_logger.go
package app

import (
	"log"

	"github.com/gttkeith/gtt-sdef/internal/event"
)

// EventLogger пишет в лог события уровня, волн и постройки башен. События
// отдельных врагов слишком частые и пропускаются.
type EventLogger struct {
	logger *log.Logger
}

func NewEventLogger(logger *log.Logger) *EventLogger {
	if logger == nil {
		logger = log.Default()
	}
	return &EventLogger{logger: logger}
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		switch e.Type {
		case event.WaveStarted:
			l.logger.Printf("Wave %d started", data.Number)
		case event.WaveCompleted:
			l.logger.Printf("Wave %d completed, reward $%d", data.Number, data.Reward)
		case event.GameLost:
			l.logger.Printf("Out of lives during wave %d", data.Number)
		}
	case event.TowerData:
		switch e.Type {
		case event.TowerPlaced:
			l.logger.Printf("Tower %s #%d placed at (%.0f, %.0f)", data.DefID, data.ID, data.Position.X, data.Position.Y)
		case event.TowerRemoved:
			l.logger.Printf("Air support #%d left the map", data.ID)
		}
	case event.LevelData:
		if e.Type == event.GameWon {
			l.logger.Printf("Winner! Cleared level %d", data.Number)
		}
	}
}
