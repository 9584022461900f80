// internal/event/types.go
package event

import (
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

const (
	EnemySpawned  EventType = "EnemySpawned"  // Враг появился
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен
	EnemyEscaped  EventType = "EnemyEscaped"  // Враг дошёл до конца
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerRemoved  EventType = "TowerRemoved"  // Самолёт улетел за край
	WaveStarted   EventType = "WaveStarted"   // Волна началась
	WaveCompleted EventType = "WaveCompleted" // Волна закончилась, награда выдана
	LevelLoaded   EventType = "LevelLoaded"
	GameWon       EventType = "GameWon"
	GameLost      EventType = "GameLost"
)

// EnemyData accompanies EnemySpawned, EnemyKilled and EnemyEscaped.
type EnemyData struct {
	ID       types.EntityID
	DefID    string
	Position geom.Point
	Amount   int // reward on kill, penalty on escape
}

// TowerData accompanies TowerPlaced and TowerRemoved.
type TowerData struct {
	ID       types.EntityID
	DefID    string
	Position geom.Point
}

// WaveData accompanies WaveStarted and WaveCompleted.
type WaveData struct {
	Number int
	Reward int
}

// LevelData accompanies LevelLoaded.
type LevelData struct {
	Number int
}
