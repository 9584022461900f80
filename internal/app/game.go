// internal/app/game.go
package app

import (
	"errors"
	"log"

	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/internal/event"
	"github.com/gttkeith/gtt-sdef/internal/system"
	"github.com/gttkeith/gtt-sdef/internal/ui"
	"github.com/gttkeith/gtt-sdef/internal/utils"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

var ErrNoLevels = errors.New("no levels to play")

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Catalog         *defs.Catalog
	EventDispatcher *event.Dispatcher
	PlayerSystem    *system.PlayerSystem
	EnemySystem     *system.EnemySystem
	CombatSystem    *system.CombatSystem
	WaveSystem      *system.WaveSystem
	Shop            *ui.BuyPanel

	layout system.Layout

	// Level progress
	levels      []defs.LevelDefinition // ещё не начатые уровни
	level       defs.LevelDefinition
	waves       []defs.WaveDefinition // ещё не начатые волны уровня
	waveNumber  int
	rewardGiven bool

	timescale          float64
	timescaleAdjusting bool
	terminated         bool
}

// NewGame initializes a new game instance and loads the first level.
func NewGame(catalog *defs.Catalog, levels []defs.LevelDefinition, rng utils.RandomSource) (*Game, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	layout := system.DefaultLayout()
	g := &Game{
		ECS:             ecs,
		Catalog:         catalog,
		EventDispatcher: eventDispatcher,
		PlayerSystem:    system.NewPlayerSystem(ecs),
		CombatSystem:    system.NewCombatSystem(ecs, catalog, rng, layout, eventDispatcher),
		Shop:            ui.NewBuyPanel(catalog),
		layout:          layout,
		levels:          append([]defs.LevelDefinition(nil), levels...),
		timescale:       config.MinTimescale,
	}
	g.EnemySystem = system.NewEnemySystem(ecs, catalog, g.PlayerSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(g.EnemySystem)

	g.loadNextLevel()
	return g, nil
}

// Update progresses the game state by one frame of frameTime real seconds.
func (g *Game) Update(frameTime float64) {
	if g.terminated {
		return
	}
	dt := frameTime * g.timescale
	g.ECS.GameTime += dt

	g.WaveSystem.Update(dt, g.ECS.Wave, g.level.Lane)
	if !g.PlayerSystem.IsSuspended() {
		g.CombatSystem.Update(dt)
	}
	// enemies keep resolving deaths and escapes even once the game is decided
	g.EnemySystem.Update(dt)

	g.ECS.Status = g.classify()

	if g.PlayerSystem.IsLoser() {
		g.terminated = true
		log.Printf("Game lost on level %d, wave %d", g.level.Number, g.waveNumber)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameLost, Data: event.WaveData{Number: g.waveNumber}})
		return
	}

	if !g.ECS.Wave.Complete() || g.EnemySystem.Count() != 0 {
		return
	}
	switch {
	case len(g.waves) == 0 && len(g.levels) == 0:
		if !g.PlayerSystem.IsWinner() {
			g.PlayerSystem.Win()
			log.Printf("All levels cleared")
			g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: event.LevelData{Number: g.level.Number}})
		}
	case len(g.waves) == 0:
		g.nextLevel()
	case !g.rewardGiven:
		reward := system.CompletionReward(g.waveNumber)
		g.PlayerSystem.Reward(reward)
		if g.waveNumber > 0 {
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.WaveCompleted,
				Data: event.WaveData{Number: g.waveNumber, Reward: reward},
			})
		}
		g.waveNumber++
		g.rewardGiven = true
	}
}

// classify — статус для строки состояния. Более поздние проверки важнее.
func (g *Game) classify() component.Status {
	status := component.AwaitingStart
	if g.EnemySystem.Count() != 0 {
		status = component.WaveInProgress
	}
	if g.Shop.SelectionActive() {
		status = component.Placing
	}
	if g.PlayerSystem.IsWinner() {
		status = component.Winner
	}
	return status
}

// AdvanceWave starts the next wave of the level. It only does so between
// waves: the current wave is complete, its reward has been paid, no enemies
// are alive and the level still has waves left.
func (g *Game) AdvanceWave() bool {
	if g.PlayerSystem.IsSuspended() || !g.ECS.Wave.Complete() || !g.rewardGiven {
		return false
	}
	if len(g.waves) == 0 || g.EnemySystem.Count() != 0 {
		return false
	}
	next := g.waves[0]
	g.waves = g.waves[1:]
	g.ECS.Wave = component.NewWave(g.waveNumber, next.Events)
	g.rewardGiven = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: g.waveNumber}})
	return true
}

// nextLevel clears the board and moves on to the next level.
func (g *Game) nextLevel() {
	g.CombatSystem.Reset()
	g.PlayerSystem.Reset()
	g.PlayerSystem.ClearOutcome()
	g.timescale = config.MinTimescale
	g.waveNumber = 0
	g.loadNextLevel()
}

func (g *Game) loadNextLevel() {
	g.level = g.levels[0]
	g.levels = g.levels[1:]
	g.waves = append([]defs.WaveDefinition(nil), g.level.Waves...)
	g.rewardGiven = false
	g.CombatSystem.SetLane(g.level.Lane)

	log.Printf("Level %d loaded: %d waves, lane of %d points", g.level.Number, len(g.waves), len(g.level.Lane))
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelLoaded, Data: event.LevelData{Number: g.level.Number}})
}

// --- Public Accessors ---

func (g *Game) IsSuspended() bool        { return g.PlayerSystem.IsSuspended() }
func (g *Game) Status() component.Status { return g.ECS.Status }
func (g *Game) Money() int               { return g.PlayerSystem.Money() }
func (g *Game) Lives() int               { return g.PlayerSystem.Lives() }
func (g *Game) WaveNumber() int          { return g.waveNumber }
func (g *Game) Level() int               { return g.level.Number }
func (g *Game) Timescale() float64       { return g.timescale }

// Terminated reports whether the run has ended with the player losing.
func (g *Game) Terminated() bool { return g.terminated }

// Lane returns the current level's lane. The slice must not be modified.
func (g *Game) Lane() []geom.Point { return g.level.Lane }

// Panels returns the screen areas towers cannot be built on.
func (g *Game) Panels() []geom.Rect { return g.layout.Panels }

// Bounds returns the size of the playing field.
func (g *Game) Bounds() geom.Size { return g.layout.Bounds }

// HUD collects the values shown on the panels.
func (g *Game) HUD() ui.HUD {
	return ui.HUD{
		Wave:      g.waveNumber,
		Timescale: g.timescale,
		Status:    g.ECS.Status,
		Lives:     g.Lives(),
		Money:     g.Money(),
	}
}
