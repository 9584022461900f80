// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gttkeith/gtt-sdef/internal/app"
	"github.com/gttkeith/gtt-sdef/internal/audio"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/state"
	"github.com/gttkeith/gtt-sdef/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	resDir := flag.String("res", "res", "directory with the csv and tmx resources")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for tower fire intervals")
	sound := flag.Float64("sound", 0.5, "sound volume, 0 disables audio")
	flag.Parse()

	catalog, levels, err := defs.LoadAll(*resDir)
	if err != nil {
		log.Fatal(err)
	}
	g, err := app.NewGame(catalog, levels, utils.NewPRNGService(*seed))
	if err != nil {
		log.Fatal(err)
	}
	g.EventDispatcher.SubscribeAll(app.NewEventLogger(nil))

	if *sound > 0 {
		player := audio.NewPlayer(*sound)
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.EventDispatcher.SubscribeAll(player)
			defer player.Close()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.Push(state.NewGameState(sm, g))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.FrameRate)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("ShadowDefend")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
