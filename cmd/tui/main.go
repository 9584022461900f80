// cmd/tui/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gttkeith/gtt-sdef/internal/app"
	"github.com/gttkeith/gtt-sdef/internal/audio"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/ui"
	"github.com/gttkeith/gtt-sdef/internal/utils"
	"github.com/gttkeith/gtt-sdef/pkg/render"
)

func main() {
	resDir := flag.String("res", "res", "directory with the csv and tmx resources")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for tower fire intervals")
	sound := flag.Float64("sound", 0, "sound volume, 0 disables audio")
	logPath := flag.String("log", "", "write the event log to this file")
	flag.Parse()

	catalog, levels, err := defs.LoadAll(*resDir)
	if err != nil {
		log.Fatal(err)
	}
	g, err := app.NewGame(catalog, levels, utils.NewPRNGService(*seed))
	if err != nil {
		log.Fatal(err)
	}

	// терминал занят экраном, лог пишем только в файл
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		g.EventDispatcher.SubscribeAll(app.NewEventLogger(log.New(f, "", log.LstdFlags)))
	}

	if *sound > 0 {
		player := audio.NewPlayer(*sound)
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.EventDispatcher.SubscribeAll(player)
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	run(screen, g, catalog)
}

func run(screen tcell.Screen, g *app.Game, catalog *defs.Catalog) {
	renderer := render.NewTerminalRenderer(screen)

	eventChan := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	ticker := time.NewTicker(time.Second / config.FrameRate)
	defer ticker.Stop()
	last := time.Now()

	var mouse ui.MouseState
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := handleKey(ev, g, catalog); quit {
					return
				}
			case *tcell.EventMouse:
				col, row := ev.Position()
				buttons := ev.Buttons()
				mouse = ui.MouseState{
					Position: renderer.ToWorld(col, row, g.Bounds()),
					Left:     buttons&tcell.Button1 != 0,
					Right:    buttons&tcell.Button2 != 0,
				}
				g.HandleMouse(mouse)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			g.Update(dt)
			// терминал не шлёт отпускание клавиш, шаг скорости срабатывает на каждое нажатие
			g.ReleaseTimescale()
			if g.Terminated() {
				return
			}
			renderer.Draw(render.BuildScene(g, mouse.Position))
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleKey returns true when the player asked to quit.
func handleKey(ev *tcell.EventKey, g *app.Game, catalog *defs.Catalog) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == 's':
		g.AdvanceWave()
	case r == 'k':
		g.PressTimescale(-config.TimescaleStep)
	case r == 'l':
		g.PressTimescale(config.TimescaleStep)
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(catalog.TowerOrder) {
			g.SelectTower(catalog.TowerOrder[i])
		}
	}
	return false
}
