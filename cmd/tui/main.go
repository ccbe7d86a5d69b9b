// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/audio"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type terminalHost struct {
	screen tcell.Screen
	game   *app.Game
	view   view
	cues   *audio.Cues

	simTime   float64 // мс
	lastTick  time.Time
	speedStep int
	paused    bool
	buttons   tcell.ButtonMask // Кнопки мыши в прошлом событии
}

func newTerminalHost(game *app.Game, mute bool) (*terminalHost, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	field := game.Snapshot().Field
	h := &terminalHost{
		screen:   screen,
		game:     game,
		view:     newView(&field),
		lastTick: time.Now(),
	}
	if !mute {
		h.cues = audio.NewCues()
		if err := h.cues.Initialize(); err != nil {
			// Без звука тоже можно играть
			log.Printf("Audio initialization failed: %v", err)
		}
		h.cues.Attach(game.Events())
	}
	return h, nil
}

func (h *terminalHost) speed() float64 {
	return config.SpeedMultipliers[h.speedStep]
}

// handleInput возвращает false, когда пора выходить
func (h *terminalHost) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p', ' ':
			h.paused = !h.paused
		case 's':
			h.speedStep = (h.speedStep + 1) % len(config.SpeedMultipliers)
		}

	case *tcell.EventMouse:
		// Удержание и перемещение мыши тоже приходят событиями, строим только по нажатию
		pressed := ev.Buttons()&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = ev.Buttons()
		if !pressed || h.paused {
			return true
		}
		sx, sy := ev.Position()
		if h.view.inField(sx, sy) {
			x, y := h.view.toWorld(sx, sy)
			// Отказ придёт в журнал и звуком через PlacementRejected
			_, _ = h.game.RequestPlacement(x, y)
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *terminalHost) tick() {
	now := time.Now()
	delta := now.Sub(h.lastTick).Seconds()
	h.lastTick = now
	if h.paused {
		return
	}
	if delta > config.MaxDeltaTime {
		delta = config.MaxDeltaTime
	}
	dt := delta * 1000 * h.speed()
	h.simTime += dt
	h.game.Tick(h.simTime, dt)
}

func (h *terminalHost) draw() {
	h.screen.Clear()
	f := h.game.Snapshot()
	h.view.draw(h.screen, &f, h.game.Scenario.Enemy.HitPoints)
	_, height := h.view.fieldSize()
	width, _ := h.screen.Size()
	drawStatus(h.screen, height, width, statusLine(h.simTime, h.game.Stats(), &f, h.speed(), h.paused))
	h.screen.Show()
}

func (h *terminalHost) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleInput(ev) {
				return
			}
		case <-ticker.C:
			h.tick()
			h.draw()
		}
	}
}

func (h *terminalHost) cleanup() {
	if h.cues != nil {
		h.cues.Close()
	}
	h.screen.Fini()
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario JSON file (built-in map if empty)")
	logPath := flag.String("log", "", "append event log to this file (discarded if empty)")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	scenario := defs.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		if scenario, err = defs.LoadScenario(*scenarioPath); err != nil {
			log.Fatal(err)
		}
	}
	game, err := app.NewGame(scenario)
	if err != nil {
		log.Fatal(err)
	}

	// Журнал не должен рисовать поверх экрана
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	log.SetOutput(logOut)
	event.NewLogger(nil).Attach(game.Events())

	host, err := newTerminalHost(game, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer host.cleanup()

	host.run()
}
