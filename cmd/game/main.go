// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
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
	scenarioPath := flag.String("scenario", "", "path to a scenario JSON file (built-in map if empty)")
	quiet := flag.Bool("quiet", false, "do not log placement and pool events")
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
	if !*quiet {
		event.NewLogger(nil).Attach(game.Events())
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense: " + scenario.Name)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
