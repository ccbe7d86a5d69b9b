// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/snapshot"
)

// runConfig — параметры прогона без окна
type runConfig struct {
	Ticks      int
	Delta      float64 // мс
	Every      int     // Писать каждый N-й кадр
	Placements [][2]float64
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario JSON file (built-in map if empty)")
	out := flag.String("out", "", "write msgpack frames to this file (no frames if empty, - for stdout)")
	ticks := flag.Int("ticks", 3600, "number of ticks to simulate")
	delta := flag.Float64("dt", 16, "tick length in milliseconds")
	every := flag.Int("every", 1, "write every N-th frame")
	place := flag.String("place", "", "turret positions as x,y pairs separated by ';'")
	verbose := flag.Bool("v", false, "log placement and pool events")
	flag.Parse()

	scenario := defs.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		if scenario, err = defs.LoadScenario(*scenarioPath); err != nil {
			log.Fatal(err)
		}
	}
	placements, err := parsePlacements(*place)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.NewGame(scenario)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		event.NewLogger(nil).Attach(game.Events())
	}

	var w io.Writer
	switch *out {
	case "":
	case "-":
		w = os.Stdout
	default:
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	stats, frames, err := run(game, runConfig{Ticks: *ticks, Delta: *delta, Every: *every, Placements: placements}, w)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d ticks, %.1fs simulated, %d frames written", stats.Ticks, float64(stats.Ticks)**delta/1000, frames)
	log.Printf("spawned %d (failed %d), turrets %d (rejected %d)", stats.Spawned, stats.SpawnFails, stats.Turrets, stats.Rejected)
	log.Printf("shots %d, hits %d, kills %d, escapes %d, expired %d", stats.Shots, stats.Hits, stats.Kills, stats.Escapes, stats.Expired)
}

// run ставит турели и гоняет симуляцию. Если w == nil, кадры не пишутся.
func run(game *app.Game, cfg runConfig, w io.Writer) (app.Stats, int, error) {
	for _, p := range cfg.Placements {
		// Отказ виден в Stats().Rejected и в журнале
		_, _ = game.RequestPlacement(p[0], p[1])
	}

	var sw *snapshot.Writer
	if w != nil {
		sw = snapshot.NewWriter(w)
	}
	every := max(cfg.Every, 1)

	var now float64
	for i := 1; i <= cfg.Ticks; i++ {
		now += cfg.Delta
		game.Tick(now, cfg.Delta)
		if sw == nil || i%every != 0 {
			continue
		}
		f := game.Snapshot()
		if err := sw.WriteFrame(&f); err != nil {
			return game.Stats(), sw.Frames(), err
		}
	}

	if sw == nil {
		return game.Stats(), 0, nil
	}
	if err := sw.Flush(); err != nil {
		return game.Stats(), sw.Frames(), fmt.Errorf("failed to flush frames: %w", err)
	}
	return game.Stats(), sw.Frames(), nil
}

// parsePlacements разбирает "x,y;x,y".
func parsePlacements(s string) ([][2]float64, error) {
	var out [][2]float64
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("bad placement %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("bad placement %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("bad placement %q: %w", pair, err)
		}
		out = append(out, [2]float64{x, y})
	}
	return out, nil
}
