package ui

import (
	"strings"
	"testing"

	"go-path-defense/internal/app"
)

func TestLine(t *testing.T) {
	got := Line(12345, app.Stats{Turrets: 2, Kills: 3, Escapes: 1}, 4, 5, 2)
	for _, want := range []string{"t=12.3s", "x2", "enemies:4", "bullets:5", "turrets:2", "kills:3", "escaped:1"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}
}

func TestInsideCircle(t *testing.T) {
	if !insideCircle(3, 4, 0, 0, 5) {
		t.Error("point on the edge is inside")
	}
	if insideCircle(4, 4, 0, 0, 5) {
		t.Error("point outside reported inside")
	}
}

func TestSpeedButtonCycles(t *testing.T) {
	b := &SpeedButton{Multipliers: []float64{1, 2, 4}}
	want := []float64{2, 4, 1, 2}
	for _, w := range want {
		b.ToggleState()
		if b.Multiplier() != w {
			t.Fatalf("multiplier = %v, want %v", b.Multiplier(), w)
		}
	}
}

func TestPauseButtonToggle(t *testing.T) {
	b := &PauseButton{}
	b.TogglePause()
	if !b.IsPaused {
		t.Error("not paused after toggle")
	}
	b.SetPaused(false)
	if b.IsPaused {
		t.Error("SetPaused(false) ignored")
	}
}
