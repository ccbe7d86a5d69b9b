package utils

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := map[float64]float64{
		0:               0,
		3 * math.Pi:     math.Pi,
		-3 * math.Pi:    -math.Pi,
		math.Pi / 2:     math.Pi / 2,
		5 * math.Pi / 2: math.Pi / 2,
	}
	for in, want := range cases {
		if got := NormalizeAngle(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestLerpAngleShortestWay(t *testing.T) {
	from, to := 0.9*math.Pi, -0.9*math.Pi
	got := LerpAngle(from, to, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("LerpAngle crossed zero instead of ±π: %v", got)
	}
}

func TestDirectionGlyph(t *testing.T) {
	cases := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{math.Pi / 4, '↘'},
	}
	for _, c := range cases {
		if got := DirectionGlyph(c.angle); got != c.want {
			t.Errorf("DirectionGlyph(%v) = %q, want %q", c.angle, got, c.want)
		}
	}
}
