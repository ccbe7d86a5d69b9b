package render

import (
	"image/color"
	"testing"
)

func TestSameCells(t *testing.T) {
	a := [][]int8{{0, -1}, {1, 0}}
	if !sameCells(a, [][]int8{{0, -1}, {1, 0}}) {
		t.Error("equal grids reported different")
	}
	if sameCells(a, [][]int8{{0, -1}, {1, 1}}) {
		t.Error("changed cell not detected")
	}
	if sameCells(nil, a) {
		t.Error("empty cache matched a grid")
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("got %v", got)
	}
}
