// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости симуляции по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	Multipliers   []float64
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color, multipliers []float64) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	fill := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Два треугольника «перемотки»
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, fill)
	}
}

// IsClicked использует круг для проверки попадания, так как форма сложная
func (b *SpeedButton) IsClicked(x, y float32) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
}

// Multiplier — текущий множитель скорости
func (b *SpeedButton) Multiplier() float64 {
	return b.Multipliers[b.CurrentState]
}
