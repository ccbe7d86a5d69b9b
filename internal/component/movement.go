// component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo — евклидово расстояние до другой точки
func (p Position) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// Box — ограничивающий прямоугольник с центром в позиции сущности.
// Размеры берутся из размеров спрайтов сценария.
type Box struct {
	Width, Height float64
}

// Overlaps проверяет пересечение двух прямоугольников с центрами a и b.
// Касание краями считается пересечением.
func Overlaps(a Position, ab Box, b Position, bb Box) bool {
	return math.Abs(a.X-b.X) <= (ab.Width+bb.Width)/2 &&
		math.Abs(a.Y-b.Y) <= (ab.Height+bb.Height)/2
}
