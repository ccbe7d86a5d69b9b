// pkg/polyline/path.go
package polyline

import (
	"errors"
	"math"
)

// ErrEmptyPath возвращается, если у пути нет ни одной вершины.
var ErrEmptyPath = errors.New("polyline: path has no points")

// Point — вершина ломаной
type Point struct {
	X, Y float64
}

// Path — неизменяемая ломаная. Параметр t в PointAt пропорционален
// пройденной длине, а не номеру сегмента.
type Path struct {
	points []Point
	// cumulative[i] — длина пути от первой вершины до points[i]
	cumulative []float64
	length     float64
}

// New строит путь по вершинам. Срез копируется.
func New(points []Point) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}

	p := &Path{
		points:     make([]Point, len(points)),
		cumulative: make([]float64, len(points)),
	}
	copy(p.points, points)

	for i := 1; i < len(p.points); i++ {
		dx := p.points[i].X - p.points[i-1].X
		dy := p.points[i].Y - p.points[i-1].Y
		p.length += math.Hypot(dx, dy)
		p.cumulative[i] = p.length
	}
	return p, nil
}

// Length возвращает полную длину пути.
func (p *Path) Length() float64 {
	return p.length
}

// Points возвращает копию вершин.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// PointAt возвращает точку на пути для прогресса t ∈ [0,1].
// Значения вне диапазона прижимаются к концам.
func (p *Path) PointAt(t float64) (float64, float64) {
	first := p.points[0]
	last := p.points[len(p.points)-1]
	if t <= 0 || p.length == 0 {
		return first.X, first.Y
	}
	if t >= 1 {
		return last.X, last.Y
	}

	target := t * p.length
	// Ищем сегмент, в котором лежит target. Вершин немного, линейного поиска хватает.
	for i := 1; i < len(p.points); i++ {
		if target > p.cumulative[i] {
			continue
		}
		segLen := p.cumulative[i] - p.cumulative[i-1]
		if segLen == 0 {
			return p.points[i].X, p.points[i].Y
		}
		frac := (target - p.cumulative[i-1]) / segLen
		a, b := p.points[i-1], p.points[i]
		return a.X + (b.X-a.X)*frac, a.Y + (b.Y-a.Y)*frac
	}
	return last.X, last.Y
}
