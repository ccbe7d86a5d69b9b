// internal/component/turret.go
package component

// Turret — стационарная турель, поставленная в клетку сетки.
type Turret struct {
	Position
	Row, Col int
	// Cooldown - сколько времени (мс) осталось до следующей попытки выстрела.
	Cooldown float64
	// Angle - угол последнего выстрела в радианах, нужен только для отрисовки.
	Angle float64
}
