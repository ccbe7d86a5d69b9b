// internal/component/projectile.go
package component

// Bullet представляет летящий снаряд.
type Bullet struct {
	Position
	DirX, DirY float64 // Единичный вектор направления
	Speed      float64 // Единиц за мс
	Lifespan   float64 // Оставшееся время жизни, мс
}
