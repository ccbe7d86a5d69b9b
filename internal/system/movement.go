// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/polyline"
)

// MovementSystem продвигает врагов по пути
type MovementSystem struct {
	world    *entity.World
	path     *polyline.Path
	resolver *CombatResolver
	speed    float64 // Доля пути за мс
}

func NewMovementSystem(world *entity.World, path *polyline.Path, resolver *CombatResolver, speed float64) *MovementSystem {
	return &MovementSystem{world: world, path: path, resolver: resolver, speed: speed}
}

// Update возвращает число врагов, дошедших до конца пути на этом тике.
// Скорость не зависит от длины пути: время прохода определяется только временем.
func (s *MovementSystem) Update(deltaTime float64) int {
	escaped := 0
	s.world.Enemies.ForEachActive(func(id types.EntityID, enemy *component.Enemy) {
		enemy.Progress += s.speed * deltaTime
		if enemy.Progress > 1 {
			enemy.Progress = 1
		}
		enemy.X, enemy.Y = s.path.PointAt(enemy.Progress)

		if enemy.Progress >= 1 {
			s.resolver.Escape(id)
			escaped++
		}
	})
	return escaped
}
