// internal/system/projectile.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// ProjectileSystem выпускает пули и двигает их по прямой до истечения времени жизни
type ProjectileSystem struct {
	world    *entity.World
	resolver *CombatResolver
	bullet   defs.BulletDefinition
}

func NewProjectileSystem(world *entity.World, resolver *CombatResolver, bullet defs.BulletDefinition) *ProjectileSystem {
	return &ProjectileSystem{
		world:    world,
		resolver: resolver,
		bullet:   bullet,
	}
}

// Fire активирует пулю в точке (x, y), летящую под углом angle.
// ok == false, если пул пуль исчерпан.
func (s *ProjectileSystem) Fire(x, y, angle float64) (types.EntityID, bool) {
	id, b, ok := s.world.Bullets.Acquire()
	if !ok {
		return types.NoEntity, false
	}
	b.X, b.Y = x, y
	b.DirX = math.Cos(angle)
	b.DirY = math.Sin(angle)
	b.Speed = s.bullet.SpeedPerMs()
	b.Lifespan = s.bullet.Lifespan
	return id, true
}

// Update возвращает число пуль, истёкших на этом тике.
// Пуля сдвигается и на последнем тике жизни, затем снимается.
func (s *ProjectileSystem) Update(deltaTime float64) int {
	expired := 0
	s.world.Bullets.ForEachActive(func(id types.EntityID, b *component.Bullet) {
		b.Lifespan -= deltaTime
		b.X += b.DirX * b.Speed * deltaTime
		b.Y += b.DirY * b.Speed * deltaTime

		if b.Lifespan <= 0 {
			s.resolver.Expire(id)
			expired++
		}
	})
	return expired
}
