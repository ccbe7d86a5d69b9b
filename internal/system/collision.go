// internal/system/collision.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// CollisionSystem ищет пересечения пуль и врагов после всех перемещений тика.
type CollisionSystem struct {
	world     *entity.World
	enemyBox  component.Box
	bulletBox component.Box

	hits     []Hit
	hitEnemy []bool
}

func NewCollisionSystem(world *entity.World, enemySize, bulletSize defs.Size) *CollisionSystem {
	return &CollisionSystem{
		world:     world,
		enemyBox:  component.Box{Width: enemySize.Width, Height: enemySize.Height},
		bulletBox: component.Box{Width: bulletSize.Width, Height: bulletSize.Height},
	}
}

// Detect возвращает попадания текущего тика. Пуля даёт не больше одного
// попадания и сразу деактивируется; враг принимает не больше одной пули за тик.
// Пуля, задевшая только уже поражённых врагов, остаётся в полёте.
// Возвращаемый срез переиспользуется следующим вызовом.
func (s *CollisionSystem) Detect() []Hit {
	s.hits = s.hits[:0]
	if s.world.Enemies.ActiveCount() == 0 || s.world.Bullets.ActiveCount() == 0 {
		return s.hits
	}

	n := s.world.Enemies.Len()
	if cap(s.hitEnemy) < n {
		s.hitEnemy = make([]bool, n)
	}
	s.hitEnemy = s.hitEnemy[:n]
	clear(s.hitEnemy)

	s.world.Bullets.ForEachActive(func(bulletID types.EntityID, b *component.Bullet) {
		enemyID := s.firstOverlap(b)
		if enemyID == types.NoEntity {
			return
		}
		s.hitEnemy[enemyID] = true
		s.world.Bullets.Release(bulletID)
		s.hits = append(s.hits, Hit{Bullet: bulletID, Enemy: enemyID})
	})
	return s.hits
}

// firstOverlap — первый по порядку пула враг, пересекающий пулю и ещё не поражённый на этом тике
func (s *CollisionSystem) firstOverlap(b *component.Bullet) types.EntityID {
	found := types.NoEntity
	s.world.Enemies.ForEachActive(func(id types.EntityID, e *component.Enemy) {
		if found != types.NoEntity || s.hitEnemy[id] {
			return
		}
		if component.Overlaps(b.Position, s.bulletBox, e.Position, s.enemyBox) {
			found = id
		}
	})
	return found
}
