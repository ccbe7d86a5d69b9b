// internal/system/utils.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// ApplyDamage наносит урон врагу и возвращает остаток здоровья.
// Здоровье не уходит ниже нуля.
func ApplyDamage(enemy *component.Enemy, damage int) int {
	if damage < 0 {
		damage = 0
	}
	enemy.HitPoints -= damage
	if enemy.HitPoints < 0 {
		enemy.HitPoints = 0
	}
	return enemy.HitPoints
}

// Hit — принятое попадание пули во врага за текущий тик
type Hit struct {
	Bullet types.EntityID
	Enemy  types.EntityID
}

// CombatResolver применяет попадания и деактивирует сущности.
// Все деактивации врагов и пуль проходят через него.
type CombatResolver struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	damage          int
}

func NewCombatResolver(world *entity.World, eventDispatcher *event.Dispatcher, damage int) *CombatResolver {
	return &CombatResolver{
		world:           world,
		eventDispatcher: eventDispatcher,
		damage:          damage,
	}
}

// ResolveHit наносит урон по попаданию. Пуля деактивируется всегда,
// враг — если здоровье упало до нуля. Возвращает true при убийстве.
func (r *CombatResolver) ResolveHit(hit Hit) bool {
	r.world.Bullets.Release(hit.Bullet)

	if !r.world.Enemies.IsActive(hit.Enemy) {
		return false
	}
	enemy := r.world.Enemies.Get(hit.Enemy)
	left := ApplyDamage(enemy, r.damage)
	r.dispatch(event.EnemyHit, event.HitData{
		Enemy:     hit.Enemy,
		Bullet:    hit.Bullet,
		Damage:    r.damage,
		HitPoints: left,
	})

	if left > 0 {
		return false
	}
	r.world.Enemies.Release(hit.Enemy)
	r.dispatch(event.EnemyKilled, hit.Enemy)
	return true
}

// Escape убирает врага, дошедшего до конца пути, без урона.
func (r *CombatResolver) Escape(id types.EntityID) {
	if !r.world.Enemies.IsActive(id) {
		return
	}
	r.world.Enemies.Release(id)
	r.dispatch(event.EnemyEscaped, id)
}

// Expire убирает пулю с истёкшим временем жизни.
func (r *CombatResolver) Expire(id types.EntityID) {
	if !r.world.Bullets.IsActive(id) {
		return
	}
	r.world.Bullets.Release(id)
	r.dispatch(event.BulletExpired, id)
}

func (r *CombatResolver) dispatch(t event.EventType, data any) {
	r.eventDispatcher.Dispatch(event.Event{Type: t, Time: r.world.GameTime, Data: data})
}
