package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// FireStats — итог работы турелей за тик
type FireStats struct {
	Shots  int // Выпущено пуль
	Dry    int // Цель была, но пул пуль исчерпан
	Misses int // Цели в радиусе не было
}

// TargetingSystem управляет перезарядкой турелей и выбором цели.
type TargetingSystem struct {
	world            *entity.World
	eventDispatcher  *event.Dispatcher
	projectileSystem *ProjectileSystem
	turret           defs.TurretDefinition
}

func NewTargetingSystem(world *entity.World, eventDispatcher *event.Dispatcher, projectileSystem *ProjectileSystem, turret defs.TurretDefinition) *TargetingSystem {
	return &TargetingSystem{
		world:            world,
		eventDispatcher:  eventDispatcher,
		projectileSystem: projectileSystem,
		turret:           turret,
	}
}

func (s *TargetingSystem) Update(deltaTime float64) FireStats {
	var stats FireStats
	s.world.Turrets.ForEachActive(func(id types.EntityID, turret *component.Turret) {
		turret.Cooldown -= deltaTime
		if turret.Cooldown > 0 {
			return
		}
		// Перезарядка сбрасывается при любой попытке, даже без цели.
		turret.Cooldown = s.turret.FireInterval

		enemyID, enemy, found := FindEnemyInRange(s.world, turret.X, turret.Y, s.turret.Range)
		if !found {
			stats.Misses++
			s.dispatch(event.NoTargetInRange, id)
			return
		}

		angle := math.Atan2(enemy.Y-turret.Y, enemy.X-turret.X)
		turret.Angle = angle

		bulletID, ok := s.projectileSystem.Fire(turret.X, turret.Y, angle)
		if !ok {
			stats.Dry++
			s.dispatch(event.PoolExhausted, event.PoolData{Kind: event.KindBullet})
			return
		}
		stats.Shots++
		s.dispatch(event.TurretFired, event.FireData{
			Turret: id,
			Bullet: bulletID,
			Target: enemyID,
			Angle:  angle,
		})
	})
	return stats
}

func (s *TargetingSystem) dispatch(t event.EventType, data any) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Time: s.world.GameTime, Data: data})
}

// FindEnemyInRange возвращает первого активного врага в порядке пула,
// расстояние до которого строго меньше radius. Это не ближайший враг.
func FindEnemyInRange(world *entity.World, x, y, radius float64) (types.EntityID, *component.Enemy, bool) {
	return world.Enemies.FirstActive(func(enemy *component.Enemy) bool {
		return enemy.DistanceTo(x, y) < radius
	})
}
