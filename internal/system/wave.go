// internal/system/wave.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/polyline"
)

// SpawnSystem выпускает врагов на путь с фиксированным интервалом.
type SpawnSystem struct {
	world           *entity.World
	path            *polyline.Path
	eventDispatcher *event.Dispatcher
	enemy           defs.EnemyDefinition
	interval        float64
	nextSpawnTime   float64
}

func NewSpawnSystem(world *entity.World, path *polyline.Path, eventDispatcher *event.Dispatcher, enemy defs.EnemyDefinition, interval float64) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		path:            path,
		eventDispatcher: eventDispatcher,
		enemy:           enemy,
		interval:        interval,
	}
}

// Update делает не больше одной попытки за интервал. Пропущенные интервалы
// не догоняются. attempted == true, если попытка была; id == types.NoEntity,
// если пул врагов исчерпан.
func (s *SpawnSystem) Update(currentTime float64) (id types.EntityID, attempted bool) {
	if currentTime <= s.nextSpawnTime {
		return types.NoEntity, false
	}
	s.nextSpawnTime = currentTime + s.interval

	id, enemy, ok := s.world.Enemies.Acquire()
	if !ok {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PoolExhausted,
			Time: currentTime,
			Data: event.PoolData{Kind: event.KindEnemy},
		})
		return types.NoEntity, true
	}

	s.startOnPath(enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Time: currentTime, Data: id})
	return id, true
}

// NextSpawnTime — время, после которого будет следующая попытка
func (s *SpawnSystem) NextSpawnTime() float64 {
	return s.nextSpawnTime
}

func (s *SpawnSystem) startOnPath(enemy *component.Enemy) {
	enemy.HitPoints = s.enemy.HitPoints
	enemy.Progress = 0
	enemy.X, enemy.Y = s.path.PointAt(0)
}
