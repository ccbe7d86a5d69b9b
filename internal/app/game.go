// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/snapshot"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/grid"
	"go-path-defense/pkg/polyline"
)

// ErrPoolExhausted возвращается RequestPlacement, когда все слоты турелей заняты.
var ErrPoolExhausted = errors.New("entity pool exhausted")

// Game holds the simulation state and the systems that advance it.
// Game is not safe for concurrent use: the host calls it from one loop.
type Game struct {
	Scenario        *defs.Scenario
	Grid            *grid.Grid
	Path            *polyline.Path
	World           *entity.World
	EventDispatcher *event.Dispatcher

	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	TargetingSystem  *system.TargetingSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	CombatResolver   *system.CombatResolver

	stats Stats
}

// NewGame builds a simulation from a validated scenario.
func NewGame(s *defs.Scenario) (*Game, error) {
	if s == nil {
		return nil, errors.New("scenario cannot be nil")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(s.Layout, s.CellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}
	points := make([]polyline.Point, len(s.Path))
	for i, v := range s.Path {
		points[i] = polyline.Point{X: v[0], Y: v[1]}
	}
	path, err := polyline.New(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build path: %w", err)
	}

	world := entity.NewWorld(entity.Capacities{
		Enemies: s.Pools.Enemies,
		Turrets: s.Pools.Turrets,
		Bullets: s.Pools.Bullets,
	})
	eventDispatcher := event.NewDispatcher()
	resolver := system.NewCombatResolver(world, eventDispatcher, s.Bullet.Damage)
	projectiles := system.NewProjectileSystem(world, resolver, s.Bullet)

	return &Game{
		Scenario:         s,
		Grid:             g,
		Path:             path,
		World:            world,
		EventDispatcher:  eventDispatcher,
		SpawnSystem:      system.NewSpawnSystem(world, path, eventDispatcher, s.Enemy, s.Spawn.Interval),
		MovementSystem:   system.NewMovementSystem(world, path, resolver, s.Enemy.Speed),
		TargetingSystem:  system.NewTargetingSystem(world, eventDispatcher, projectiles, s.Turret),
		ProjectileSystem: projectiles,
		CollisionSystem:  system.NewCollisionSystem(world, s.Enemy.Size, s.Bullet.Size),
		CombatResolver:   resolver,
	}, nil
}

// Tick продвигает симуляцию на один кадр. Время — в мс.
// Порядок шагов фиксирован: спавн, движение врагов, турели, пули,
// столкновения, применение попаданий.
func (g *Game) Tick(currentTime, deltaTime float64) Report {
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.World.GameTime = currentTime

	var r Report
	if id, attempted := g.SpawnSystem.Update(currentTime); attempted {
		if id != types.NoEntity {
			r.Spawned++
		} else {
			r.SpawnFails++
		}
	}

	r.Escapes = g.MovementSystem.Update(deltaTime)

	fire := g.TargetingSystem.Update(deltaTime)
	r.Shots, r.DryShots, r.IdleShots = fire.Shots, fire.Dry, fire.Misses

	r.Expired = g.ProjectileSystem.Update(deltaTime)

	for _, hit := range g.CollisionSystem.Detect() {
		r.Hits++
		if g.CombatResolver.ResolveHit(hit) {
			r.Kills++
		}
	}

	g.stats.add(r)
	return r
}

// RequestPlacement ставит турель в клетку под точкой (x, y).
// Ошибки: обёртки grid.ErrPlacementRejected или ErrPoolExhausted.
// При любой ошибке ни клетка, ни пул не меняются.
func (g *Game) RequestPlacement(x, y float64) (types.EntityID, error) {
	row, col := g.Grid.CellForPoint(x, y)
	if err := g.Grid.Check(row, col); err != nil {
		g.reject(row, col, err)
		return types.NoEntity, err
	}

	id, turret, ok := g.World.Turrets.Acquire()
	if !ok {
		err := fmt.Errorf("%w: turret pool of %d", ErrPoolExhausted, g.World.Turrets.Cap())
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PoolExhausted,
			Time: g.World.GameTime,
			Data: event.PoolData{Kind: event.KindTurret},
		})
		g.reject(row, col, err)
		return types.NoEntity, err
	}
	if err := g.Grid.Place(row, col); err != nil {
		// Check выше уже прошёл, но пул не должен остаться с лишней турелью
		g.World.Turrets.Release(id)
		g.reject(row, col, err)
		return types.NoEntity, err
	}

	x, y = g.Grid.CellCenter(row, col)
	*turret = component.Turret{
		Position: component.Position{X: x, Y: y},
		Row:      row,
		Col:      col,
	}
	g.stats.Turrets++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TurretPlaced,
		Time: g.World.GameTime,
		Data: event.PlacementData{Turret: id, Row: row, Col: col},
	})
	return id, nil
}

func (g *Game) reject(row, col int, err error) {
	g.stats.Rejected++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlacementRejected,
		Time: g.World.GameTime,
		Data: event.PlacementData{Turret: types.NoEntity, Row: row, Col: col, Err: err},
	})
}

// QueryEnemyNear — первый активный враг ближе radius к точке (x, y).
func (g *Game) QueryEnemyNear(x, y, radius float64) (types.EntityID, *component.Enemy, bool) {
	return system.FindEnemyInRange(g.World, x, y, radius)
}

// Events — диспетчер, на который хосты подписывают свои слушатели.
func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}

// Stats возвращает накопленные счётчики.
func (g *Game) Stats() Stats {
	return g.stats
}

// GetGameTime — время последнего тика, мс
func (g *Game) GetGameTime() float64 {
	return g.World.GameTime
}

// Snapshot собирает кадр для приёмника отрисовки.
func (g *Game) Snapshot() snapshot.Frame {
	f := snapshot.Frame{
		Time:    g.World.GameTime,
		Field:   g.field(),
		Sprites: make([]snapshot.Sprite, 0, g.World.Enemies.ActiveCount()+g.World.Turrets.ActiveCount()+g.World.Bullets.ActiveCount()),
	}

	g.World.Turrets.ForEachActive(func(id types.EntityID, t *component.Turret) {
		f.Sprites = append(f.Sprites, snapshot.Sprite{
			Kind: snapshot.SpriteTurret,
			ID:   int(id),
			X:    t.X,
			Y:    t.Y,
			// Спрайт турели нарисован стволом вверх
			Rotation: t.Angle + math.Pi/2,
		})
	})
	g.World.Enemies.ForEachActive(func(id types.EntityID, e *component.Enemy) {
		f.Sprites = append(f.Sprites, snapshot.Sprite{
			Kind:      snapshot.SpriteEnemy,
			ID:        int(id),
			X:         e.X,
			Y:         e.Y,
			HitPoints: e.HitPoints,
		})
	})
	g.World.Bullets.ForEachActive(func(id types.EntityID, b *component.Bullet) {
		f.Sprites = append(f.Sprites, snapshot.Sprite{
			Kind:     snapshot.SpriteBullet,
			ID:       int(id),
			X:        b.X,
			Y:        b.Y,
			Rotation: math.Atan2(b.DirY, b.DirX),
		})
	})
	return f
}

func (g *Game) field() snapshot.Field {
	cells := g.Grid.Cells()
	out := snapshot.Field{
		Rows:     g.Grid.Rows(),
		Cols:     g.Grid.Cols(),
		CellSize: g.Grid.CellSize(),
		Cells:    make([][]int8, len(cells)),
		Path:     make([][2]float64, 0, len(g.Scenario.Path)),
	}
	for r, row := range cells {
		out.Cells[r] = make([]int8, len(row))
		for c, state := range row {
			out.Cells[r][c] = int8(state)
		}
	}
	for _, p := range g.Path.Points() {
		out.Path = append(out.Path, [2]float64{p.X, p.Y})
	}
	return out
}
