// internal/defs/scenario.go
package defs

import (
	"errors"
	"fmt"
)

// Scenario holds every constant fixed at simulation construction.
type Scenario struct {
	Name     string           `json:"name"`
	CellSize float64          `json:"cell_size"`
	Layout   [][]int          `json:"layout"` // -1 blocked, 0 free, 1 occupied
	Path     []Vertex         `json:"path"`
	Enemy    EnemyDefinition  `json:"enemy"`
	Turret   TurretDefinition `json:"turret"`
	Bullet   BulletDefinition `json:"bullet"`
	Spawn    SpawnDefinition  `json:"spawn"`
	Pools    PoolDefinition   `json:"pools"`
}

// ErrInvalidScenario is wrapped by every Validate failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Validate checks the values the simulation relies on. Layout and path
// geometry are checked again by the grid and polyline constructors.
func (s *Scenario) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.CellSize > 0, "cell_size must be positive, got %v", s.CellSize)
	check(len(s.Layout) > 0, "layout is empty")
	check(len(s.Path) > 0, "path has no vertices")
	check(s.Enemy.HitPoints > 0, "enemy.hit_points must be positive, got %d", s.Enemy.HitPoints)
	check(s.Enemy.Speed > 0, "enemy.speed must be positive, got %v", s.Enemy.Speed)
	check(s.Turret.FireInterval > 0, "turret.fire_interval must be positive, got %v", s.Turret.FireInterval)
	check(s.Turret.Range > 0, "turret.range must be positive, got %v", s.Turret.Range)
	check(s.Bullet.Speed > 0, "bullet.speed must be positive, got %v", s.Bullet.Speed)
	check(s.Bullet.Lifespan > 0, "bullet.lifespan must be positive, got %v", s.Bullet.Lifespan)
	check(s.Bullet.Damage > 0, "bullet.damage must be positive, got %d", s.Bullet.Damage)
	check(s.Spawn.Interval > 0, "spawn.interval must be positive, got %v", s.Spawn.Interval)
	check(s.Pools.Enemies >= 0 && s.Pools.Turrets >= 0 && s.Pools.Bullets >= 0, "pool capacities must not be negative")
	check(s.Enemy.Size.Width >= 0 && s.Enemy.Size.Height >= 0, "enemy.size must not be negative")
	check(s.Bullet.Size.Width >= 0 && s.Bullet.Size.Height >= 0, "bullet.size must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
}
