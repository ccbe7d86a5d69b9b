package system

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/polyline"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type rig struct {
	scenario   *defs.Scenario
	world      *entity.World
	dispatcher *event.Dispatcher
	log        *recorder
	resolver   *CombatResolver
	spawn      *SpawnSystem
	movement   *MovementSystem
	projectile *ProjectileSystem
	targeting  *TargetingSystem
	collision  *CollisionSystem
}

func newRig(t *testing.T, caps entity.Capacities) *rig {
	t.Helper()
	s := defs.DefaultScenario()
	pts := make([]polyline.Point, len(s.Path))
	for i, v := range s.Path {
		pts[i] = polyline.Point{X: v[0], Y: v[1]}
	}
	path, err := polyline.New(pts)
	if err != nil {
		t.Fatal(err)
	}

	world := entity.NewWorld(caps)
	d := event.NewDispatcher()
	log := &recorder{}
	for _, et := range []event.EventType{
		event.EnemySpawned, event.EnemyHit, event.EnemyKilled, event.EnemyEscaped,
		event.TurretFired, event.BulletExpired, event.PoolExhausted, event.NoTargetInRange,
	} {
		d.Subscribe(et, log)
	}

	r := &rig{scenario: s, world: world, dispatcher: d, log: log}
	r.resolver = NewCombatResolver(world, d, s.Bullet.Damage)
	r.spawn = NewSpawnSystem(world, path, d, s.Enemy, s.Spawn.Interval)
	r.movement = NewMovementSystem(world, path, r.resolver, s.Enemy.Speed)
	r.projectile = NewProjectileSystem(world, r.resolver, s.Bullet)
	r.targeting = NewTargetingSystem(world, d, r.projectile, s.Turret)
	r.collision = NewCollisionSystem(world, s.Enemy.Size, s.Bullet.Size)
	return r
}

func (r *rig) addEnemy(t *testing.T, x, y float64) types.EntityID {
	t.Helper()
	id, e, ok := r.world.Enemies.Acquire()
	if !ok {
		t.Fatal("enemy pool exhausted")
	}
	*e = component.Enemy{Position: component.Position{X: x, Y: y}, HitPoints: 100}
	return id
}

func (r *rig) addTurret(t *testing.T, x, y float64) types.EntityID {
	t.Helper()
	id, tu, ok := r.world.Turrets.Acquire()
	if !ok {
		t.Fatal("turret pool exhausted")
	}
	*tu = component.Turret{Position: component.Position{X: x, Y: y}}
	return id
}

// resolve — шаги 5 и 6 тика
func (r *rig) resolve() (hits, kills int) {
	for _, h := range r.collision.Detect() {
		hits++
		if r.resolver.ResolveHit(h) {
			kills++
		}
	}
	return hits, kills
}

var caps = entity.Capacities{Enemies: 4, Turrets: 4, Bullets: 8}

func TestApplyDamageClamps(t *testing.T) {
	e := &component.Enemy{HitPoints: 30}
	if left := ApplyDamage(e, 50); left != 0 || e.HitPoints != 0 {
		t.Errorf("hp = %d, want 0", e.HitPoints)
	}
	e.HitPoints = 10
	if left := ApplyDamage(e, -5); left != 10 {
		t.Errorf("negative damage healed: %d", left)
	}
}

func TestSpawnOncePerInterval(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 10})

	spawned := 0
	for now := 1.0; now <= 10000; now++ {
		if id, _ := r.spawn.Update(now); id != types.NoEntity {
			spawned++
			e := r.world.Enemies.Get(id)
			if e.HitPoints != 100 || e.Progress != 0 || e.X != 96 || e.Y != -32 {
				t.Fatalf("spawned enemy not reset: %+v", *e)
			}
		}
	}
	// Попытки в 1, 2002, 4003, 6004, 8005.
	if spawned != 5 {
		t.Errorf("spawned %d, want 5", spawned)
	}
	if got := r.log.count(event.EnemySpawned); got != 5 {
		t.Errorf("EnemySpawned events = %d", got)
	}
}

func TestSpawnNoCatchUp(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 10})
	r.spawn.Update(1)
	// Кадр на 9 секунд: одна попытка, а не четыре
	if _, attempted := r.spawn.Update(9001); !attempted {
		t.Fatal("no spawn after long frame")
	}
	if r.world.Enemies.ActiveCount() != 2 {
		t.Errorf("active = %d, want 2", r.world.Enemies.ActiveCount())
	}
	if r.spawn.NextSpawnTime() != 11001 {
		t.Errorf("next spawn = %v", r.spawn.NextSpawnTime())
	}
}

func TestSpawnPoolExhausted(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 1})
	r.spawn.Update(1)
	id, attempted := r.spawn.Update(2002)
	if !attempted || id != types.NoEntity {
		t.Fatalf("id=%d attempted=%v", id, attempted)
	}
	if r.spawn.NextSpawnTime() != 4002 {
		t.Errorf("failed attempt did not move the schedule: %v", r.spawn.NextSpawnTime())
	}
	if r.log.count(event.PoolExhausted) != 1 {
		t.Error("PoolExhausted not dispatched")
	}
}

func TestEnemyEscapesWithoutDamage(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 1})
	id, _ := r.spawn.Update(1)

	if n := r.movement.Update(5000); n != 0 {
		t.Fatal("escaped halfway")
	}
	e := r.world.Enemies.Get(id)
	if e.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", e.Progress)
	}
	if n := r.movement.Update(5000); n != 1 {
		t.Fatalf("escaped = %d, want 1", n)
	}
	if r.world.Enemies.IsActive(id) {
		t.Error("enemy still active at the end of the path")
	}
	if e.HitPoints != 100 || e.Progress != 1 {
		t.Errorf("escaped enemy: %+v", *e)
	}
	if e.X != 480 || e.Y != 544 {
		t.Errorf("escaped at (%v, %v), want the last vertex", e.X, e.Y)
	}
	if r.log.count(event.EnemyEscaped) != 1 || r.log.count(event.EnemyKilled) != 0 {
		t.Error("escape reported as a kill")
	}
}

func TestProgressClamped(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 1})
	id, _ := r.spawn.Update(1)
	r.movement.Update(50000)
	if p := r.world.Enemies.Get(id).Progress; p != 1 {
		t.Errorf("progress = %v, want clamped 1", p)
	}
}

func TestTurretFiresAtFirstMatchNotNearest(t *testing.T) {
	r := newRig(t, caps)
	r.addEnemy(t, 250, 100) // дальше, но первый в пуле
	r.addEnemy(t, 110, 100)
	turretID := r.addTurret(t, 100, 100)

	stats := r.targeting.Update(16)
	if stats.Shots != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	turret := r.world.Turrets.Get(turretID)
	if turret.Angle != 0 {
		t.Errorf("angle = %v, want 0 (towards the first enemy)", turret.Angle)
	}
	if turret.Cooldown != 1000 {
		t.Errorf("cooldown = %v, want 1000", turret.Cooldown)
	}

	b := r.world.Bullets.Get(0)
	if !r.world.Bullets.IsActive(0) || b.X != 100 || b.Y != 100 {
		t.Fatalf("bullet = %+v", *b)
	}
	if b.DirX != 1 || b.DirY != 0 || b.Speed != 0.6 || b.Lifespan != 1000 {
		t.Errorf("bullet = %+v", *b)
	}
}

func TestRangeIsStrict(t *testing.T) {
	r := newRig(t, caps)
	r.addEnemy(t, 300, 100)
	r.addTurret(t, 100, 100)
	if stats := r.targeting.Update(1); stats.Shots != 0 || stats.Misses != 1 {
		t.Errorf("enemy at exactly 200 was targeted: %+v", stats)
	}
}

func TestCooldownWithoutTarget(t *testing.T) {
	r := newRig(t, caps)
	turretID := r.addTurret(t, 100, 100)

	r.targeting.Update(16)
	turret := r.world.Turrets.Get(turretID)
	if turret.Cooldown != 1000 || r.world.Bullets.ActiveCount() != 0 {
		t.Fatalf("idle turret: cooldown=%v bullets=%d", turret.Cooldown, r.world.Bullets.ActiveCount())
	}
	if r.log.count(event.NoTargetInRange) != 1 {
		t.Error("NoTargetInRange not dispatched")
	}

	// Враг появляется сразу после попытки: турель ждёт всю перезарядку.
	r.addEnemy(t, 150, 100)
	shots := 0
	for i := 0; i < 99; i++ {
		shots += r.targeting.Update(10).Shots
	}
	if shots != 0 {
		t.Fatalf("fired during cooldown")
	}
	if stats := r.targeting.Update(10); stats.Shots != 1 {
		t.Errorf("did not fire when cooldown elapsed: %+v", stats)
	}
}

func TestFireRateWindow(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 1, Turrets: 1, Bullets: 64})
	r.addEnemy(t, 150, 150)
	r.addTurret(t, 100, 100)

	shots := 0
	for i := 0; i < 500; i++ {
		shots += r.targeting.Update(10).Shots
	}
	// 5000 мс: выстрелы в 10, 1010, 2010, 3010, 4010
	if shots != 5 {
		t.Errorf("shots = %d, want 5", shots)
	}
}

func TestBulletPoolExhausted(t *testing.T) {
	r := newRig(t, entity.Capacities{Enemies: 1, Turrets: 2, Bullets: 1})
	r.addEnemy(t, 150, 100)
	r.addTurret(t, 100, 100)
	r.addTurret(t, 100, 120)

	stats := r.targeting.Update(1)
	if stats.Shots != 1 || stats.Dry != 1 {
		t.Errorf("stats = %+v", stats)
	}
	for id := types.EntityID(0); id < 2; id++ {
		if c := r.world.Turrets.Get(id).Cooldown; c != 1000 {
			t.Errorf("turret %d cooldown = %v", id, c)
		}
	}
}

func TestBulletExpires(t *testing.T) {
	r := newRig(t, caps)
	id, _ := r.projectile.Fire(0, 0, math.Pi/2)

	expired := 0
	for i := 0; i < 99; i++ {
		expired += r.projectile.Update(10)
	}
	if expired != 0 || !r.world.Bullets.IsActive(id) {
		t.Fatal("bullet expired early")
	}
	if n := r.projectile.Update(10); n != 1 {
		t.Fatalf("expired = %d, want 1", n)
	}
	if r.world.Bullets.IsActive(id) {
		t.Error("bullet still active")
	}
	b := r.world.Bullets.Get(id)
	if math.Abs(b.Y-600) > 1e-6 || math.Abs(b.X) > 1e-6 {
		t.Errorf("bullet travelled to (%v, %v), want (0, 600)", b.X, b.Y)
	}
	if r.log.count(event.BulletExpired) != 1 {
		t.Error("BulletExpired not dispatched")
	}
}

func TestBulletHitsStationaryEnemy(t *testing.T) {
	r := newRig(t, caps)
	enemyID := r.addEnemy(t, 300, 100)
	bulletID, _ := r.projectile.Fire(100, 100, 0)

	// Зазор между коробками: 300-24 - (100+4) = 172, т.е. ~287 мс.
	for tick := 1; tick <= 28; tick++ {
		r.projectile.Update(10)
		if hits, _ := r.resolve(); hits != 0 {
			t.Fatalf("hit too early on tick %d", tick)
		}
	}
	r.projectile.Update(10)
	hits, kills := r.resolve()
	if hits != 1 || kills != 0 {
		t.Fatalf("hits=%d kills=%d", hits, kills)
	}
	if hp := r.world.Enemies.Get(enemyID).HitPoints; hp != 50 {
		t.Errorf("hp = %d, want 50", hp)
	}
	if r.world.Bullets.IsActive(bulletID) {
		t.Error("bullet survived the hit")
	}
}

func TestSecondHitKills(t *testing.T) {
	r := newRig(t, caps)
	enemyID := r.addEnemy(t, 100, 100)

	r.projectile.Fire(100, 100, 0)
	if _, kills := r.resolve(); kills != 0 || !r.world.Enemies.IsActive(enemyID) {
		t.Fatal("killed after the first hit")
	}
	r.projectile.Fire(100, 100, 0)
	if _, kills := r.resolve(); kills != 1 {
		t.Fatal("second hit did not kill")
	}
	if r.world.Enemies.IsActive(enemyID) {
		t.Error("dead enemy still active")
	}
	if hp := r.world.Enemies.Get(enemyID).HitPoints; hp != 0 {
		t.Errorf("hp = %d, want 0", hp)
	}
	if r.log.count(event.EnemyKilled) != 1 || r.log.count(event.EnemyHit) != 2 {
		t.Errorf("events: killed=%d hit=%d", r.log.count(event.EnemyKilled), r.log.count(event.EnemyHit))
	}
}

func TestOneHitPerEnemyPerTick(t *testing.T) {
	r := newRig(t, caps)
	enemyID := r.addEnemy(t, 100, 100)
	first, _ := r.projectile.Fire(100, 100, 0)
	second, _ := r.projectile.Fire(100, 100, 0)

	hits, kills := r.resolve()
	if hits != 1 || kills != 0 {
		t.Fatalf("hits=%d kills=%d, want one hit", hits, kills)
	}
	if r.world.Bullets.IsActive(first) || !r.world.Bullets.IsActive(second) {
		t.Fatal("wrong bullet consumed")
	}
	hits, kills = r.resolve()
	if hits != 1 || kills != 1 || r.world.Enemies.IsActive(enemyID) {
		t.Errorf("next tick: hits=%d kills=%d", hits, kills)
	}
}

func TestOneHitPerBulletPerTick(t *testing.T) {
	r := newRig(t, caps)
	a := r.addEnemy(t, 100, 100)
	b := r.addEnemy(t, 104, 100)
	r.projectile.Fire(102, 100, 0)

	hits, _ := r.resolve()
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if r.world.Enemies.Get(a).HitPoints != 50 || r.world.Enemies.Get(b).HitPoints != 100 {
		t.Error("bullet did not hit the first enemy in pool order only")
	}
}

func TestBulletSkipsAlreadyHitEnemy(t *testing.T) {
	r := newRig(t, caps)
	a := r.addEnemy(t, 100, 100)
	b := r.addEnemy(t, 110, 100)
	r.projectile.Fire(100, 100, 0)
	r.projectile.Fire(105, 100, 0)

	if hits, _ := r.resolve(); hits != 2 {
		t.Fatalf("hits = %d, want 2", hits)
	}
	if r.world.Enemies.Get(a).HitPoints != 50 || r.world.Enemies.Get(b).HitPoints != 50 {
		t.Error("second bullet should fall through to the next overlapping enemy")
	}
}

func TestFindEnemyInRangeSkipsInactive(t *testing.T) {
	r := newRig(t, caps)
	first := r.addEnemy(t, 10, 0)
	second := r.addEnemy(t, 20, 0)
	r.world.Enemies.Release(first)

	id, _, ok := FindEnemyInRange(r.world, 0, 0, 50)
	if !ok || id != second {
		t.Errorf("got %d %v, want %d", id, ok, second)
	}
	if _, _, ok := FindEnemyInRange(r.world, 0, 0, 20); ok {
		t.Error("enemy at distance 20 matched radius 20")
	}
}
