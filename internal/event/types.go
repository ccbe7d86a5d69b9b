// internal/event/types.go
package event

import "go-path-defense/internal/types"

const (
	EnemySpawned      EventType = "EnemySpawned"      // Враг вышел на путь
	EnemyHit          EventType = "EnemyHit"          // Пуля попала во врага
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен
	EnemyEscaped      EventType = "EnemyEscaped"      // Враг дошёл до конца пути
	TurretPlaced      EventType = "TurretPlaced"      // Турель построена
	TurretFired       EventType = "TurretFired"       // Выпущена пуля
	BulletExpired     EventType = "BulletExpired"     // Пуля истекла без попадания
	PlacementRejected EventType = "PlacementRejected" // Клетка недоступна
	PoolExhausted     EventType = "PoolExhausted"     // Нет свободного слота в пуле
	NoTargetInRange   EventType = "NoTargetInRange"   // Турель не нашла цель
)

// EntityKind — вид сущности, к пулу которого относится событие
type EntityKind string

const (
	KindEnemy  EntityKind = "enemy"
	KindTurret EntityKind = "turret"
	KindBullet EntityKind = "bullet"
)

// HitData — данные EnemyHit
type HitData struct {
	Enemy     types.EntityID
	Bullet    types.EntityID
	Damage    int
	HitPoints int // Остаток после попадания
}

// FireData — данные TurretFired
type FireData struct {
	Turret types.EntityID
	Bullet types.EntityID
	Target types.EntityID
	Angle  float64
}

// PlacementData — данные TurretPlaced и PlacementRejected
type PlacementData struct {
	Turret   types.EntityID // types.NoEntity при отказе
	Row, Col int
	Err      error
}

// PoolData — данные PoolExhausted
type PoolData struct {
	Kind EntityKind
}
