// internal/defs/towers.go
package defs

// TurretDefinition holds the static data for the single turret kind.
type TurretDefinition struct {
	FireInterval float64 `json:"fire_interval"` // ms between fire attempts
	Range        float64 `json:"range"`         // strict: distance < Range
	Size         Size    `json:"size"`
}

// BulletDefinition holds the static data for turret bullets.
type BulletDefinition struct {
	Speed    float64 `json:"speed"`    // world units per second
	Lifespan float64 `json:"lifespan"` // ms
	Damage   int     `json:"damage"`
	Size     Size    `json:"size"`
}

// SpeedPerMs converts Speed into units per millisecond, the unit of Tick.
func (b BulletDefinition) SpeedPerMs() float64 {
	return b.Speed / 1000
}
