// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for the single enemy kind.
type EnemyDefinition struct {
	HitPoints int `json:"hit_points"`
	// Speed is path progress per millisecond, independent of path length.
	Speed float64 `json:"speed"`
	Size  Size    `json:"size"`
}
