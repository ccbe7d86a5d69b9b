// internal/defs/waves.go
package defs

// SpawnDefinition describes the enemy spawn cadence.
type SpawnDefinition struct {
	Interval float64 `json:"interval"` // ms between spawn attempts
}

// PoolDefinition fixes the capacity of every entity pool.
type PoolDefinition struct {
	Enemies int `json:"enemies"`
	Turrets int `json:"turrets"`
	Bullets int `json:"bullets"`
}
