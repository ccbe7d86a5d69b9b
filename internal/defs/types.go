// internal/defs/types.go
package defs

// Size is the footprint of a sprite in world units. Collision boxes use it
// directly, so it has to match the art the host draws.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Vertex is a path point as written in scenario files: [x, y].
type Vertex [2]float64
