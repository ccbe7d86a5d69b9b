// internal/entity/ecs.go
package entity

import "go-path-defense/internal/component"

// Capacities задаёт ёмкости пулов мира.
type Capacities struct {
	Enemies int
	Turrets int
	Bullets int
}

// World хранит все сущности симуляции: по одному пулу на вид.
type World struct {
	GameTime float64
	Enemies  *Pool[component.Enemy]
	Turrets  *Pool[component.Turret]
	Bullets  *Pool[component.Bullet]
}

func NewWorld(caps Capacities) *World {
	return &World{
		Enemies: NewPool[component.Enemy](caps.Enemies),
		Turrets: NewPool[component.Turret](caps.Turrets),
		Bullets: NewPool[component.Bullet](caps.Bullets),
	}
}
