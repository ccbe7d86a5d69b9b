package component

// Enemy представляет вражескую сущность, идущую по пути.
type Enemy struct {
	Position
	HitPoints int
	Progress  float64 // Пройденная доля пути, [0,1]
}
