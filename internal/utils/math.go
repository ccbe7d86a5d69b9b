// internal/utils/math.go
package utils

import "math"

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	// Находим кратчайшую разницу
	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// DirectionGlyph подбирает символ стрелки для направления angle (радианы, ось Y вниз).
func DirectionGlyph(angle float64) rune {
	glyphs := [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	sector := int(math.Round(NormalizeAngle(angle)/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return glyphs[sector]
}
