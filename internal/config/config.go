// internal/config/config.go
package config

import "image/color"

// Константы хоста. Всё, что влияет на правила симуляции, живёт в сценарии (internal/defs).
const (
	ScreenWidth  = 640
	ScreenHeight = 544 // 8 клеток по 64 + строка статуса
	HUDHeight    = 32
	MaxDeltaTime = 0.06 // Секунды; длинные кадры обрезаются

	ClickDebounceTime = 100 // мс

	SpeedButtonX    = 560
	SpeedButtonY    = 528
	SpeedButtonSize = 9.0
	PauseButtonX    = 610
	PauseButtonY    = 528
	PauseButtonSize = 8.0

	GridStrokeWidth = 1.0
	PathStrokeWidth = 2.0
	HealthBarHeight = 4.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GridLineColor    = color.RGBA{0, 0, 255, 204}
	PathColor        = color.RGBA{255, 255, 255, 255}
	BlockedCellColor = color.RGBA{60, 50, 40, 255}
	HUDColor         = color.RGBA{10, 10, 15, 230}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	TurretColor      = color.RGBA{50, 205, 50, 255}
	TurretBarrel     = color.RGBA{20, 120, 20, 255}
	BulletColor      = color.RGBA{255, 215, 0, 255}
	HealthBackColor  = color.RGBA{60, 0, 0, 255}
	HealthFillColor  = color.RGBA{0, 220, 0, 255}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{220, 60, 60, 220}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	StrokeColor      = color.RGBA{255, 255, 255, 255}

	SpeedMultipliers  = []float64{1, 2, 4}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
