// pkg/render/color.go
package render

import "image/color"

// FieldColors holds every color the field renderer needs.
type FieldColors struct {
	Background   color.RGBA
	BlockedCell  color.RGBA
	GridLine     color.RGBA
	Path         color.RGBA
	Enemy        color.RGBA
	Turret       color.RGBA
	TurretBarrel color.RGBA
	Bullet       color.RGBA
	HealthBack   color.RGBA
	HealthFill   color.RGBA
}

// SpriteSizes — размеры спрайтов в мировых единицах, те же, что у коробок столкновений.
type SpriteSizes struct {
	Enemy, Turret, Bullet [2]float64
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

func toFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
