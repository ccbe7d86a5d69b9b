// internal/snapshot/frame.go
package snapshot

// SpriteKind — вид спрайта для приёмника отрисовки
type SpriteKind uint8

const (
	SpriteEnemy SpriteKind = iota + 1
	SpriteTurret
	SpriteBullet
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteEnemy:
		return "enemy"
	case SpriteTurret:
		return "turret"
	case SpriteBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Sprite — одна активная сущность кадра
type Sprite struct {
	Kind      SpriteKind `msgpack:"k"`
	ID        int        `msgpack:"id"`
	X         float64    `msgpack:"x"`
	Y         float64    `msgpack:"y"`
	Rotation  float64    `msgpack:"r"`            // Радианы, в системе координат спрайта
	HitPoints int        `msgpack:"hp,omitempty"` // Только для врагов
}

// Field — неизменная часть кадра: сетка и путь
type Field struct {
	Rows     int          `msgpack:"rows"`
	Cols     int          `msgpack:"cols"`
	CellSize float64      `msgpack:"cell"`
	Cells    [][]int8     `msgpack:"cells"` // -1 blocked, 0 free, 1 occupied
	Path     [][2]float64 `msgpack:"path"`
}

// Frame — всё, что приёмнику отрисовки нужно за один кадр
type Frame struct {
	Time    float64  `msgpack:"t"`
	Field   Field    `msgpack:"field"`
	Sprites []Sprite `msgpack:"sprites"`
}

// Count возвращает число спрайтов заданного вида.
func (f *Frame) Count(kind SpriteKind) int {
	n := 0
	for _, s := range f.Sprites {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
