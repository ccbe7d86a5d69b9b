package render

import (
	"image/color"
	"math"

	"go-path-defense/internal/snapshot"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует кадр симуляции: поле, путь и спрайты.
// Поле с путём неизменно и рисуется в отдельное изображение один раз.
type FieldRenderer struct {
	colors      FieldColors
	sizes       SpriteSizes
	gridStroke  float32
	pathStroke  float32
	healthBarH  float32
	maxHP       int
	fillImg     *ebiten.Image
	strokeVs    []ebiten.Vertex
	strokeIs    []uint16
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	fieldImage  *ebiten.Image // Предрендеренное поле
	cachedCells [][]int8
}

// Options — параметры, которые хост задаёт один раз
type Options struct {
	Colors          FieldColors
	Sizes           SpriteSizes
	GridStroke      float32
	PathStroke      float32
	HealthBarHeight float32
	MaxHitPoints    int
}

func NewFieldRenderer(width, height int, opts Options) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &FieldRenderer{
		colors:     opts.Colors,
		sizes:      opts.Sizes,
		gridStroke: opts.GridStroke,
		pathStroke: opts.PathStroke,
		healthBarH: opts.HealthBarHeight,
		maxHP:      opts.MaxHitPoints,
		fillImg:    fillImg,
		strokeVs:   make([]ebiten.Vertex, 0, 64),
		strokeIs:   make([]uint16, 0, 64),
		fillVs:     make([]ebiten.Vertex, 0, 16),
		fillIs:     make([]uint16, 0, 16),
		fieldImage: ebiten.NewImage(width, height),
	}
}

// Draw рисует кадр. Поле перерисовывается, только если изменилась занятость клеток.
func (r *FieldRenderer) Draw(screen *ebiten.Image, f *snapshot.Frame) {
	if !sameCells(r.cachedCells, f.Field.Cells) {
		r.RenderFieldImage(&f.Field)
	}
	screen.DrawImage(r.fieldImage, nil)

	for _, s := range f.Sprites {
		switch s.Kind {
		case snapshot.SpriteTurret:
			r.drawTurret(screen, s)
		case snapshot.SpriteEnemy:
			r.drawEnemy(screen, s)
		case snapshot.SpriteBullet:
			r.drawBullet(screen, s)
		}
	}
}

// RenderFieldImage создаёт предрендеренное изображение поля
func (r *FieldRenderer) RenderFieldImage(field *snapshot.Field) {
	r.fieldImage.Fill(r.colors.Background)
	cs := float32(field.CellSize)

	for row, cells := range field.Cells {
		for col, state := range cells {
			if state == -1 {
				vector.DrawFilledRect(r.fieldImage, float32(col)*cs, float32(row)*cs, cs, cs, r.colors.BlockedCell, false)
			}
		}
	}

	width := float32(field.Cols) * cs
	height := float32(field.Rows) * cs
	for i := 0; i <= field.Rows; i++ {
		y := float32(i) * cs
		vector.StrokeLine(r.fieldImage, 0, y, width, y, r.gridStroke, r.colors.GridLine, false)
	}
	for j := 0; j <= field.Cols; j++ {
		x := float32(j) * cs
		vector.StrokeLine(r.fieldImage, x, 0, x, height, r.gridStroke, r.colors.GridLine, false)
	}

	r.strokePath(r.fieldImage, field.Path)

	r.cachedCells = r.cachedCells[:0]
	for _, row := range field.Cells {
		r.cachedCells = append(r.cachedCells, append([]int8(nil), row...))
	}
}

func (r *FieldRenderer) strokePath(target *ebiten.Image, pts [][2]float64) {
	if len(pts) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.pathStroke,
		LineJoin: vector.LineJoinRound,
	})
	cr, cg, cb, ca := toFloats(r.colors.Path)
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = cr
		r.strokeVs[i].ColorG = cg
		r.strokeVs[i].ColorB = cb
		r.strokeVs[i].ColorA = ca
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *FieldRenderer) drawTurret(screen *ebiten.Image, s snapshot.Sprite) {
	// Корпус — квадрат, повёрнутый вместе со стволом
	half := r.sizes.Turret[0] / 4
	r.fillRotatedRect(screen, s.X, s.Y, half, half, s.Rotation, r.colors.Turret)

	// Rotation отсчитывается от направления «вверх»
	angle := s.Rotation - math.Pi/2
	length := r.sizes.Turret[0] / 2.5
	ex := s.X + math.Cos(angle)*length
	ey := s.Y + math.Sin(angle)*length
	vector.StrokeLine(screen, float32(s.X), float32(s.Y), float32(ex), float32(ey), 5, r.colors.TurretBarrel, true)
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, s snapshot.Sprite) {
	w, h := r.sizes.Enemy[0], r.sizes.Enemy[1]
	x, y := float32(s.X-w/2), float32(s.Y-h/2)
	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), r.colors.Enemy, true)
	vector.StrokeRect(screen, x, y, float32(w), float32(h), 1, DarkenColor(r.colors.Enemy), true)

	if r.maxHP <= 0 || s.HitPoints >= r.maxHP {
		return
	}
	frac := float32(s.HitPoints) / float32(r.maxHP)
	vector.DrawFilledRect(screen, x, y-r.healthBarH-2, float32(w), r.healthBarH, r.colors.HealthBack, false)
	vector.DrawFilledRect(screen, x, y-r.healthBarH-2, float32(w)*frac, r.healthBarH, r.colors.HealthFill, false)
}

func (r *FieldRenderer) drawBullet(screen *ebiten.Image, s snapshot.Sprite) {
	r.fillRotatedRect(screen, s.X, s.Y, r.sizes.Bullet[0]/2, r.sizes.Bullet[1]/2, s.Rotation, r.colors.Bullet)
}

func (r *FieldRenderer) fillRotatedRect(target *ebiten.Image, cx, cy, hw, hh, angle float64, c color.RGBA) {
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	path := vector.Path{}
	for i, p := range corners {
		x := cx + p[0]*cos - p[1]*sin
		y := cy + p[0]*sin + p[1]*cos
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := toFloats(c)
	for i := range r.fillVs {
		r.fillVs[i].ColorR = cr
		r.fillVs[i].ColorG = cg
		r.fillVs[i].ColorB = cb
		r.fillVs[i].ColorA = ca
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func sameCells(a, b [][]int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
