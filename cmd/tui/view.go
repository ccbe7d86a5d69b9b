// cmd/tui/view.go
package main

import (
	"fmt"
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/snapshot"
	"go-path-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
)

// Клетка поля занимает cellCols символов в ширину и cellRows строк в высоту
const (
	cellCols = 4
	cellRows = 2
)

// cellSetter — часть tcell.Screen, которой хватает для отрисовки кадра
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleFree    = tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	styleBlocked = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTurret  = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
)

// view переводит мировые координаты в символьные и обратно
type view struct {
	cellSize float64
	rows     int
	cols     int
}

func newView(f *snapshot.Field) view {
	return view{cellSize: f.CellSize, rows: f.Rows, cols: f.Cols}
}

// toScreen — символ, в который попадает мировая точка
func (v view) toScreen(x, y float64) (int, int) {
	return int(math.Floor(x / v.cellSize * cellCols)), int(math.Floor(y / v.cellSize * cellRows))
}

// toWorld — центр символа в мировых координатах
func (v view) toWorld(sx, sy int) (float64, float64) {
	return (float64(sx) + 0.5) * v.cellSize / cellCols, (float64(sy) + 0.5) * v.cellSize / cellRows
}

// fieldSize — размер поля в символах
func (v view) fieldSize() (int, int) {
	return v.cols * cellCols, v.rows * cellRows
}

func (v view) inField(sx, sy int) bool {
	w, h := v.fieldSize()
	return sx >= 0 && sx < w && sy >= 0 && sy < h
}

// draw рисует кадр: клетки, путь, спрайты
func (v view) draw(s cellSetter, f *snapshot.Frame, maxHP int) {
	for row, cells := range f.Field.Cells {
		for col, state := range cells {
			glyph, style := '·', styleFree
			if state == -1 {
				glyph, style = '░', styleBlocked
			}
			for dy := 0; dy < cellRows; dy++ {
				for dx := 0; dx < cellCols; dx++ {
					s.SetContent(col*cellCols+dx, row*cellRows+dy, glyph, nil, style)
				}
			}
		}
	}
	v.drawPath(s, f.Field.Path)

	for _, sp := range f.Sprites {
		sx, sy := v.toScreen(sp.X, sp.Y)
		if !v.inField(sx, sy) {
			continue
		}
		switch sp.Kind {
		case snapshot.SpriteTurret:
			// Rotation отсчитывается от направления «вверх»
			s.SetContent(sx, sy, utils.DirectionGlyph(sp.Rotation-math.Pi/2), nil, styleTurret)
		case snapshot.SpriteEnemy:
			s.SetContent(sx, sy, '●', nil, enemyStyle(sp.HitPoints, maxHP))
		case snapshot.SpriteBullet:
			s.SetContent(sx, sy, '•', nil, styleBullet)
		}
	}
}

// drawPath проходит каждый сегмент с шагом в полсимвола
func (v view) drawPath(s cellSetter, pts [][2]float64) {
	step := v.cellSize / cellCols / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		length := math.Hypot(b[0]-a[0], b[1]-a[1])
		n := int(length/step) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			sx, sy := v.toScreen(a[0]+(b[0]-a[0])*t, a[1]+(b[1]-a[1])*t)
			if v.inField(sx, sy) {
				s.SetContent(sx, sy, '#', nil, stylePath)
			}
		}
	}
}

// enemyStyle окрашивает врага по оставшемуся здоровью
func enemyStyle(hp, maxHP int) tcell.Style {
	if maxHP <= 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	frac := math.Max(0, math.Min(1, float64(hp)/float64(maxHP)))
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(255*(1-frac)+127*frac), int32(60*frac), 60)).Bold(true)
}

// drawStatus пишет строку статуса под полем
func drawStatus(s cellSetter, y, width int, line string) {
	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		s.SetContent(col, y, r, nil, styleStatus)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(col, y, ' ', nil, styleStatus)
	}
}

func statusLine(simTime float64, stats app.Stats, f *snapshot.Frame, speed float64, paused bool) string {
	state := ""
	if paused {
		state = " [paused]"
	}
	return fmt.Sprintf(" t=%.1fs x%g%s  enemies:%d bullets:%d turrets:%d  kills:%d escaped:%d  (click: build, s: speed, p: pause, q: quit)",
		simTime/1000, speed, state, f.Count(snapshot.SpriteEnemy), f.Count(snapshot.SpriteBullet), stats.Turrets, stats.Kills, stats.Escapes)
}
