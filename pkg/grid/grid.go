// pkg/grid/grid.go
package grid

import (
	"errors"
	"fmt"
	"math"
)

// CellState — состояние клетки поля
type CellState int

const (
	Blocked  CellState = -1 // Дорога или декор, строить нельзя
	Free     CellState = 0
	Occupied CellState = 1 // Занята турелью
)

func (s CellState) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Free:
		return "free"
	case Occupied:
		return "occupied"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

var (
	// ErrPlacementRejected оборачивается всеми причинами отказа в постройке.
	ErrPlacementRejected = errors.New("placement rejected")

	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrPlacementRejected)
	ErrBlocked     = fmt.Errorf("%w: cell is blocked", ErrPlacementRejected)
	ErrOccupied    = fmt.Errorf("%w: cell is occupied", ErrPlacementRejected)
)

// Grid — карта занятости клеток. Меняется только через Place.
type Grid struct {
	cells    [][]CellState
	rows     int
	cols     int
	cellSize float64
}

// New строит сетку по раскладке -1/0/1. Все строки должны быть одной длины.
func New(layout [][]int, cellSize float64) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, errors.New("grid: empty layout")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("grid: cell size must be positive, got %v", cellSize)
	}

	cols := len(layout[0])
	cells := make([][]CellState, len(layout))
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", r, len(row), cols)
		}
		cells[r] = make([]CellState, cols)
		for c, v := range row {
			state := CellState(v)
			if state != Blocked && state != Free && state != Occupied {
				return nil, fmt.Errorf("grid: unknown cell value %d at (%d, %d)", v, r, c)
			}
			cells[r][c] = state
		}
	}

	return &Grid{
		cells:    cells,
		rows:     len(layout),
		cols:     cols,
		cellSize: cellSize,
	}, nil
}

func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// State возвращает состояние клетки; вне поля клетка считается заблокированной.
func (g *Grid) State(row, col int) CellState {
	if !g.InBounds(row, col) {
		return Blocked
	}
	return g.cells[row][col]
}

// CanPlace — можно ли поставить турель в клетку
func (g *Grid) CanPlace(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col] == Free
}

// Place занимает клетку. Ошибка всегда оборачивает ErrPlacementRejected.
func (g *Grid) Place(row, col int) error {
	if err := g.Check(row, col); err != nil {
		return err
	}
	g.cells[row][col] = Occupied
	return nil
}

// Check объясняет, почему CanPlace вернул бы false. nil — клетка свободна.
func (g *Grid) Check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w (%d, %d)", ErrOutOfBounds, row, col)
	}
	switch g.cells[row][col] {
	case Blocked:
		return fmt.Errorf("%w (%d, %d)", ErrBlocked, row, col)
	case Occupied:
		return fmt.Errorf("%w (%d, %d)", ErrOccupied, row, col)
	}
	return nil
}

// CellForPoint переводит экранные координаты в клетку.
// Отрицательные координаты дают отрицательный индекс, а не нулевой.
func (g *Grid) CellForPoint(x, y float64) (row, col int) {
	return int(math.Floor(y / g.cellSize)), int(math.Floor(x / g.cellSize))
}

// CellCenter возвращает центр клетки в экранных координатах.
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	return float64(col)*g.cellSize + g.cellSize/2, float64(row)*g.cellSize + g.cellSize/2
}

// Cells возвращает копию состояний построчно.
func (g *Grid) Cells() [][]CellState {
	out := make([][]CellState, g.rows)
	for r := range g.cells {
		out[r] = make([]CellState, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}
