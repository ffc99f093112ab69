// Package tilegrid is the static solid/empty tile grid and its broad-phase
// query. A Grid is immutable once built and safe to share.
package tilegrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/metroidvania/shared/gamemath"
)

// Cell codes.
const (
	Empty = 0
	Solid = 1
)

var (
	// ErrInvalidGrid is returned by New for malformed cell data.
	ErrInvalidGrid = errors.New("invalid tile grid")
	// ErrCapacity is returned by Query when the candidate buffer is too small.
	// It is a sizing bug in the caller, see Capacity.
	ErrCapacity = errors.New("broad-phase buffer capacity exceeded")
)

type Grid struct {
	cells    []uint8
	rows     int
	cols     int
	cellSize float64
	solids   []gamemath.AABB
}

// New builds a grid from row-major cell codes. Every row must have the same
// length and every code must be Empty or Solid.
func New(cells [][]int, cellSize float64) (*Grid, error) {
	if math.IsNaN(cellSize) || math.IsInf(cellSize, 0) || cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidGrid, cellSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidGrid)
	}

	g := &Grid{
		rows:     len(cells),
		cols:     len(cells[0]),
		cellSize: cellSize,
	}
	g.cells = make([]uint8, 0, g.rows*g.cols)

	for row, line := range cells {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, row, len(line), g.cols)
		}
		for col, code := range line {
			switch code {
			case Empty:
			case Solid:
				g.solids = append(g.solids, g.cellBox(row, col))
			default:
				return nil, fmt.Errorf("%w: unknown cell code %d at (%d,%d)", ErrInvalidGrid, code, row, col)
			}
			g.cells = append(g.cells, uint8(code))
		}
	}

	return g, nil
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Bounds is the world-space box covering the whole grid.
func (g *Grid) Bounds() gamemath.AABB {
	return gamemath.Rect(0, 0, float64(g.cols)*g.cellSize, float64(g.rows)*g.cellSize)
}

// Solid reports whether (row, col) is a solid cell. Out-of-range cells are
// empty.
func (g *Grid) Solid(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row*g.cols+col] == Solid
}

// Solids returns every solid cell's box in row-major order. The slice is
// shared; callers must not modify it.
func (g *Grid) Solids() []gamemath.AABB {
	return g.solids
}

// Query appends to buf[:0] the boxes of all solid cells within one cell of
// box, scanning rows top to bottom and columns left to right. It never grows
// buf: if more than cap(buf) candidates exist it returns the candidates found
// so far together with ErrCapacity.
func (g *Grid) Query(box gamemath.AABB, buf []gamemath.AABB) ([]gamemath.AABB, error) {
	out := buf[:0]

	minCol, maxCol, minRow, maxRow, ok := g.window(box)
	if !ok {
		return out, nil
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if g.cells[row*g.cols+col] != Solid {
				continue
			}
			if len(out) == cap(out) {
				return out, fmt.Errorf("%w: more than %d candidates around %+v", ErrCapacity, cap(out), box)
			}
			out = append(out, g.cellBox(row, col))
		}
	}

	return out, nil
}

// window returns the clamped cell index range a query scans. ok is false when
// the expanded range misses the grid entirely.
func (g *Grid) window(box gamemath.AABB) (minCol, maxCol, minRow, maxRow int, ok bool) {
	minCol = g.index(box.Min.X) - 1
	maxCol = g.index(box.Max.X) + 1
	minRow = g.index(box.Min.Y) - 1
	maxRow = g.index(box.Max.Y) + 1

	if maxCol < 0 || maxRow < 0 || minCol >= g.cols || minRow >= g.rows {
		return 0, 0, 0, 0, false
	}

	return clamp(minCol, 0, g.cols-1), clamp(maxCol, 0, g.cols-1),
		clamp(minRow, 0, g.rows-1), clamp(maxRow, 0, g.rows-1), true
}

// Window exposes the scanned cell range for debug drawing.
func (g *Grid) Window(box gamemath.AABB) (gamemath.AABB, bool) {
	minCol, maxCol, minRow, maxRow, ok := g.window(box)
	if !ok {
		return gamemath.AABB{}, false
	}
	s := g.cellSize
	return gamemath.Rect(float64(minCol)*s, float64(minRow)*s,
		float64(maxCol-minCol+1)*s, float64(maxRow-minRow+1)*s), true
}

func (g *Grid) index(v float64) int {
	return int(math.Floor(v / g.cellSize))
}

func (g *Grid) cellBox(row, col int) gamemath.AABB {
	return gamemath.Rect(float64(col)*g.cellSize, float64(row)*g.cellSize, g.cellSize, g.cellSize)
}

// Capacity is the largest number of candidates Query can emit for a box of
// the given size. Per axis a box touches at most ceil(size/cell)+1 cells and
// the query adds one cell on each side.
func Capacity(width, height, cellSize float64) int {
	cols := int(math.Ceil(width/cellSize)) + 3
	rows := int(math.Ceil(height/cellSize)) + 3
	return cols * rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
