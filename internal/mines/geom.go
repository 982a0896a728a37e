package mines

import (
	"fmt"
	"math"
	"slices"
)

type Cell struct {
	Col, Row int
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Col, c.Row)
}

// CellRange is an inclusive block of cells.
type CellRange struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

func (r CellRange) Contains(c Cell) bool {
	return r.MinCol <= c.Col && c.Col <= r.MaxCol &&
		r.MinRow <= c.Row && c.Row <= r.MaxRow
}

func (r CellRange) Empty() bool {
	return r.MaxCol < r.MinCol || r.MaxRow < r.MinRow
}

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether the interiors of r and o overlap. Boxes
// that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.X < r.X+r.W && r.X < o.X+o.W &&
		o.Y < r.Y+r.H && r.Y < o.Y+o.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type FootprintMode uint8

const (
	// FootprintLattice samples a 3x3 lattice of points one cell apart,
	// rooted at the box's top-left corner.
	FootprintLattice FootprintMode = iota
	// FootprintExact takes every cell the box overlaps.
	FootprintExact
)

func (m FootprintMode) String() string {
	switch m {
	case FootprintLattice:
		return "lattice"
	case FootprintExact:
		return "exact"
	default:
		return "unknown"
	}
}

func ParseFootprintMode(s string) (FootprintMode, error) {
	switch s {
	case "", "lattice":
		return FootprintLattice, nil
	case "exact":
		return FootprintExact, nil
	}
	return 0, fmt.Errorf("unknown footprint mode %q", s)
}

func (p Params) InBounds(c Cell) bool {
	return 0 <= c.Col && c.Col < p.Cols && 0 <= c.Row && c.Row < p.Rows
}

func (p Params) index(c Cell) int {
	return c.Row*p.Cols + c.Col
}

func (p Params) cellAt(i int) Cell {
	return Cell{Col: i % p.Cols, Row: i / p.Cols}
}

// CellRect returns the world-space rectangle covered by c.
func (p Params) CellRect(c Cell) Rect {
	cs := float64(p.CellSize)
	return Rect{X: float64(c.Col) * cs, Y: float64(c.Row) * cs, W: cs, H: cs}
}

// CellAt maps a world position to the cell containing it. The result
// may be out of bounds.
func (p Params) CellAt(x, y float64) Cell {
	cs := float64(p.CellSize)
	return Cell{
		Col: int(math.Floor(x / cs)),
		Row: int(math.Floor(y / cs)),
	}
}

// CellsUnder returns the in-bounds cells whose rectangles intersect box.
func (p Params) CellsUnder(box Rect) []Cell {
	if box.W <= 0 || box.H <= 0 {
		return nil
	}
	cs := float64(p.CellSize)
	c0 := max(0, int(math.Floor(box.X/cs)))
	r0 := max(0, int(math.Floor(box.Y/cs)))
	c1 := min(p.Cols-1, int(math.Ceil((box.X+box.W)/cs))-1)
	r1 := min(p.Rows-1, int(math.Ceil((box.Y+box.H)/cs))-1)

	var cells []Cell
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// Footprint returns the in-bounds cells considered under box for
// reveal purposes, without duplicates.
func (p Params) Footprint(box Rect, mode FootprintMode) []Cell {
	if mode == FootprintExact {
		return p.CellsUnder(box)
	}

	cs := float64(p.CellSize)
	cells := make([]Cell, 0, 9)
	for dy := range 3 {
		for dx := range 3 {
			c := p.CellAt(box.X+float64(dx)*cs, box.Y+float64(dy)*cs)
			if !p.InBounds(c) {
				continue
			}
			dup := false
			for _, seen := range cells {
				if seen == c {
					dup = true
					break
				}
			}
			if !dup {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// neighbors calls fn for each in-bounds Moore neighbour of c.
func (p Params) neighbors(c Cell, fn func(n Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{Col: c.Col + dx, Row: c.Row + dy}
			if p.InBounds(n) {
				fn(n)
			}
		}
	}
}

// sortCells orders cells row-major.
func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
}
