package mines

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Board is an immutable mine layout with its goal and neighbour counts.
type Board struct {
	Params
	mines  mapset.Set[Cell]
	goal   Cell
	counts []int8
}

// NewBoard builds a board from an explicit layout.
func NewBoard(p Params, mineCells []Cell, goal Cell) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	set := mapset.New[Cell]()
	for _, c := range mineCells {
		if !p.InBounds(c) {
			return nil, &LayoutError{c, "mine out of bounds"}
		}
		if set.Has(c) {
			return nil, &LayoutError{c, "duplicate mine"}
		}
		set.Put(c)
	}
	if !p.InBounds(goal) {
		return nil, &LayoutError{goal, "goal out of bounds"}
	}
	if set.Has(goal) {
		return nil, &LayoutError{goal, "goal overlaps a mine"}
	}

	return newBoard(p, set, goal), nil
}

func newBoard(p Params, set mapset.Set[Cell], goal Cell) *Board {
	return &Board{
		Params: p,
		mines:  set,
		goal:   goal,
		counts: NeighborCounts(set, p.Cols, p.Rows),
	}
}

func (b *Board) IsMine(c Cell) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.counts[b.index(c)] == MineSentinel
}

// NeighborCount returns the count for c, MineSentinel for mines, and
// false for out-of-bounds cells.
func (b *Board) NeighborCount(c Cell) (int8, bool) {
	if !b.InBounds(c) {
		return 0, false
	}
	return b.counts[b.index(c)], true
}

func (b *Board) Goal() Cell {
	return b.goal
}

// Mines returns the mined cells in row-major order.
func (b *Board) Mines() []Cell {
	cells := make([]Cell, 0, b.mines.Size())
	b.mines.Each(func(c Cell) {
		cells = append(cells, c)
	})
	sortCells(cells)
	return cells
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	spawn := b.SpawnCell()
	var sb strings.Builder
	for row := range b.Rows {
		for col := range b.Cols {
			c := Cell{Col: col, Row: row}
			n := b.counts[b.index(c)]
			switch {
			case c == spawn:
				sb.WriteString("S ")
			case c == b.goal:
				sb.WriteString("G ")
			case n == MineSentinel:
				sb.WriteString("* ")
			case n == 0:
				sb.WriteString(". ")
			default:
				sb.WriteByte('0' + byte(n))
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
