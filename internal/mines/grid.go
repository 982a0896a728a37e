package mines

import (
	"strconv"
	"strings"
)

// CellView is what the player is allowed to know about a cell.
type CellView struct {
	Revealed bool
	Flagged  bool
	// NeighborCount is meaningful only when Revealed is set.
	NeighborCount int8
}

// CellView implements [fmt.Stringer]
func (v CellView) String() string {
	switch {
	case v.Flagged:
		return "F"
	case !v.Revealed:
		return "#"
	case v.NeighborCount == 0:
		return "."
	default:
		return strconv.Itoa(int(v.NeighborCount))
	}
}

// View combines board, reveal and flag state for c. It reports false
// for cells off the board.
func View(b *Board, r *Revealer, f *Flags, c Cell) (CellView, bool) {
	if !b.InBounds(c) {
		return CellView{}, false
	}
	v := CellView{
		Revealed: r.IsRevealed(c),
		Flagged:  f.IsFlagged(c),
	}
	if v.Revealed {
		v.NeighborCount = b.counts[b.index(c)]
	}
	return v, true
}

// PlayerGrid renders the player's knowledge of the board, one row per
// line.
func PlayerGrid(b *Board, r *Revealer, f *Flags) string {
	var sb strings.Builder
	for row := range b.Rows {
		for col := range b.Cols {
			v, _ := View(b, r, f, Cell{Col: col, Row: row})
			sb.WriteString(v.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
