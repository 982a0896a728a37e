package mines

import "github.com/zyedidia/generic/mapset"

// MineSentinel marks a mined cell in a neighbour count grid.
const MineSentinel int8 = -1

// NeighborCounts returns a row-major grid where each mined cell holds
// MineSentinel and every other cell holds the number of mines among its
// up to eight neighbours. Edges do not wrap.
func NeighborCounts(mines mapset.Set[Cell], cols, rows int) []int8 {
	p := Params{Cols: cols, Rows: rows}
	counts := make([]int8, cols*rows)

	for i := range counts {
		c := p.cellAt(i)
		if mines.Has(c) {
			counts[i] = MineSentinel
			continue
		}
		var n int8
		p.neighbors(c, func(nb Cell) {
			if mines.Has(nb) {
				n++
			}
		})
		counts[i] = n
	}

	return counts
}
