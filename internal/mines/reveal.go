package mines

import "github.com/zyedidia/generic/queue"

// Revealer tracks which cells of a board the player has uncovered.
// Mined cells are never marked revealed.
type Revealer struct {
	board    *Board
	revealed []bool
	count    int
}

func NewRevealer(b *Board) *Revealer {
	return &Revealer{
		board:    b,
		revealed: make([]bool, b.Cols*b.Rows),
	}
}

func (r *Revealer) IsRevealed(c Cell) bool {
	if !r.board.InBounds(c) {
		return false
	}
	return r.revealed[r.board.index(c)]
}

// Count returns the number of revealed cells.
func (r *Revealer) Count() int {
	return r.count
}

// RevealCell uncovers c and, when c has no mined neighbours, floods
// outward from it. It reports whether c was newly revealed.
func (r *Revealer) RevealCell(c Cell) bool {
	if !r.board.InBounds(c) || r.board.IsMine(c) {
		return false
	}
	i := r.board.index(c)
	if r.revealed[i] {
		return false
	}
	r.revealed[i] = true
	r.count++

	if r.board.counts[i] == 0 {
		r.FloodFill(c)
	}
	return true
}

// FloodFill reveals the connected zero-count region around start
// together with its frontier of numbered cells. Numbered cells are
// revealed but do not propagate. start must itself be a zero-count
// cell; otherwise nothing happens. Returns the number of cells newly
// revealed.
func (r *Revealer) FloodFill(start Cell) int {
	if n, ok := r.board.NeighborCount(start); !ok || n != 0 {
		return 0
	}

	revealed := 0
	if i := r.board.index(start); !r.revealed[i] {
		r.revealed[i] = true
		r.count++
		revealed++
	}
	q := queue.New[Cell]()
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		r.board.neighbors(current, func(nb Cell) {
			i := r.board.index(nb)
			if r.revealed[i] {
				return
			}
			/*
			 * Neighbours of a zero cell are never mines, so this
			 * cannot uncover one.
			 */
			r.revealed[i] = true
			r.count++
			revealed++
			if r.board.counts[i] == 0 {
				q.Enqueue(nb)
			}
		})
	}

	return revealed
}

// RevealFootprint reveals every cell of box's footprint. Returns the
// number of cells newly revealed, flood fill included.
func (r *Revealer) RevealFootprint(box Rect, mode FootprintMode) int {
	before := r.count
	for _, c := range r.board.Footprint(box, mode) {
		r.RevealCell(c)
	}
	return r.count - before
}

// RevealAround force-reveals the 3x3 block centred on c.
func (r *Revealer) RevealAround(c Cell) int {
	before := r.count
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			r.RevealCell(Cell{Col: c.Col + dx, Row: c.Row + dy})
		}
	}
	return r.count - before
}
