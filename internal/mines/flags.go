package mines

import "github.com/zyedidia/generic/mapset"

// Flags is the set of flagged cells together with the flag budget.
// Count() + Remaining() always equals the budget it was created with.
type Flags struct {
	p         Params
	set       mapset.Set[Cell]
	max       int
	remaining int
}

func NewFlags(p Params) *Flags {
	return &Flags{
		p:         p,
		set:       mapset.New[Cell](),
		max:       p.MaxFlags,
		remaining: p.MaxFlags,
	}
}

// Toggle flags or unflags c and reports whether c is flagged afterwards.
// Placing a flag with an empty budget, or on a cell off the board, does
// nothing.
func (f *Flags) Toggle(c Cell) bool {
	if !f.p.InBounds(c) {
		return false
	}
	if f.set.Has(c) {
		f.set.Remove(c)
		f.remaining++
		return false
	}
	if f.remaining == 0 {
		return false
	}
	f.set.Put(c)
	f.remaining--
	return true
}

func (f *Flags) IsFlagged(c Cell) bool {
	return f.set.Has(c)
}

func (f *Flags) Remaining() int {
	return f.remaining
}

func (f *Flags) Max() int {
	return f.max
}

func (f *Flags) Count() int {
	return f.set.Size()
}

// Cells returns the flagged cells in row-major order.
func (f *Flags) Cells() []Cell {
	cells := make([]Cell, 0, f.set.Size())
	f.set.Each(func(c Cell) {
		cells = append(cells, c)
	})
	sortCells(cells)
	return cells
}
