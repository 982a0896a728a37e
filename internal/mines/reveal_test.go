package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloodFillSingleMine(t *testing.T) {
	p := smallParams(10, 10, 1)
	b, err := NewBoard(p, []Cell{{5, 5}}, Cell{9, 9})
	require.NoError(t, err)

	r := NewRevealer(b)
	require.True(t, r.RevealCell(Cell{0, 0}))

	assert.False(t, r.IsRevealed(Cell{5, 5}), "mine must never be flood revealed")
	assert.Equal(t, 99, r.Count())
	for _, c := range []Cell{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 6}, {6, 4}, {6, 5}, {6, 6}} {
		assert.True(t, r.IsRevealed(c), "frontier %s", c)
	}
}

func TestFloodFillStopsAtFrontier(t *testing.T) {
	// A wall of mines down column 4 splits the board.
	p := smallParams(10, 10, 10)
	var wall []Cell
	for row := range 10 {
		wall = append(wall, Cell{4, row})
	}
	b, err := NewBoard(p, wall, Cell{9, 9})
	require.NoError(t, err)

	r := NewRevealer(b)
	r.RevealCell(Cell{0, 0})

	for row := range 10 {
		for col := range 10 {
			c := Cell{col, row}
			switch {
			case col < 4:
				assert.True(t, r.IsRevealed(c), "left side %s", c)
			default:
				assert.False(t, r.IsRevealed(c), "right side %s", c)
			}
		}
	}
	assert.Equal(t, 40, r.Count())
}

func TestFloodFillFrontierLeaves(t *testing.T) {
	// Column 3 is the numbered frontier next to the mines in column 4.
	// Column 5 is numbered too but sits behind the wall.
	p := smallParams(10, 10, 10)
	var wall []Cell
	for row := range 10 {
		wall = append(wall, Cell{4, row})
	}
	b, err := NewBoard(p, wall, Cell{9, 9})
	require.NoError(t, err)

	r := NewRevealer(b)
	added := r.FloodFill(Cell{0, 0})

	n, _ := b.NeighborCount(Cell{3, 5})
	assert.Greater(t, n, int8(0))
	assert.True(t, r.IsRevealed(Cell{3, 5}))
	assert.False(t, r.IsRevealed(Cell{5, 5}))
	assert.Equal(t, 40, added)
	assert.Equal(t, 40, r.Count())
}

func TestFloodFillFromNumberedCell(t *testing.T) {
	p := smallParams(10, 10, 1)
	b, err := NewBoard(p, []Cell{{5, 5}}, Cell{9, 9})
	require.NoError(t, err)

	r := NewRevealer(b)
	assert.Zero(t, r.FloodFill(Cell{4, 4}))
	assert.Zero(t, r.FloodFill(Cell{5, 5}))
	assert.Zero(t, r.FloodFill(Cell{-1, 0}))
	assert.Zero(t, r.Count())
}

func TestRevealCell(t *testing.T) {
	p := smallParams(10, 10, 1)
	b, err := NewBoard(p, []Cell{{5, 5}}, Cell{9, 9})
	require.NoError(t, err)

	r := NewRevealer(b)

	assert.False(t, r.RevealCell(Cell{5, 5}), "mines are refused")
	assert.False(t, r.RevealCell(Cell{10, 0}), "out of bounds is refused")
	assert.False(t, r.IsRevealed(Cell{10, 0}))

	assert.True(t, r.RevealCell(Cell{4, 4}))
	assert.Equal(t, 1, r.Count(), "numbered cells do not flood")
	assert.False(t, r.RevealCell(Cell{4, 4}), "already revealed")
}

func TestRevealFootprint(t *testing.T) {
	p := smallParams(10, 10, 0)
	// mines everywhere in column 9 keep counts non-zero in column 8
	var wall []Cell
	for row := range 10 {
		wall = append(wall, Cell{9, row})
	}
	p.MineCount = len(wall)
	b, err := NewBoard(p, wall, Cell{5, 5})
	require.NoError(t, err)

	tests := []struct {
		name string
		mode FootprintMode
		box  Rect
		want []Cell
	}{
		{
			name: "lattice reaches past the sprite",
			mode: FootprintLattice,
			box:  Rect{X: 6*50 + 10, Y: 0, W: 20, H: 20},
			want: []Cell{
				{6, 0}, {7, 0}, {8, 0},
				{6, 1}, {7, 1}, {8, 1},
				{6, 2}, {7, 2}, {8, 2},
			},
		},
		{
			name: "exact covers only overlapped cells",
			mode: FootprintExact,
			box:  Rect{X: 7*50 + 40, Y: 40, W: 20, H: 20},
			want: []Cell{{7, 0}, {8, 0}, {7, 1}, {8, 1}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ElementsMatch(t, test.want, p.Footprint(test.box, test.mode))

			r := NewRevealer(b)
			r.RevealFootprint(test.box, test.mode)
			for _, c := range test.want {
				assert.True(t, r.IsRevealed(c), "cell %s", c)
			}
			assert.False(t, r.IsRevealed(Cell{9, 0}), "mine column stays hidden")
		})
	}
}

func TestRevealAround(t *testing.T) {
	p := smallParams(10, 10, 1)
	b, err := NewBoard(p, []Cell{{5, 5}}, Cell{9, 9})
	require.NoError(t, err)

	r := NewRevealer(b)
	r.RevealAround(Cell{0, 0})

	// (0,0) is a zero cell, so the whole board except the mine opens
	assert.Equal(t, 99, r.Count())

	r = NewRevealer(b)
	got := r.RevealAround(Cell{5, 5})
	assert.Equal(t, 8, got)
	assert.False(t, r.IsRevealed(Cell{5, 5}))
}
