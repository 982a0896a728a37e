package session

import "github.com/vancomm/minerun/internal/mines"

type outcome uint8

const (
	survived outcome = iota
	hitMine
	reachedGoal
)

// collide checks box against the board. A mine under the box counts
// only when it is not flagged. Mines are checked before the goal.
func collide(b *mines.Board, f *mines.Flags, box mines.Rect) (outcome, mines.Cell) {
	for _, c := range b.CellsUnder(box) {
		if b.IsMine(c) && !f.IsFlagged(c) {
			return hitMine, c
		}
	}
	goal := b.Goal()
	if box.Intersects(b.CellRect(goal)) {
		return reachedGoal, goal
	}
	return survived, mines.Cell{}
}
