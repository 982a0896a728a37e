package session

import (
	"fmt"
	"math"

	"github.com/vancomm/minerun/internal/mines"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right

	directionCount
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Pose is the player's position (top-left corner of the sprite) and
// facing angle in degrees.
type Pose struct {
	X, Y   float64
	Facing float64
}

type player struct {
	Pose
	w, h    float64
	intents [directionCount]bool
}

func newPlayer(p mines.Params) player {
	return player{
		Pose: Pose{X: p.SpawnX, Y: p.SpawnY},
		w:    p.SpriteWidth,
		h:    p.SpriteHeight,
	}
}

func (pl *player) box() mines.Rect {
	return mines.Rect{X: pl.X, Y: pl.Y, W: pl.w, H: pl.h}
}

// step applies every held direction once and clamps the sprite to the
// board. Diagonals are not normalised.
func (pl *player) step(speed, boardW, boardH float64) {
	var dx, dy float64
	if pl.intents[Up] {
		dy -= speed
	}
	if pl.intents[Down] {
		dy += speed
	}
	if pl.intents[Left] {
		dx -= speed
	}
	if pl.intents[Right] {
		dx += speed
	}
	pl.X = clamp(pl.X+dx, 0, boardW-pl.w)
	pl.Y = clamp(pl.Y+dy, 0, boardH-pl.h)
}

// face turns the player toward the world point (x, y).
func (pl *player) face(x, y float64) {
	cx, cy := pl.box().Center()
	pl.Facing = math.Atan2(y-cy, x-cx) * 180 / math.Pi
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
