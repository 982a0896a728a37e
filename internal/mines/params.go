package mines

import (
	"fmt"
	"time"
)

// Params are the fixed constants of a round.
type Params struct {
	Cols, Rows int
	CellSize   int // world units per cell side
	MineCount  int
	MaxFlags   int

	Speed float64       // world units per tick per held direction
	Tick  time.Duration // logical tick length

	SpawnX, SpawnY             float64 // player's top-left corner at round start
	SpriteWidth, SpriteHeight float64

	SafeZone   CellRange // no mines here
	GoalRegion CellRange // the goal is placed here

	CameraLerp float64

	// MaxAttempts bounds how many full layouts the generator tries
	// before giving up on placing the goal.
	MaxAttempts int
}

func DefaultParams() Params {
	return Params{
		Cols:         50,
		Rows:         50,
		CellSize:     50,
		MineCount:    300,
		MaxFlags:     30,
		Speed:        10,
		Tick:         25 * time.Millisecond,
		SpawnX:       200,
		SpawnY:       200,
		SpriteWidth:  64,
		SpriteHeight: 64,
		SafeZone:     CellRange{MinCol: 3, MinRow: 3, MaxCol: 7, MaxRow: 7},
		GoalRegion:   CellRange{MinCol: 30, MinRow: 30, MaxCol: 49, MaxRow: 49},
		CameraLerp:   0.1,
		MaxAttempts:  100,
	}
}

func (p Params) Unpack() (cols, rows, mineCount int) {
	return p.Cols, p.Rows, p.MineCount
}

// Params implements [fmt.Stringer]
func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Cols, p.Rows, p.MineCount)
}

func (p Params) Width() float64 {
	return float64(p.Cols * p.CellSize)
}

func (p Params) Height() float64 {
	return float64(p.Rows * p.CellSize)
}

// SpawnBox is the player's bounding box at round start.
func (p Params) SpawnBox() Rect {
	return Rect{X: p.SpawnX, Y: p.SpawnY, W: p.SpriteWidth, H: p.SpriteHeight}
}

func (p Params) SpawnCell() Cell {
	return p.CellAt(p.SpawnX, p.SpawnY)
}

func (p Params) Validate() error {
	switch {
	case p.Cols <= 0 || p.Rows <= 0:
		return &ParamsError{"Cols/Rows", "board must have at least one cell"}
	case p.CellSize <= 0:
		return &ParamsError{"CellSize", "must be positive"}
	case p.MineCount < 0:
		return &ParamsError{"MineCount", "must not be negative"}
	case p.MaxFlags < 0:
		return &ParamsError{"MaxFlags", "must not be negative"}
	case p.Speed < 0:
		return &ParamsError{"Speed", "must not be negative"}
	case p.Tick <= 0:
		return &ParamsError{"Tick", "must be positive"}
	case p.SpriteWidth <= 0 || p.SpriteHeight <= 0:
		return &ParamsError{"SpriteWidth/SpriteHeight", "must be positive"}
	case p.SpriteWidth > p.Width() || p.SpriteHeight > p.Height():
		return &ParamsError{"SpriteWidth/SpriteHeight", "sprite does not fit on the board"}
	case p.SpawnX < 0 || p.SpawnY < 0 ||
		p.SpawnX+p.SpriteWidth > p.Width() || p.SpawnY+p.SpriteHeight > p.Height():
		return &ParamsError{"SpawnX/SpawnY", "spawn box must lie on the board"}
	case p.GoalRegion.Empty() ||
		!p.InBounds(Cell{p.GoalRegion.MinCol, p.GoalRegion.MinRow}) ||
		!p.InBounds(Cell{p.GoalRegion.MaxCol, p.GoalRegion.MaxRow}):
		return &ParamsError{"GoalRegion", "must be a non-empty block on the board"}
	case p.CameraLerp < 0 || p.CameraLerp > 1:
		return &ParamsError{"CameraLerp", "must be within [0, 1]"}
	case p.MaxAttempts <= 0:
		return &ParamsError{"MaxAttempts", "must be positive"}
	}
	return nil
}
