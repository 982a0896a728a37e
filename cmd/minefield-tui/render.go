package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minerun/internal/mines"
	"github.com/vancomm/minerun/internal/session"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

var (
	styleHidden   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkGray)
	styleRevealed = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleGoal     = tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod).Background(tcell.ColorGold)
	styleMine     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkGray)
	styleLoss     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorGreen).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

func countColor(n int8) tcell.Color {
	switch n {
	case 1:
		return tcell.ColorLightBlue
	case 2:
		return tcell.ColorBlue
	default:
		return tcell.ColorRed
	}
}

// viewport maps between terminal cells and world units. Terminal column
// 0 starts at world x originX*half and row hudRows at originY*cs.
type viewport struct {
	cs, half         float64
	originX, originY float64
	w, h             int
}

func (t *tui) viewport() viewport {
	cs := float64(t.s.Params().CellSize)
	cx, cy := t.s.Camera()
	w, h := t.screen.Size()
	half := cs / cellWidth
	return viewport{
		cs:      cs,
		half:    half,
		originX: math.Ceil(cx / half),
		originY: math.Ceil(cy / cs),
		w:       w,
		h:       h,
	}
}

func (v viewport) screen(c mines.Cell) (int, int) {
	return c.Col*cellWidth - int(v.originX), hudRows + c.Row - int(v.originY)
}

func (v viewport) worldX(x int) float64 {
	return (float64(x) + v.originX + 0.5) * v.half
}

func (v viewport) worldY(y int) float64 {
	return (float64(y-hudRows) + v.originY + 0.5) * v.cs
}

// visible returns the world rectangle shown on the board rows.
func (v viewport) visible() mines.Rect {
	return mines.Rect{
		X: v.originX * v.half,
		Y: v.originY * v.cs,
		W: float64(v.w) * v.half,
		H: float64(max(0, v.h-hudRows)) * v.cs,
	}
}

func (v viewport) put(screen tcell.Screen, c mines.Cell, glyph string, style tcell.Style) {
	x, y := v.screen(c)
	if y < hudRows || y >= v.h {
		return
	}
	for i, r := range []rune(glyph) {
		if i >= cellWidth {
			break
		}
		if x+i >= 0 && x+i < v.w {
			screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

func cellGlyph(cv mines.CellView) (string, tcell.Style) {
	switch {
	case cv.Flagged:
		return "⚑ ", styleHidden.Foreground(tcell.ColorRed)
	case !cv.Revealed:
		return "░░", styleHidden
	case cv.NeighborCount == 0:
		return "  ", styleRevealed
	default:
		return fmt.Sprintf("%d ", cv.NeighborCount), styleRevealed.Foreground(countColor(cv.NeighborCount))
	}
}

// facingGlyph picks the arrow closest to angle, given in degrees with y
// pointing down.
func facingGlyph(angle float64) rune {
	arrows := []rune("→↘↓↙←↖↑↗")
	i := int(math.Round(angle/45)) % len(arrows)
	if i < 0 {
		i += len(arrows)
	}
	return arrows[i]
}

func (t *tui) draw() {
	t.screen.Clear()
	defer t.screen.Show()

	v := t.viewport()
	s := t.s
	if s.State() == session.Menu {
		t.banner(v, "MINEFIELD - press Enter to start")
		return
	}
	p := s.Params()

	for _, c := range p.CellsUnder(v.visible()) {
		cv, _ := s.CellState(c)
		glyph, style := cellGlyph(cv)
		v.put(t.screen, c, glyph, style)
	}

	if goal, ok := s.GoalCell(); ok {
		v.put(t.screen, goal, "◆◆", styleGoal)
	}
	if cells, ok := s.MineCells(); ok {
		for _, c := range cells {
			glyph, style := "✸ ", styleMine
			if loss, ok := s.LossCell(); ok && loss == c {
				style = styleLoss
			}
			v.put(t.screen, c, glyph, style)
		}
	}

	box := s.PlayerBox()
	for _, c := range p.CellsUnder(box) {
		x, y := v.screen(c)
		for i := range cellWidth {
			mainc, combc, style, _ := t.screen.GetContent(x+i, y)
			t.screen.SetContent(x+i, y, mainc, combc, style.Underline(true))
		}
	}
	if c, ok := s.HoverCell(); ok && s.State() == session.Playing {
		x, y := v.screen(c)
		for i := range cellWidth {
			mainc, combc, style, _ := t.screen.GetContent(x+i, y)
			t.screen.SetContent(x+i, y, mainc, combc, style.Background(tcell.ColorYellow))
		}
	}

	player := string([]rune{'@', facingGlyph(s.PlayerPose().Facing)})
	v.put(t.screen, p.CellAt(box.Center()), player, stylePlayer)

	t.hud(v)
}

func (t *tui) hud(v viewport) {
	s := t.s
	st := s.Stats()
	line := fmt.Sprintf(" flags: %d  revealed: %d  %s", s.RemainingFlags(), st.Revealed, s.State())
	t.text(0, 0, v.w, line, styleHUD)

	switch s.State() {
	case session.GameOver:
		t.banner(v, "BOOM - press R to try again")
	case session.Win:
		t.banner(v, "You made it - press R to play again")
	}
}

// banner writes msg centred on the bottom row.
func (t *tui) banner(v viewport, msg string) {
	x := max(0, (v.w-len([]rune(msg)))/2)
	t.text(x, v.h-1, v.w, msg, styleHUD.Bold(true))
}

func (t *tui) text(x, y, w int, msg string, style tcell.Style) {
	for _, r := range msg {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
