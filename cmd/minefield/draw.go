package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vancomm/minerun/internal/mines"
	"github.com/vancomm/minerun/internal/session"
)

var face = text.NewGoXFace(basicfont.Face7x13)

func countColor(n int8) color.Color {
	switch n {
	case 1:
		return colornames.Lightblue
	case 2:
		return colornames.Blue
	default:
		return colornames.Red
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	if g.s.State() == session.Menu {
		g.banner(screen, "MINEFIELD - press Enter to start")
		return
	}

	p := g.s.Params()
	cs := float32(p.CellSize)
	cx, cy := g.s.Camera()
	toScreen := func(c mines.Cell) (float32, float32) {
		r := p.CellRect(c)
		return float32(r.X - cx), float32(r.Y - cy)
	}

	view := mines.Rect{X: cx, Y: cy, W: float64(g.w), H: float64(g.h)}
	for _, c := range p.CellsUnder(view) {
		v, _ := g.s.CellState(c)
		x, y := toScreen(c)

		fill := colornames.Darkgray
		if v.Revealed {
			fill = colornames.Green
		}
		vector.DrawFilledRect(screen, x, y, cs, cs, fill, false)
		vector.StrokeRect(screen, x, y, cs, cs, 1, colornames.Dimgray, false)

		switch {
		case v.Flagged:
			drawFlag(screen, x, y, cs)
		case v.Revealed && v.NeighborCount > 0:
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x+cs/2-3), float64(y+cs/2-7))
			op.ColorScale.ScaleWithColor(countColor(v.NeighborCount))
			text.Draw(screen, strconv.Itoa(int(v.NeighborCount)), face, op)
		}
	}

	if goal, ok := g.s.GoalCell(); ok {
		x, y := toScreen(goal)
		vector.DrawFilledRect(screen, x, y, cs, cs, colornames.Gold, false)
		vector.StrokeRect(screen, x, y, cs, cs, 2, colornames.Darkgoldenrod, false)
	}

	if cells, ok := g.s.MineCells(); ok {
		for _, c := range cells {
			x, y := toScreen(c)
			vector.DrawFilledCircle(screen, x+cs/2, y+cs/2, cs/4, colornames.Black, true)
		}
		if c, ok := g.s.LossCell(); ok {
			x, y := toScreen(c)
			vector.StrokeRect(screen, x, y, cs, cs, 3, colornames.Red, false)
		}
	}

	box := g.s.PlayerBox()
	for _, c := range p.CellsUnder(box) {
		x, y := toScreen(c)
		vector.StrokeRect(screen, x, y, cs, cs, 2, colornames.White, false)
	}
	if c, ok := g.s.HoverCell(); ok {
		x, y := toScreen(c)
		vector.StrokeRect(screen, x, y, cs, cs, 2, colornames.Yellow, false)
	}

	g.drawPlayer(screen, box, cx, cy)
	g.hud(screen)
}

func drawFlag(screen *ebiten.Image, x, y, cs float32) {
	poleX := x + cs*0.35
	vector.StrokeLine(screen, poleX, y+cs*0.2, poleX, y+cs*0.8, 2, colornames.Black, true)
	vector.DrawFilledRect(screen, poleX, y+cs*0.2, cs*0.35, cs*0.22, colornames.Red, false)
}

func (g *game) drawPlayer(screen *ebiten.Image, box mines.Rect, cx, cy float64) {
	px, py := box.Center()
	sx, sy := float32(px-cx), float32(py-cy)
	r := float32(min(box.W, box.H) / 2)

	vector.DrawFilledCircle(screen, sx, sy, r, colornames.Orange, true)

	rad := g.s.PlayerPose().Facing * math.Pi / 180
	ex := sx + r*float32(math.Cos(rad))
	ey := sy + r*float32(math.Sin(rad))
	vector.StrokeLine(screen, sx, sy, ex, ey, 3, colornames.White, true)
}

func (g *game) hud(screen *ebiten.Image) {
	st := g.s.Stats()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("flags: %d  revealed: %d  TPS: %0.0f", g.s.RemainingFlags(), st.Revealed, ebiten.ActualTPS()),
		8, 8)

	switch g.s.State() {
	case session.GameOver:
		g.banner(screen, "BOOM - press R to try again")
	case session.Win:
		g.banner(screen, "You made it - press R to play again")
	}
}

func (g *game) banner(screen *ebiten.Image, msg string) {
	w, _ := text.Measure(msg, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.w)/2-w/2, float64(g.h)/2)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, msg, face, op)
}
