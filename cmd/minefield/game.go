package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vancomm/minerun/internal/session"
)

var directionKeys = map[session.Direction][]ebiten.Key{
	session.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
	session.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
	session.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	session.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
}

var startKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyR}

// game adapts a session to ebiten. Update runs once per logical tick.
type game struct {
	ctx  context.Context
	s    *session.Session
	w, h int
	last session.State
}

func newGame(ctx context.Context, s *session.Session) *game {
	return &game{ctx: ctx, s: s, last: s.State()}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.s.State() != session.Playing {
		for _, k := range startKeys {
			if inpututil.IsKeyJustPressed(k) {
				if err := g.s.StartRound(); err != nil {
					return fmt.Errorf("start round: %w", err)
				}
				break
			}
		}
	}

	for dir, keys := range directionKeys {
		held := false
		for _, k := range keys {
			held = held || ebiten.IsKeyPressed(k)
		}
		g.s.SetMovementIntent(dir, held)
	}

	wx, wy := g.pointer()
	g.s.PointerMoved(wx, wy)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.s.ToggleFlag(wx, wy)
	}

	if state := g.s.Tick(); state != g.last {
		log.WithField("stats", g.s.Stats()).Debugf("%s -> %s", g.last, state)
		g.last = state
	}
	return nil
}

// pointer returns the cursor position in world units.
func (g *game) pointer() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	cx, cy := g.s.Camera()
	return float64(mx) + cx, float64(my) + cy
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.s.SetViewport(float64(g.w), float64(g.h))
	}
	return g.w, g.h
}
