package main

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minerun/internal/mines"
	"github.com/vancomm/minerun/internal/session"
)

type fixture struct {
	screen tcell.SimulationScreen
	s      *session.Session
	tui    *tui
	clock  time.Time
	quit   bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	p := mines.DefaultParams()
	p.Cols, p.Rows, p.MineCount = 10, 10, 1
	p.SpawnX, p.SpawnY = 0, 0
	p.SpriteWidth, p.SpriteHeight = 40, 40
	p.SafeZone = mines.CellRange{MinCol: 0, MinRow: 0, MaxCol: 2, MaxRow: 2}
	p.GoalRegion = mines.CellRange{MinCol: 5, MinRow: 5, MaxCol: 9, MaxRow: 9}

	s, err := session.New(p, session.WithGenerator(
		func(p mines.Params, _ *rand.Rand) (*mines.Board, error) {
			return mines.NewBoard(p, []mines.Cell{{Col: 5, Row: 5}}, mines.Cell{Col: 9, Row: 9})
		},
	))
	require.NoError(t, err)

	f := &fixture{screen: screen, s: s, clock: time.Unix(1000, 0)}
	f.tui = newTUI(screen, s, 500*time.Millisecond, func() { f.quit = true })
	f.tui.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) send(ev tcell.Event) {
	if cmd := f.tui.command(ev); cmd != nil {
		cmd(f.s)
	}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func (f *fixture) row(y int) string {
	w, _ := f.screen.Size()
	var sb strings.Builder
	for x := range w {
		r, _, _, _ := f.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestStartKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		key(' '),
		key('r'),
	} {
		f := newFixture(t)
		f.send(ev)
		assert.Equal(t, session.Playing, f.s.State())

		// a second press mid-round is ignored
		f.send(ev)
		assert.Equal(t, session.Playing, f.s.State())
		assert.False(t, f.quit)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		key('q'),
	} {
		f := newFixture(t)
		f.send(ev)
		assert.True(t, f.quit)
	}
}

func TestKeyHold(t *testing.T) {
	f := newFixture(t)
	f.send(key('r'))

	f.send(key('d'))
	f.s.Tick()
	assert.Equal(t, 10.0, f.s.PlayerPose().X)

	// key repeat before the window closes keeps the direction held
	f.clock = f.clock.Add(400 * time.Millisecond)
	f.send(key('d'))
	f.clock = f.clock.Add(400 * time.Millisecond)
	f.tui.release()
	f.s.Tick()
	assert.Equal(t, 20.0, f.s.PlayerPose().X)

	f.clock = f.clock.Add(200 * time.Millisecond)
	f.tui.release()
	f.s.Tick()
	assert.Equal(t, 20.0, f.s.PlayerPose().X)

	f.send(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	f.s.Tick()
	assert.Equal(t, 10.0, f.s.PlayerPose().Y)
}

func TestMouseFlags(t *testing.T) {
	f := newFixture(t)
	f.send(key('r'))

	// column 6 is the left half of board column 3, row 1 is board row 0
	f.send(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone))
	v, _ := f.s.CellState(mines.Cell{Col: 3, Row: 0})
	assert.True(t, v.Flagged)

	// dragging with the button held does not toggle again
	f.send(tcell.NewEventMouse(7, 1, tcell.Button1, tcell.ModNone))
	v, _ = f.s.CellState(mines.Cell{Col: 3, Row: 0})
	assert.True(t, v.Flagged)

	f.send(tcell.NewEventMouse(7, 1, tcell.ButtonNone, tcell.ModNone))
	f.send(tcell.NewEventMouse(7, 1, tcell.Button1, tcell.ModNone))
	v, _ = f.s.CellState(mines.Cell{Col: 3, Row: 0})
	assert.False(t, v.Flagged)
	assert.Equal(t, 30, f.s.RemainingFlags())
}

func TestFlagKey(t *testing.T) {
	f := newFixture(t)
	f.send(key('r'))

	f.send(tcell.NewEventMouse(8, 3, tcell.ButtonNone, tcell.ModNone))
	f.tui.frame(f.s)
	f.send(key('f'))

	v, _ := f.s.CellState(mines.Cell{Col: 4, Row: 2})
	assert.True(t, v.Flagged)
}

func TestDraw(t *testing.T) {
	f := newFixture(t)

	f.tui.draw()
	assert.Contains(t, f.row(11), "press Enter")

	f.send(key('r'))
	f.tui.draw()

	assert.Contains(t, f.row(0), "flags: 30")
	assert.Contains(t, f.row(0), "playing")

	r, _, _, _ := f.screen.GetContent(0, 1)
	assert.Equal(t, '@', r, "player")
	r, _, _, _ = f.screen.GetContent(18, 10)
	assert.Equal(t, '◆', r, "goal")
	r, _, _, _ = f.screen.GetContent(10, 6)
	assert.Equal(t, '░', r, "the mine stays hidden")
	r, _, _, _ = f.screen.GetContent(8, 5)
	assert.Equal(t, '1', r, "numbered neighbour")
}

func TestDrawGameOver(t *testing.T) {
	f := newFixture(t)
	f.send(key('r'))

	// walk down the diagonal into the mine at (5,5)
	f.send(key('d'))
	f.send(key('s'))
	for range 40 {
		if f.s.Tick() != session.Playing {
			break
		}
	}
	require.Equal(t, session.GameOver, f.s.State())

	f.tui.draw()
	r, _, style, _ := f.screen.GetContent(10, 6)
	assert.Equal(t, '✸', r)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, bg)
	assert.Contains(t, f.row(11), "BOOM")
}

func TestFacingGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{45, '↘'},
		{90, '↓'},
		{180, '←'},
		{-180, '←'},
		{-90, '↑'},
		{-135, '↖'},
		{-45, '↗'},
	}
	for _, test := range tests {
		assert.Equal(t, string(test.want), string(facingGlyph(test.angle)), "angle %v", test.angle)
	}
}
