package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minerun/internal/session"
)

// hudRows is the number of terminal rows above the board.
const hudRows = 1

// tui maps terminal input onto a session and draws it. Everything but
// the event poller runs inside session.Run, so tui needs no locking.
type tui struct {
	screen tcell.Screen
	s      *session.Session
	quit   func()
	now    func() time.Time

	// Terminals report presses and key repeat, never releases, so a
	// press holds its direction until heldUntil.
	hold      time.Duration
	heldUntil [4]time.Time

	mouseX, mouseY int
	mouseSeen      bool
	buttons        tcell.ButtonMask
}

func newTUI(screen tcell.Screen, s *session.Session, hold time.Duration, quit func()) *tui {
	t := &tui{
		screen: screen,
		s:      s,
		quit:   quit,
		now:    time.Now,
		hold:   hold,
	}
	t.resize()
	return t
}

var runeDirections = map[rune]session.Direction{
	'w': session.Up, 'W': session.Up,
	's': session.Down, 'S': session.Down,
	'a': session.Left, 'A': session.Left,
	'd': session.Right, 'D': session.Right,
}

var keyDirections = map[tcell.Key]session.Direction{
	tcell.KeyUp:    session.Up,
	tcell.KeyDown:  session.Down,
	tcell.KeyLeft:  session.Left,
	tcell.KeyRight: session.Right,
}

// command translates a terminal event into a session command. It
// returns nil for events that need no action.
func (t *tui) command(ev tcell.Event) session.Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return func(*session.Session) { t.mouse(ev) }
	case *tcell.EventResize:
		return func(*session.Session) {
			t.resize()
			t.screen.Sync()
		}
	}
	return nil
}

func (t *tui) key(ev *tcell.EventKey) session.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return func(*session.Session) { t.quit() }
	case tcell.KeyEnter:
		return t.start
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return func(*session.Session) { t.quit() }
		case ' ', 'r', 'R':
			return t.start
		case 'f', 'F':
			return func(s *session.Session) {
				if c, ok := s.HoverCell(); ok {
					r := s.Params().CellRect(c)
					s.ToggleFlag(r.Center())
				}
			}
		default:
			if dir, ok := runeDirections[r]; ok {
				return t.press(dir)
			}
		}
	default:
		if dir, ok := keyDirections[ev.Key()]; ok {
			return t.press(dir)
		}
	}
	return nil
}

func (t *tui) start(s *session.Session) {
	if s.State() == session.Playing {
		return
	}
	if err := s.StartRound(); err != nil {
		log.WithError(err).Error("unable to start round")
		t.quit()
		return
	}
	clear(t.heldUntil[:])
}

func (t *tui) press(dir session.Direction) session.Command {
	return func(s *session.Session) {
		s.SetMovementIntent(dir, true)
		t.heldUntil[dir] = t.now().Add(t.hold)
	}
}

// release lets go of directions whose hold window has passed.
func (t *tui) release() {
	now := t.now()
	for dir, until := range t.heldUntil {
		if !until.IsZero() && now.After(until) {
			t.s.SetMovementIntent(session.Direction(dir), false)
			t.heldUntil[dir] = time.Time{}
		}
	}
}

func (t *tui) mouse(ev *tcell.EventMouse) {
	t.mouseX, t.mouseY = ev.Position()
	t.mouseSeen = true

	pressed := ev.Buttons() &^ t.buttons
	t.buttons = ev.Buttons()
	if pressed&(tcell.Button1|tcell.Button2) != 0 {
		t.s.ToggleFlag(t.pointer())
	}
}

// pointer returns the world position under the mouse.
func (t *tui) pointer() (float64, float64) {
	v := t.viewport()
	return v.worldX(t.mouseX), v.worldY(t.mouseY)
}

func (t *tui) resize() {
	w, h := t.screen.Size()
	cs := float64(t.s.Params().CellSize)
	t.s.SetViewport(float64(w/cellWidth)*cs, float64(max(0, h-hudRows))*cs)
}

// frame runs after every tick.
func (t *tui) frame(s *session.Session) {
	t.release()
	if t.mouseSeen {
		s.PointerMoved(t.pointer())
	}
	t.draw()
}
