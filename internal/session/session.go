package session

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minerun/internal/mines"
)

var Log = logrus.New()

// Generator produces the board for a new round.
type Generator func(p mines.Params, r *rand.Rand) (*mines.Board, error)

type Option func(*Session)

func WithLogger(l *logrus.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rnd = r }
}

func WithGenerator(g Generator) Option {
	return func(s *Session) { s.generate = g }
}

func WithFootprint(m mines.FootprintMode) Option {
	return func(s *Session) { s.footprint = m }
}

// Stats summarises the current round.
type Stats struct {
	Round    uuid.UUID
	Ticks    int
	Revealed int
	Flags    int
}

// Session owns one game: the board of the current round, what the
// player has revealed and flagged, the player and the camera. It is
// not safe for concurrent use; see [Run].
type Session struct {
	params    mines.Params
	log       *logrus.Logger
	rnd       *rand.Rand
	generate  Generator
	footprint mines.FootprintMode

	state    State
	round    uuid.UUID
	board    *mines.Board
	revealed *mines.Revealer
	flags    *mines.Flags
	player   player
	cam      camera
	ticks    int

	hover    mines.Cell
	hovering bool
	loss     mines.Cell
}

// New returns a session in the Menu state. No board exists until the
// first StartRound.
func New(p mines.Params, opts ...Option) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		params:   p,
		log:      Log,
		generate: mines.Generate,
		state:    Menu,
		player:   newPlayer(p),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return s, nil
}

func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"round": s.round,
		"state": s.state,
		"tick":  s.ticks,
	}
}

// StartRound generates a fresh board and enters Playing. It is valid
// from Menu and from either terminal state. On a generation error the
// session keeps its previous state.
func (s *Session) StartRound() error {
	next, err := Next(s.state, Start)
	if err != nil {
		return err
	}

	board, err := s.generate(s.params, s.rnd)
	if err != nil {
		s.log.WithError(err).WithField("params", s.params).Error("could not generate board")
		return fmt.Errorf("start round: %w", err)
	}

	s.board = board
	s.revealed = mines.NewRevealer(board)
	s.flags = mines.NewFlags(s.params)
	s.player = newPlayer(s.params)
	s.ticks = 0
	s.loss = mines.Cell{}
	s.round = uuid.New()
	s.state = next

	s.revealed.RevealAround(s.params.SpawnCell())
	cx, cy := s.player.box().Center()
	s.cam.centre(cx, cy, s.params.Width(), s.params.Height())

	s.log.WithFields(s.fields()).WithFields(logrus.Fields{
		"params":   s.params,
		"goal":     board.Goal(),
		"revealed": s.revealed.Count(),
	}).Info("round started")
	return nil
}

// SetMovementIntent holds or releases a direction. Ignored outside
// Playing.
func (s *Session) SetMovementIntent(dir Direction, active bool) {
	if s.state != Playing || dir >= directionCount {
		return
	}
	s.player.intents[dir] = active
}

// ToggleFlag toggles the flag on the cell containing the world point
// (x, y) and reports whether that cell is flagged afterwards.
func (s *Session) ToggleFlag(x, y float64) bool {
	if s.state != Playing {
		return false
	}
	c := s.params.CellAt(x, y)
	flagged := s.flags.Toggle(c)
	s.log.WithFields(s.fields()).WithFields(logrus.Fields{
		"cell":      c,
		"flagged":   flagged,
		"remaining": s.flags.Remaining(),
	}).Debug("flag toggled")
	return flagged
}

// PointerMoved updates the hovered cell and turns the player toward
// the world point (x, y).
func (s *Session) PointerMoved(x, y float64) {
	c := s.params.CellAt(x, y)
	s.hover, s.hovering = c, s.params.InBounds(c)
	if s.state == Playing {
		s.player.face(x, y)
	}
}

// SetViewport sets the size of the visible area in world units.
func (s *Session) SetViewport(w, h float64) {
	s.cam.viewW, s.cam.viewH = w, h
	s.cam.clampTo(s.params.Width(), s.params.Height())
}

// Tick advances the round by one fixed step: move, clamp, check for a
// mine and then the goal, and on survival reveal the footprint and
// move the camera. Outside Playing it does nothing.
func (s *Session) Tick() State {
	if s.state != Playing {
		return s.state
	}
	s.ticks++

	s.player.step(s.params.Speed, s.params.Width(), s.params.Height())
	box := s.player.box()

	switch result, cell := collide(s.board, s.flags, box); result {
	case hitMine:
		s.loss = cell
		s.transition(MineHit)
		s.log.WithFields(s.fields()).WithField("cell", cell).Info("mine hit")
		return s.state
	case reachedGoal:
		s.transition(GoalReached)
		s.log.WithFields(s.fields()).WithField("revealed", s.revealed.Count()).Info("goal reached")
		return s.state
	}

	if n := s.revealed.RevealFootprint(box, s.footprint); n > 0 {
		s.log.WithFields(s.fields()).WithField("cells", n).Trace("revealed")
	}
	cx, cy := box.Center()
	s.cam.follow(cx, cy, s.params.CameraLerp, s.params.Width(), s.params.Height())
	return s.state
}

func (s *Session) transition(e Event) {
	next, err := Next(s.state, e)
	if err != nil {
		s.log.WithFields(s.fields()).WithError(err).Error("transition")
		return
	}
	s.state = next
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Params() mines.Params {
	return s.params
}

// CellState reports what the player knows about c. It reports false
// for cells off the board and before the first round.
func (s *Session) CellState(c mines.Cell) (mines.CellView, bool) {
	if s.board == nil {
		return mines.CellView{}, false
	}
	return mines.View(s.board, s.revealed, s.flags, c)
}

func (s *Session) PlayerPose() Pose {
	return s.player.Pose
}

func (s *Session) PlayerBox() mines.Rect {
	return s.player.box()
}

func (s *Session) RemainingFlags() int {
	if s.flags == nil {
		return s.params.MaxFlags
	}
	return s.flags.Remaining()
}

func (s *Session) GoalCell() (mines.Cell, bool) {
	if s.board == nil {
		return mines.Cell{}, false
	}
	return s.board.Goal(), true
}

// MineCells returns every mine of the round once it has ended.
func (s *Session) MineCells() ([]mines.Cell, bool) {
	if !s.state.Terminal() {
		return nil, false
	}
	return s.board.Mines(), true
}

// LossCell returns the mine that ended the round.
func (s *Session) LossCell() (mines.Cell, bool) {
	return s.loss, s.state == GameOver
}

func (s *Session) HoverCell() (mines.Cell, bool) {
	return s.hover, s.hovering
}

// Camera returns the top-left corner of the view in world units.
func (s *Session) Camera() (float64, float64) {
	return s.cam.X, s.cam.Y
}

func (s *Session) Stats() Stats {
	st := Stats{Round: s.round, Ticks: s.ticks}
	if s.revealed != nil {
		st.Revealed = s.revealed.Count()
	}
	if s.flags != nil {
		st.Flags = s.flags.Count()
	}
	return st
}
