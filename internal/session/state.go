package session

import (
	"errors"
	"fmt"
)

type State uint8

const (
	Menu State = iota
	Playing
	GameOver
	Win
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Terminal reports whether s ends a round.
func (s State) Terminal() bool {
	return s == GameOver || s == Win
}

type Event uint8

const (
	Start Event = iota
	MineHit
	GoalReached
)

func (e Event) String() string {
	switch e {
	case Start:
		return "start"
	case MineHit:
		return "mine hit"
	case GoalReached:
		return "goal reached"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

var ErrInvalidTransition = errors.New("invalid state transition")

type transition struct {
	from  State
	event Event
}

// There is no way back to Menu.
var transitions = map[transition]State{
	{Menu, Start}:          Playing,
	{Playing, MineHit}:     GameOver,
	{Playing, GoalReached}: Win,
	{GameOver, Start}:      Playing,
	{Win, Start}:           Playing,
}

// Next returns the state reached from s on e.
func Next(s State, e Event) (State, error) {
	to, ok := transitions[transition{s, e}]
	if !ok {
		return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
	}
	return to, nil
}
