package mines

import (
	"errors"
	"fmt"
)

// ErrInfeasible is returned when the placement constraints leave no room
// for the requested mines or the goal.
var ErrInfeasible = errors.New("placement constraints are infeasible")

type ParamsError struct {
	Field  string
	Reason string
}

// [ParamsError] implements [error]
func (e *ParamsError) Error() string {
	return fmt.Sprintf("invalid params: %s: %s", e.Field, e.Reason)
}

type LayoutError struct {
	Cell   Cell
	Reason string
}

// [LayoutError] implements [error]
func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid layout at %s: %s", e.Cell, e.Reason)
}
