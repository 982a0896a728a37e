package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var Log = logrus.New()

// Generate places p.MineCount distinct mines and a goal cell.
//
// Mines never touch the spawn box and never fall inside the safe zone.
// The goal lies in the goal region, off every mine and off the spawn
// box.
func Generate(p Params, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cols, rows, mineCount := p.Unpack()
	spawn := p.SpawnBox()

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]Cell, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			c := Cell{Col: col, Row: row}
			if p.SafeZone.Contains(c) || p.CellRect(c).Intersects(spawn) {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < mineCount {
		return nil, fmt.Errorf(
			"%w: %d mines requested, %d cells available (%s)",
			ErrInfeasible, mineCount, len(candidates), p,
		)
	}

	goals := make([]Cell, 0, cols*rows)
	for row := p.GoalRegion.MinRow; row <= p.GoalRegion.MaxRow; row++ {
		for col := p.GoalRegion.MinCol; col <= p.GoalRegion.MaxCol; col++ {
			c := Cell{Col: col, Row: row}
			if !p.CellRect(c).Intersects(spawn) {
				goals = append(goals, c)
			}
		}
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: goal region has no cell clear of the spawn box", ErrInfeasible)
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		set := placeMines(candidates, mineCount, r)

		goal, ok := pickGoal(goals, set, r)
		if !ok {
			Log.WithFields(logrus.Fields{
				"params": p.String(), "attempt": attempt,
			}).Debug("goal region fully mined, regenerating")
			continue
		}

		Log.WithFields(logrus.Fields{
			"params": p.String(), "attempt": attempt, "goal": goal.String(),
		}).Debug("generated board")

		return newBoard(p, set, goal), nil
	}

	return nil, fmt.Errorf(
		"%w: no free goal cell after %d attempts (%s)",
		ErrInfeasible, p.MaxAttempts, p,
	)
}

// placeMines picks n cells off candidates uniformly without
// replacement. candidates is reordered but keeps its contents.
func placeMines(candidates []Cell, n int, r *rand.Rand) mapset.Set[Cell] {
	set := mapset.New[Cell]()
	k := len(candidates)
	for range n {
		i := r.IntN(k)
		set.Put(candidates[i])
		k--
		candidates[i], candidates[k] = candidates[k], candidates[i]
	}
	return set
}

func pickGoal(goals []Cell, set mapset.Set[Cell], r *rand.Rand) (Cell, bool) {
	free := make([]Cell, 0, len(goals))
	for _, c := range goals {
		if !set.Has(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[r.IntN(len(free))], true
}
