package session

import (
	"context"
	"time"
)

// Command is an input applied to the session between ticks.
type Command func(*Session)

// Run drives s from a single goroutine: commands are applied as they
// arrive and Tick runs every Params().Tick. frame, when non-nil, is
// called after every tick with the updated session. Run returns when
// ctx is done or cmds is closed.
func Run(ctx context.Context, s *Session, cmds <-chan Command, frame func(*Session)) error {
	ticker := time.NewTicker(s.params.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			cmd(s)
		case <-ticker.C:
			s.Tick()
			if frame != nil {
				frame(s)
			}
		}
	}
}
