package solver

import (
	"context"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/ports"
)

// Count runs the full search and reports how many solutions it found.
func (s *BacktrackingSolver) Count(ctx context.Context) (int, ports.Stats, error) {
	st, err := s.Enumerate(ctx, func(board.State) error { return nil })
	if err != nil {
		return 0, st, err
	}
	return st.Solutions, st, nil
}
