package solver

import (
	"context"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/ports"
)

// ErrUnsolvable is returned by Solve when the search finds nothing.
var ErrUnsolvable = errors.New("unsolvable")

// Solve returns the first solution in discovery order.
func (s *BacktrackingSolver) Solve(ctx context.Context) (*domain.Solution, ports.Stats, error) {
	var out *domain.Solution
	st, err := s.Enumerate(ctx, func(b board.State) error {
		sol := b.Solution()
		out = &sol
		return ErrStop
	})
	if err != nil {
		return nil, st, err
	}
	if out == nil {
		return nil, st, ErrUnsolvable
	}
	return out, st, nil
}

// All collects every solution in discovery order.
func (s *BacktrackingSolver) All(ctx context.Context) ([]domain.Solution, ports.Stats, error) {
	var out []domain.Solution
	st, err := s.Enumerate(ctx, func(b board.State) error {
		out = append(out, b.Solution())
		return nil
	})
	if err != nil {
		return nil, st, err
	}
	return out, st, nil
}
