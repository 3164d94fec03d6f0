package ports

import (
	"context"
	"time"

	"svw.info/megakolmio/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes     int64
	Pruned    int64
	Solutions int
	Duration  time.Duration
}

// Solver enumerates the puzzle's solutions.
type Solver interface {
	Solve(ctx context.Context) (*domain.Solution, Stats, error)
	Count(ctx context.Context) (int, Stats, error)
	All(ctx context.Context) ([]domain.Solution, Stats, error)
}

// Validator re-checks an arrangement given in position order.
type Validator interface {
	Validate(ctx context.Context, ps []domain.PlacedCard) (ok bool, conflicts []domain.Conflict, err error)
}

// Hinter suggests the placement for the first empty position.
type Hinter interface {
	Hint(ctx context.Context, ps []domain.PlacedCard) (domain.Hint, bool, error)
}

// Storage persists and retrieves enumeration runs as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.Run) error
	Load(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context) ([]domain.RunMeta, error)
}
