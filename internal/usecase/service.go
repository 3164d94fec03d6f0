package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx)
}

func (u *Service) Count(ctx context.Context) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Count(ctx)
}

func (u *Service) Solutions(ctx context.Context) ([]domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.All(ctx)
}

func (u *Service) Validate(ctx context.Context, ps []domain.PlacedCard) (bool, []domain.Conflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, ps)
}

func (u *Service) Hint(ctx context.Context, ps []domain.PlacedCard) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, ps)
}

// Record runs the full search and saves the result under a fresh ID.
func (u *Service) Record(ctx context.Context, name string) (*domain.Run, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	sols, st, err := u.Solutions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "enumerate")
	}
	now := time.Now()
	r := &domain.Run{
		ID:         strconv.FormatInt(now.UnixNano(), 10),
		Name:       name,
		Solutions:  sols,
		Nodes:      st.Nodes,
		Pruned:     st.Pruned,
		DurationMs: st.Duration.Milliseconds(),
		CreatedAt:  now.UnixNano(),
	}
	if err := u.Storage.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Persistence
func (u *Service) Load(ctx context.Context, id string) (*domain.Run, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.RunMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
