package validator

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/topology"
)

// firstSolution walks the search by hand so this package does not depend on the solver.
func firstSolution(t *testing.T) []domain.PlacedCard {
	t.Helper()
	var found []domain.PlacedCard
	var walk func(s board.State) bool
	walk = func(s board.State) bool {
		if !s.Consistent(true) {
			return false
		}
		if s.Complete() {
			found = s.Placements()
			return true
		}
		for n, ok := s.First(); ok; n, ok = n.Next() {
			if walk(n) {
				return true
			}
		}
		return false
	}
	require.True(t, walk(board.New(catalog.Standard())))
	return found
}

func TestValidSolution(t *testing.T) {
	ok, conf, err := New(nil).Validate(context.Background(), firstSolution(t))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestRotatedCardConflicts(t *testing.T) {
	ps := firstSolution(t)
	ps[5].Rotation = (ps[5].Rotation + 1) % 3

	ok, conf, err := New(nil).Validate(context.Background(), ps)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotEmpty(t, conf)
	for _, c := range conf {
		assert.True(t, c.A == 5 || c.B == 5, "conflict %d-%d does not touch the turned card", c.A, c.B)
		_, _, err := topology.CommonEdge(c.A, c.B)
		assert.NoError(t, err)
		assert.NotEmpty(t, c.EdgeA)
	}
}

func TestDuplicateCard(t *testing.T) {
	ps := firstSolution(t)
	ps[8] = ps[0]
	ok, conf, err := New(nil).Validate(context.Background(), ps)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotEmpty(t, conf)
	assert.Equal(t, domain.Position(0), conf[0].A)
	assert.Equal(t, domain.Position(8), conf[0].B)
	assert.Contains(t, conf[0].Reason, "used twice")
}

func TestPartialArrangement(t *testing.T) {
	ps := firstSolution(t)[:4]
	ok, conf, err := New(nil).Validate(context.Background(), ps)
	require.NoError(t, err)
	assert.False(t, ok, "an incomplete board is never ok")
	assert.Empty(t, conf)
}

func TestBadInput(t *testing.T) {
	_, _, err := New(nil).Validate(context.Background(), []domain.PlacedCard{{Card: "P1", Rotation: 5}})
	assert.True(t, errors.Is(err, board.ErrBadArrangement))
}
