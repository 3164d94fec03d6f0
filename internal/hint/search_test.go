package hint

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/solver"
)

func solutions(t *testing.T) []domain.Solution {
	t.Helper()
	sols, _, err := solver.NewBacktrackingSolver(catalog.Standard()).All(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	return sols
}

func TestHintFromEmptyBoard(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h, ok, err := NewSearch(nil).Hint(ctx, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Position(0), h.Position)
	assert.Equal(t, solutions(t)[0].Placements[0], h.Placement)
	assert.NotEmpty(t, h.Message)
}

func TestHintFollowsEachSolution(t *testing.T) {
	for _, sol := range solutions(t) {
		for k := 1; k < domain.NumPositions; k++ {
			h, ok, err := NewSearch(nil).Hint(context.Background(), sol.Placements[:k])
			require.NoError(t, err)
			require.True(t, ok)
			if k == domain.NumPositions-1 {
				// only one card is left, so the last step is forced
				assert.Equal(t, sol.Placements[k], h.Placement)
			}
			assert.Equal(t, domain.Position(k), h.Position)
		}
	}
}

func TestHintCompleteBoard(t *testing.T) {
	_, ok, err := NewSearch(nil).Hint(context.Background(), solutions(t)[0].Placements)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintDeadEnd(t *testing.T) {
	// P1 and P2 unturned do not interlock at positions 0 and 1
	_, ok, err := NewSearch(nil).Hint(context.Background(), []domain.PlacedCard{{Card: "P1"}, {Card: "P2"}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintDuplicate(t *testing.T) {
	_, _, err := NewSearch(nil).Hint(context.Background(), []domain.PlacedCard{{Card: "P1"}, {Card: "P1"}})
	assert.True(t, errors.Is(err, ErrDuplicateCard))
}
