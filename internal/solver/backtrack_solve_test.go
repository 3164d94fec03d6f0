package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/validator"
)

// Discovery order for the standard deck.
var reference = []string{
	"[P9,P7,P2,P1,P8,P6,P5,P4,P3]",
	"[P3,P1,P4,P5,P9,P2,P7,P6,P8]",
	"[P8,P5,P6,P7,P3,P4,P1,P2,P9]",
	"[P1,P3,P7,P6,P5,P9,P4,P8,P2]",
	"[P2,P6,P8,P4,P1,P7,P3,P9,P5]",
	"[P5,P4,P9,P3,P2,P8,P6,P7,P1]",
}

func line(b board.State) string {
	return "[" + strings.Join(b.Solution().Names, ",") + "]"
}

func enumerate(t *testing.T) []string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var got []string
	st, err := NewBacktrackingSolver(catalog.Standard()).Enumerate(ctx, func(b board.State) error {
		got = append(got, line(b))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(got), st.Solutions)
	assert.Greater(t, st.Nodes, st.Pruned)
	t.Logf("nodes=%d pruned=%d dur=%v", st.Nodes, st.Pruned, st.Duration)
	return got
}

func TestEnumerateMatchesReference(t *testing.T) {
	assert.Equal(t, reference, enumerate(t))
}

func TestEnumerateIsDeterministic(t *testing.T) {
	assert.Equal(t, enumerate(t), enumerate(t))
}

func TestEverySolutionUsesEachCardOnceAndValidates(t *testing.T) {
	ctx := context.Background()
	v := validator.New(catalog.Standard())
	_, err := NewBacktrackingSolver(nil).Enumerate(ctx, func(b board.State) error {
		assert.True(t, b.Complete())
		assert.True(t, b.Consistent(false))
		assert.Empty(t, b.Duplicates())

		names := map[string]bool{}
		for _, n := range b.Solution().Names {
			names[n] = true
		}
		assert.Len(t, names, 9)

		ok, conflicts, err := v.Validate(ctx, b.Placements())
		require.NoError(t, err)
		assert.True(t, ok, "conflicts: %v", conflicts)
		return nil
	})
	require.NoError(t, err)
}

func TestCount(t *testing.T) {
	n, st, err := NewBacktrackingSolver(nil).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(reference), n)
	assert.Equal(t, n, st.Solutions)
}

func TestSolveReturnsFirst(t *testing.T) {
	sol, st, err := NewBacktrackingSolver(nil).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reference[0], "["+strings.Join(sol.Names, ",")+"]")
	assert.Equal(t, 1, st.Solutions)
	assert.Len(t, sol.Placements, 9)
}

func TestAll(t *testing.T) {
	sols, _, err := NewBacktrackingSolver(nil).All(context.Background())
	require.NoError(t, err)
	require.Len(t, sols, len(reference))
	for i, s := range sols {
		assert.Equal(t, reference[i], "["+strings.Join(s.Names, ",")+"]")
	}
}

func TestEmitErrorStopsSearch(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := NewBacktrackingSolver(nil).Enumerate(context.Background(), func(board.State) error {
		calls++
		return boom
	})
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, calls)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktrackingSolver(nil).Count(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestUnsolvableDeck(t *testing.T) {
	// a single card can never fill nine positions
	cat := catalog.New(*catalog.Standard().Card(0))
	_, st, err := NewBacktrackingSolver(cat).Solve(context.Background())
	assert.True(t, errors.Is(err, ErrUnsolvable))
	assert.Equal(t, 0, st.Solutions)
}

func TestPrunedRootEmitsNothing(t *testing.T) {
	cat := catalog.Standard()
	// find a two-card board that does not fit
	var bad board.State
	for a, ok := board.New(cat).First(); ok; a, ok = a.Next() {
		if b, ok := a.First(); ok && !b.Consistent(true) {
			bad = b
			break
		}
	}
	require.Equal(t, 2, bad.Filled())

	st, err := NewBacktrackingSolver(cat).EnumerateFrom(context.Background(), bad, func(board.State) error {
		t.Fatal("pruned subtree must not emit")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.Nodes)
	assert.Equal(t, int64(1), st.Pruned)
}
