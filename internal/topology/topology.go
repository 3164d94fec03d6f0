// Package topology describes the fixed megakolmio board: nine triangular
// cells, which of them touch, and which edge slot of each touches the other.
//
// Cells are numbered in fill order, not in reading order:
//
//	              / \
//	             / 6 \
//	            -------
//	          / \  0  / \
//	         / 2 \   / 1 \
//	        ------- -------
//	      / \  3  / \  5  / \
//	     / 7 \   / 4 \   / 8 \
//	    ------- ------- -------
//
// Edge slots of an upward triangle are 0 (left), 1 (right), 2 (bottom); of a
// downward triangle 2 (top), 1 (left), 0 (right). Touching sides therefore
// share the same slot index.
package topology

import (
	"fmt"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/domain"
)

// ErrNotNeighbors is returned when asking for the common edge of two cells that do not touch.
var ErrNotNeighbors = errors.New("positions are not neighbors")

// Adjacency is one pair of touching cells, A < B, with the slot on each side.
type Adjacency struct {
	A, B         domain.Position
	EdgeA, EdgeB int
}

// Filling 0..8 in order puts the centre cells first so broken partial boards are rejected early.
var table = [...]Adjacency{
	{A: 0, B: 1, EdgeA: 0, EdgeB: 0},
	{A: 0, B: 2, EdgeA: 1, EdgeB: 1},
	{A: 0, B: 6, EdgeA: 2, EdgeB: 2},
	{A: 1, B: 5, EdgeA: 2, EdgeB: 2},
	{A: 2, B: 3, EdgeA: 2, EdgeB: 2},
	{A: 3, B: 4, EdgeA: 0, EdgeB: 0},
	{A: 3, B: 7, EdgeA: 1, EdgeB: 1},
	{A: 4, B: 5, EdgeA: 1, EdgeB: 1},
	{A: 5, B: 8, EdgeA: 0, EdgeB: 0},
}

// PrintOrder lists positions top to bottom, left to right.
var PrintOrder = [domain.NumPositions]domain.Position{6, 2, 0, 1, 7, 3, 4, 5, 8}

type pair struct{ a, b domain.Position }

var index = func() map[pair]int {
	m := make(map[pair]int, len(table))
	for i, adj := range table {
		m[pair{adj.A, adj.B}] = i
	}
	return m
}()

// Size is the number of adjacencies on the board.
const Size = len(table)

// Adjacencies returns a fresh copy of the adjacency table.
func Adjacencies() []Adjacency {
	out := make([]Adjacency, len(table))
	copy(out, table[:])
	return out
}

// Each calls fn for every adjacency in table order without allocating.
func Each(fn func(Adjacency) bool) {
	for _, adj := range table {
		if !fn(adj) {
			return
		}
	}
}

// CommonEdge returns the slots through which a and b touch, in argument order.
func CommonEdge(a, b domain.Position) (edgeA, edgeB int, err error) {
	swapped := false
	if a > b {
		a, b = b, a
		swapped = true
	}
	i, ok := index[pair{a, b}]
	if !ok {
		return 0, 0, errors.Wrapf(ErrNotNeighbors, "%d and %d", a, b)
	}
	adj := table[i]
	if swapped {
		return adj.EdgeB, adj.EdgeA, nil
	}
	return adj.EdgeA, adj.EdgeB, nil
}

// MustCommonEdge is CommonEdge for callers that only ever ask about real
// neighbors. Anything else is a logic error and panics.
func MustCommonEdge(a, b domain.Position) (int, int) {
	ea, eb, err := CommonEdge(a, b)
	if err != nil {
		panic(fmt.Sprintf("topology: %v", err))
	}
	return ea, eb
}
