package hint

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/solver"
)

// ErrDuplicateCard is returned when the given prefix uses a card twice.
var ErrDuplicateCard = errors.New("card used more than once")

// Search suggests the next placement by finding the first solution that
// extends the cards already on the board.
type Search struct {
	cat    *catalog.Catalog
	solver *solver.BacktrackingSolver
}

func NewSearch(cat *catalog.Catalog) *Search {
	if cat == nil {
		cat = catalog.Standard()
	}
	return &Search{cat: cat, solver: solver.NewBacktrackingSolver(cat)}
}

// Hint returns the placement for the first empty position. It reports false
// when the board is already full or no solution extends it.
func (h *Search) Hint(ctx context.Context, ps []domain.PlacedCard) (domain.Hint, bool, error) {
	root, err := board.FromPlacements(h.cat, ps)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if d := root.Duplicates(); len(d) > 0 {
		return domain.Hint{}, false, errors.Wrapf(ErrDuplicateCard, "positions %d and %d", d[0][0], d[0][1])
	}
	if root.Complete() {
		return domain.Hint{}, false, nil
	}
	pos := domain.Position(root.Filled())
	var found *board.Placement
	_, err = h.solver.EnumerateFrom(ctx, root, func(b board.State) error {
		p := b.At(pos)
		found = &p
		return solver.ErrStop
	})
	if err != nil {
		return domain.Hint{}, false, err
	}
	if found == nil {
		return domain.Hint{}, false, nil
	}
	return domain.Hint{
		Message:   fmt.Sprintf("Place %s at position %d, turned %d time(s)", found.Card.Name, pos, found.Rotation),
		Position:  pos,
		Placement: found.View(),
	}, true, nil
}
