package validator

import (
	"context"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/topology"
)

// EdgeValidator checks an arrangement against every adjacency of the board.
type EdgeValidator struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *EdgeValidator {
	if cat == nil {
		cat = catalog.Standard()
	}
	return &EdgeValidator{cat: cat}
}

// Validate reports ok only for a complete board with no repeated cards
// where every pair of neighbors interlocks. Adjacencies with an empty side
// are skipped, so a partial arrangement lists only real conflicts.
func (v *EdgeValidator) Validate(ctx context.Context, ps []domain.PlacedCard) (bool, []domain.Conflict, error) {
	s, err := board.FromPlacements(v.cat, ps)
	if err != nil {
		return false, nil, err
	}
	conf := make([]domain.Conflict, 0, 4)
	for _, d := range s.Duplicates() {
		conf = append(conf, domain.Conflict{
			A:      d[0],
			B:      d[1],
			Reason: "card " + s.At(d[0]).Card.Name + " used twice",
		})
	}
	for _, adj := range topology.Adjacencies() {
		a, b := s.At(adj.A), s.At(adj.B)
		if a.Empty() || b.Empty() {
			continue
		}
		if s.Fits(adj.A, adj.B) {
			continue
		}
		conf = append(conf, domain.Conflict{
			A:      adj.A,
			B:      adj.B,
			Reason: "edges do not interlock",
			EdgeA:  string(a.Edge(adj.EdgeA)),
			EdgeB:  string(b.Edge(adj.EdgeB)),
		})
	}
	return len(conf) == 0 && s.Complete(), conf, nil
}
