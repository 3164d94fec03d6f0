package board

import "svw.info/megakolmio/internal/domain"

// Placement is one card lying on one cell at one rotation. A nil Card is an empty cell.
type Placement struct {
	Card     *domain.Card
	Position domain.Position
	Rotation domain.Rotation
}

func (p Placement) Empty() bool { return p.Card == nil }

// Edge returns the label facing slot after rotation is applied.
func (p Placement) Edge(slot int) domain.EdgeLabel {
	return p.Card.Edges[(slot+int(p.Rotation))%domain.EdgesPerCard]
}

// MatchesNeighbor reports whether p and q interlock, p touching through
// slot edgeP and q through edgeQ. Empty placements never match.
func MatchesNeighbor(p, q Placement, edgeP, edgeQ int) bool {
	if p.Empty() || q.Empty() {
		return false
	}
	return p.Edge(edgeP).Interlocks(q.Edge(edgeQ))
}

// Rotate turns p one step. It returns false and leaves p alone once all
// three rotations have been tried; wrapping back to 0 is the caller's job.
func (p *Placement) Rotate() bool {
	if p.Rotation >= domain.MaxRotation {
		return false
	}
	p.Rotation++
	return true
}

// View returns the serializable form of p.
func (p Placement) View() domain.PlacedCard {
	if p.Empty() {
		return domain.PlacedCard{}
	}
	return domain.PlacedCard{Card: p.Card.Name, Rotation: p.Rotation}
}
