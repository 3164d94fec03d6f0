// Package board models a megakolmio board and the transitions the search walks.
//
// State is a plain value. Copying it copies every placement, so a state
// derived by First or Next never shares mutable data with its parent and
// the search needs no undo logic.
package board

import (
	"strings"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/topology"
)

var (
	// ErrNoCardsLeft means every remaining catalog card is already on the board.
	ErrNoCardsLeft = errors.New("no cards left in deck")
	// ErrBadArrangement is returned by FromPlacements for input it cannot place.
	ErrBadArrangement = errors.New("bad arrangement")
)

// State is a board snapshot plus the enumeration cursors.
type State struct {
	cat   *catalog.Catalog
	cells [domain.NumPositions]Placement
	// next is the first unfilled position.
	next int
	// cursor is where the next deck scan starts; cards below it were already tried here.
	cursor int
}

// New returns an empty board drawing from cat.
func New(cat *catalog.Catalog) State {
	s := State{cat: cat}
	for i := range s.cells {
		s.cells[i].Position = domain.Position(i)
	}
	return s
}

// FromPlacements fills positions 0..len(ps)-1 in order. Empty entries are
// only allowed as a trailing run. Repeated cards are accepted; use Duplicates
// to find them.
func FromPlacements(cat *catalog.Catalog, ps []domain.PlacedCard) (State, error) {
	s := New(cat)
	if len(ps) > domain.NumPositions {
		return State{}, errors.Wrapf(ErrBadArrangement, "%d placements for %d positions", len(ps), domain.NumPositions)
	}
	for i, pc := range ps {
		if strings.TrimSpace(pc.Card) == "" {
			for _, rest := range ps[i+1:] {
				if strings.TrimSpace(rest.Card) != "" {
					return State{}, errors.Wrapf(ErrBadArrangement, "position %d is empty but later positions are filled", i)
				}
			}
			break
		}
		if pc.Rotation > domain.MaxRotation {
			return State{}, errors.Wrapf(ErrBadArrangement, "rotation %d at position %d", pc.Rotation, i)
		}
		card, err := cat.ByName(pc.Card)
		if err != nil {
			return State{}, errors.Wrapf(err, "position %d", i)
		}
		s.cells[i].Card = card
		s.cells[i].Rotation = pc.Rotation
		s.next = i + 1
		s.cursor = cat.Index(card)
	}
	return s, nil
}

// Filled is the number of occupied positions.
func (s State) Filled() int { return s.next }

// Complete reports whether every position holds a card.
func (s State) Complete() bool { return s.next == domain.NumPositions }

// Cursor is the deck index the next scan starts from.
func (s State) Cursor() int { return s.cursor }

// At returns the placement at p.
func (s State) At(p domain.Position) Placement { return s.cells[p] }

// Placements returns the filled placements in position order.
func (s State) Placements() []domain.PlacedCard {
	out := make([]domain.PlacedCard, s.next)
	for i := range out {
		out[i] = s.cells[i].View()
	}
	return out
}

// Consistent checks every adjacency. With partial set, an adjacency with an
// empty side is undecided and skipped; otherwise it fails the board.
func (s State) Consistent(partial bool) bool {
	ok := true
	topology.Each(func(adj topology.Adjacency) bool {
		a, b := s.cells[adj.A], s.cells[adj.B]
		if a.Empty() || b.Empty() {
			if partial {
				return true
			}
			ok = false
			return false
		}
		ok = MatchesNeighbor(a, b, adj.EdgeA, adj.EdgeB)
		return ok
	})
	return ok
}

// Fits reports whether the cards on neighbors a and b interlock.
func (s State) Fits(a, b domain.Position) bool {
	ea, eb := topology.MustCommonEdge(a, b)
	return MatchesNeighbor(s.cells[a], s.cells[b], ea, eb)
}

// Duplicates returns pairs of positions holding the same card.
func (s State) Duplicates() [][2]domain.Position {
	var out [][2]domain.Position
	for i := 0; i < s.next; i++ {
		for j := i + 1; j < s.next; j++ {
			if s.cells[i].Card == s.cells[j].Card {
				out = append(out, [2]domain.Position{domain.Position(i), domain.Position(j)})
			}
		}
	}
	return out
}

func (s *State) onBoard(card *domain.Card) bool {
	for i := 0; i < s.next; i++ {
		if s.cells[i].Card == card {
			return true
		}
	}
	return false
}

// nextUnusedCard returns the first card at or after the cursor that is not
// on the board and moves the cursor to it.
func (s *State) nextUnusedCard() (*domain.Card, error) {
	for i := s.cursor; i < s.cat.Len(); i++ {
		card := s.cat.Card(i)
		if !s.onBoard(card) {
			s.cursor = i
			return card, nil
		}
	}
	return nil, ErrNoCardsLeft
}

// First places the lowest unused card at the next empty position with
// rotation 0. It reports false when the board is full or the deck is spent.
func (s State) First() (State, bool) {
	if s.Complete() {
		return State{}, false
	}
	s.cursor = 0
	card, err := s.nextUnusedCard()
	if err != nil {
		return State{}, false
	}
	s.cells[s.next] = Placement{Card: card, Position: domain.Position(s.next)}
	s.next++
	return s, true
}

// Next advances the most recently placed card: first through its
// rotations, then by substituting the next unused card from the cursor.
// It reports false once this position has nothing left to try.
func (s State) Next() (State, bool) {
	if s.next == 0 {
		return State{}, false
	}
	last := &s.cells[s.next-1]
	if last.Rotate() {
		return s, true
	}
	card, err := s.nextUnusedCard()
	if err != nil {
		return State{}, false
	}
	last.Card = card
	last.Rotation = 0
	return s, true
}

// Solution renders a board as a domain.Solution, names in print order.
func (s State) Solution() domain.Solution {
	sol := domain.Solution{
		Names:      make([]string, 0, domain.NumPositions),
		Placements: s.Placements(),
	}
	for _, p := range topology.PrintOrder {
		if c := s.cells[p]; !c.Empty() {
			sol.Names = append(sol.Names, c.Card.Name)
		}
	}
	return sol
}
