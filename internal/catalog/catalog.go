// Package catalog holds the fixed deck of nine megakolmio cards.
package catalog

import (
	"strings"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/domain"
)

// ErrUnknownCard is returned by ByName for names outside the deck.
var ErrUnknownCard = errors.New("unknown card")

// Catalog is an ordered, read-only sequence of cards. Callers get pointers
// into it; two pointers are the same card iff they are equal.
type Catalog struct {
	cards []domain.Card
}

// F = fox, D = deer, R = raccoon; H = head, B = body.
var standard = &Catalog{cards: []domain.Card{
	{Name: "P1", Edges: [3]domain.EdgeLabel{"FH", "FB", "DH"}},
	{Name: "P2", Edges: [3]domain.EdgeLabel{"DH", "FB", "RB"}},
	{Name: "P3", Edges: [3]domain.EdgeLabel{"DH", "FB", "FH"}},
	{Name: "P4", Edges: [3]domain.EdgeLabel{"DH", "DB", "FB"}},
	{Name: "P5", Edges: [3]domain.EdgeLabel{"DH", "RB", "DB"}},
	{Name: "P6", Edges: [3]domain.EdgeLabel{"RB", "FB", "RH"}},
	{Name: "P7", Edges: [3]domain.EdgeLabel{"FB", "RH", "FH"}},
	{Name: "P8", Edges: [3]domain.EdgeLabel{"RH", "DH", "RB"}},
	{Name: "P9", Edges: [3]domain.EdgeLabel{"FB", "DB", "DH"}},
}}

// Standard returns the puzzle's deck.
func Standard() *Catalog { return standard }

// New builds a catalog from cards. The game always uses Standard; New exists
// for tests that need decks with repeated labels.
func New(cards ...domain.Card) *Catalog {
	cp := make([]domain.Card, len(cards))
	copy(cp, cards)
	return &Catalog{cards: cp}
}

func (c *Catalog) Len() int { return len(c.cards) }

// Card returns the i-th card. It panics if i is out of range.
func (c *Catalog) Card(i int) *domain.Card { return &c.cards[i] }

// Index returns the slot of card in the catalog, or -1 if it is not one of ours.
func (c *Catalog) Index(card *domain.Card) int {
	for i := range c.cards {
		if &c.cards[i] == card {
			return i
		}
	}
	return -1
}

// ByName looks up a card by its printed name, case-insensitively.
func (c *Catalog) ByName(name string) (*domain.Card, error) {
	name = strings.TrimSpace(name)
	for i := range c.cards {
		if strings.EqualFold(c.cards[i].Name, name) {
			return &c.cards[i], nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownCard, "%q", name)
}
