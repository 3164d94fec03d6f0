package domain

// EdgeLabel is a two-character edge code: shape family then orientation.
type EdgeLabel string

func (e EdgeLabel) Family() byte      { return e[0] }
func (e EdgeLabel) Orientation() byte { return e[1] }

// Interlocks reports whether two touching edges fit: same family, opposite orientation.
func (e EdgeLabel) Interlocks(o EdgeLabel) bool {
	return e.Family() == o.Family() && e.Orientation() != o.Orientation()
}

// Card is one physical puzzle piece. Cards are compared by identity, not by labels.
type Card struct {
	Name  string
	Edges [EdgesPerCard]EdgeLabel
}

// Position identifies a board cell (0..8).
type Position int

// Rotation counts 120° turns from the catalog orientation (0..2).
type Rotation uint8

// PlacedCard is the serializable view of one filled board cell.
type PlacedCard struct {
	Card     string   `json:"card"`
	Rotation Rotation `json:"rotation"`
}

// Solution is a complete, fully matching arrangement. Placements are in
// position order; Names are in print order.
type Solution struct {
	Names      []string     `json:"names"`
	Placements []PlacedCard `json:"placements"`
}

// Conflict describes an adjacency whose edges do not interlock, or a card used twice.
type Conflict struct {
	A      Position `json:"a"`
	B      Position `json:"b"`
	Reason string   `json:"reason"`
	EdgeA  string   `json:"edgeA,omitempty"`
	EdgeB  string   `json:"edgeB,omitempty"`
}

// Hint suggests the next placement toward a solution.
type Hint struct {
	Message   string     `json:"message,omitempty"`
	Position  Position   `json:"position"`
	Placement PlacedCard `json:"placement"`
}

// Run is a persisted enumeration result with metadata.
type Run struct {
	ID         string     `json:"id,omitempty"`
	Solutions  []Solution `json:"solutions"`
	Nodes      int64      `json:"nodes"`
	Pruned     int64      `json:"pruned"`
	DurationMs int64      `json:"durationMs"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// RunMeta is a lightweight listing entry.
type RunMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Solutions int    `json:"solutions"`
	CreatedAt int64  `json:"createdAt"`
}
