package domain

// Format selects how solutions are rendered.
type Format int

const (
	FormatText Format = iota // [P1,P2,...]
	FormatJSON               // one JSON object per line
)

// Board dimensions.
const (
	NumPositions = 9
	EdgesPerCard = 3
	MaxRotation  = EdgesPerCard - 1
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}
