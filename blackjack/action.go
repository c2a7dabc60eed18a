package blackjack

// Action represents a recommended play.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

// String returns the uppercase display form used by the overlay.
func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Double:
		return "DOUBLE"
	case Split:
		return "SPLIT"
	case Surrender:
		return "SURRENDER"
	default:
		return "UNKNOWN"
	}
}
