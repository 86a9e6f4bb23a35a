// Package turn holds the turn state and the per-actor energy economy that
// decides when control passes from the player to the enemy side.
package turn

// Turn is the side allowed to act.
type Turn int

const (
	Player Turn = iota
	Enemy
)

func (t Turn) String() string {
	switch t {
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// State is the process-wide turn context. It is passed explicitly to every
// tick and written only by Manager.
type State struct {
	Turn   Turn
	Number int
}

// NewState starts the first player turn.
func NewState() *State {
	return &State{Turn: Player, Number: 1}
}

// IsPlayer reports whether the player side may act.
func (s *State) IsPlayer() bool {
	return s != nil && s.Turn == Player
}
