package turn

// Indicator is anything visible that must disappear when the player loses
// control, such as the destination highlight.
type Indicator interface {
	Hide()
}

// Manager flips the turn state. It never rejects or retries; it only
// observes energy and reacts.
type Manager struct {
	OnEnemyTurn  func(s *State)
	OnPlayerTurn func(s *State)
}

// Observe ends the player turn once the tracked actor's energy reaches zero.
// It must run after every energy change of the tick. It reports whether the
// turn flipped.
func (m *Manager) Observe(s *State, e *Energy, indicator Indicator) bool {
	if s == nil || e == nil || s.Turn != Player || !e.Exhausted() {
		return false
	}
	s.Turn = Enemy
	if indicator != nil {
		indicator.Hide()
	}
	if m != nil && m.OnEnemyTurn != nil {
		m.OnEnemyTurn(s)
	}
	return true
}

// EndPlayerTurn spends the rest of the player's energy so the next Observe
// flips the turn. Zero energy stays the only way a player turn ends.
func (m *Manager) EndPlayerTurn(s *State, e *Energy) bool {
	if s == nil || e == nil || s.Turn != Player {
		return false
	}
	e.Drain()
	return true
}

// BeginPlayerTurn hands control back to the player and refills energy. The
// enemy-turn resolver calls it when the enemy side is done.
func (m *Manager) BeginPlayerTurn(s *State, e *Energy) bool {
	if s == nil || s.Turn != Enemy {
		return false
	}
	s.Turn = Player
	s.Number++
	if e != nil {
		e.Reset()
	}
	if m != nil && m.OnPlayerTurn != nil {
		m.OnPlayerTurn(s)
	}
	return true
}
