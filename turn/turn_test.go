package turn

import "testing"

type fakeIndicator struct {
	visible bool
	hides   int
}

func (f *fakeIndicator) Hide() {
	f.visible = false
	f.hides++
}

func TestEnergyTake(t *testing.T) {
	cases := []struct {
		name          string
		start         int
		cost          int
		wantCurrent   int
		wantExhausted bool
	}{
		{"single_unit", 10, 1, 9, false},
		{"last_unit", 1, 1, 0, true},
		{"overdraw_clamps", 2, 5, 0, true},
		{"zero_cost", 3, 0, 3, false},
		{"negative_cost_ignored", 3, -2, 3, false},
		{"already_empty", 0, 1, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Energy{Current: c.start, Base: 10}
			exhausted := e.Take(c.cost)
			if e.Current != c.wantCurrent {
				t.Fatalf("Current = %d, want %d", e.Current, c.wantCurrent)
			}
			if exhausted != c.wantExhausted {
				t.Fatalf("exhausted = %v, want %v", exhausted, c.wantExhausted)
			}
		})
	}
}

func TestEnergyNeverNegative(t *testing.T) {
	e := NewEnergy(4)
	for i := 0; i < 10; i++ {
		e.Take(1 + i%3)
		if e.Current < 0 {
			t.Fatalf("energy went negative: %d", e.Current)
		}
	}
	if !e.Exhausted() {
		t.Fatalf("expected pool to be exhausted")
	}
	e.Reset()
	if e.Current != 4 {
		t.Fatalf("Reset: Current = %d, want 4", e.Current)
	}
}

func TestEnergyFractionAndBase(t *testing.T) {
	e := NewEnergy(0)
	if e.Base != DefaultBaseEnergy || e.Current != DefaultBaseEnergy {
		t.Fatalf("NewEnergy(0) = %+v, want default base", e)
	}
	e.Take(5)
	if got := e.Fraction(); got != 0.5 {
		t.Fatalf("Fraction = %v, want 0.5", got)
	}
	e.SetBase(4)
	if e.Current != 4 || e.Base != 4 {
		t.Fatalf("SetBase(4) = %+v, want current clamped to 4", e)
	}
	if got := e.Fraction(); got != 1 {
		t.Fatalf("Fraction = %v, want 1", got)
	}
}

func TestManagerFlipsOncePerTurn(t *testing.T) {
	s := NewState()
	e := NewEnergy(3)
	hl := &fakeIndicator{visible: true}
	enemyTurns := 0
	m := &Manager{OnEnemyTurn: func(*State) { enemyTurns++ }}

	flips := 0
	for tick := 0; tick < 8; tick++ {
		if tick < 5 {
			e.Take(1)
		}
		if m.Observe(s, &e, hl) {
			flips++
			if tick != 2 {
				t.Fatalf("flipped at tick %d, want tick 2 where energy first hit zero", tick)
			}
		}
	}
	if flips != 1 || enemyTurns != 1 {
		t.Fatalf("flips=%d hooks=%d, want exactly one", flips, enemyTurns)
	}
	if s.Turn != Enemy {
		t.Fatalf("turn = %s, want enemy", s.Turn)
	}
	if hl.visible || hl.hides != 1 {
		t.Fatalf("indicator visible=%v hides=%d, want hidden once", hl.visible, hl.hides)
	}
}

func TestManagerIgnoresRemainingEnergy(t *testing.T) {
	s := NewState()
	e := NewEnergy(3)
	var m Manager
	if m.Observe(s, &e, nil) {
		t.Fatalf("must not flip while energy remains")
	}
	if s.Turn != Player {
		t.Fatalf("turn = %s, want player", s.Turn)
	}
}

func TestManagerTurnCycle(t *testing.T) {
	s := NewState()
	e := NewEnergy(2)
	playerTurns := 0
	m := &Manager{OnPlayerTurn: func(*State) { playerTurns++ }}

	if m.BeginPlayerTurn(s, &e) {
		t.Fatalf("BeginPlayerTurn must be a no-op during the player turn")
	}
	if !m.EndPlayerTurn(s, &e) || !e.Exhausted() {
		t.Fatalf("EndPlayerTurn should drain energy")
	}
	if !m.Observe(s, &e, nil) {
		t.Fatalf("Observe should flip after the player ends the turn")
	}
	if m.EndPlayerTurn(s, &e) {
		t.Fatalf("EndPlayerTurn must be a no-op during the enemy turn")
	}
	if !m.BeginPlayerTurn(s, &e) {
		t.Fatalf("BeginPlayerTurn should flip back to the player")
	}
	if s.Turn != Player || s.Number != 2 || e.Current != 2 || playerTurns != 1 {
		t.Fatalf("after cycle: state=%+v energy=%+v hooks=%d", s, e, playerTurns)
	}
}
