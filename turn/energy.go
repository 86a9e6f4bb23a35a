package turn

// DefaultBaseEnergy is the energy an actor starts every player turn with.
const DefaultBaseEnergy = 10

// Energy is a per-turn action budget. Current never drops below zero.
type Energy struct {
	Current int
	Base    int
}

// NewEnergy returns a full pool. A non-positive base falls back to
// DefaultBaseEnergy.
func NewEnergy(base int) Energy {
	if base <= 0 {
		base = DefaultBaseEnergy
	}
	return Energy{Current: base, Base: base}
}

// Take spends n units. Overdrawing clamps to zero and still counts as having
// consumed the whole remaining budget. It reports whether the pool is empty.
func (e *Energy) Take(n int) bool {
	if n > 0 {
		if n >= e.Current {
			e.Current = 0
		} else {
			e.Current -= n
		}
	}
	return e.Current == 0
}

// Drain empties the pool, used when the player ends the turn early.
func (e *Energy) Drain() {
	e.Current = 0
}

// Reset refills the pool to its base value.
func (e *Energy) Reset() {
	e.Current = e.Base
}

// SetBase changes the base value and clamps the current value to it.
func (e *Energy) SetBase(base int) {
	if base <= 0 {
		return
	}
	e.Base = base
	if e.Current > base {
		e.Current = base
	}
}

// Exhausted reports whether no energy remains.
func (e *Energy) Exhausted() bool {
	return e.Current <= 0
}

// Fraction is Current/Base in [0, 1], used to scale the energy bar.
func (e *Energy) Fraction() float64 {
	if e.Base <= 0 || e.Current <= 0 {
		return 0
	}
	if e.Current >= e.Base {
		return 1
	}
	return float64(e.Current) / float64(e.Base)
}
