package movement

import (
	"github.com/milk9111/agilearcher/tilemap"
	"github.com/milk9111/agilearcher/turn"
)

// Step reports what a tick did to an actor.
type Step int

const (
	StepIdle Step = iota
	StepConfirmed
	StepMoved
	StepArrived
)

func (s Step) String() string {
	switch s {
	case StepConfirmed:
		return "confirmed"
	case StepMoved:
		return "moved"
	case StepArrived:
		return "arrived"
	default:
		return "idle"
	}
}

// Intent is the player's input for one tick.
type Intent struct {
	Target    tilemap.Cell
	HasTarget bool
	Confirm   bool
}

// PlanMove decides whether target is a legal destination for the actor right
// now. Confirm and the destination highlight share it, so the highlight is
// shown exactly for tiles a confirm would accept.
func PlanMove(ctx Context, a *Actor, energy *turn.Energy, target tilemap.Cell) (Plan, bool) {
	if ctx.Tiles == nil || a == nil || !ctx.Turn.IsPlayer() {
		return Plan{}, false
	}
	if energy != nil && energy.Exhausted() {
		return Plan{}, false
	}
	if !ctx.Tiles.Grid().InBounds(target) || target == a.Cell {
		return Plan{}, false
	}
	return stateFor(a.State).plan(ctx, a, target)
}

// Reachable reports whether confirming target would be accepted.
func Reachable(ctx Context, a *Actor, energy *turn.Energy, target tilemap.Cell) bool {
	_, ok := PlanMove(ctx, a, energy, target)
	return ok
}

// Confirm starts a move or jump toward target and charges its energy. An
// illegal or unreachable target leaves the actor and its energy unchanged.
func Confirm(ctx Context, a *Actor, energy *turn.Energy, target tilemap.Cell) bool {
	plan, ok := PlanMove(ctx, a, energy, target)
	if !ok {
		return false
	}
	a.State = plan.State
	a.Route = plan.Route
	if plan.Region != a.Region {
		a.setRegion(ctx.Tiles, plan.Region)
	}
	if energy != nil {
		energy.Take(ActionCost)
	}
	return true
}

// Advance consumes one route cell of an in-flight action, or finishes it
// when the route is empty.
func Advance(ctx Context, a *Actor) Step {
	if a == nil || ctx.Tiles == nil {
		return StepIdle
	}
	return stateFor(a.State).advance(ctx, a)
}

// Update runs one tick: an idle actor reacts to a confirm, an in-flight one
// advances.
func Update(ctx Context, a *Actor, energy *turn.Energy, in Intent) Step {
	if a == nil {
		return StepIdle
	}
	if in.Confirm && in.HasTarget && !a.InFlight() {
		if Confirm(ctx, a, energy, in.Target) {
			return StepConfirmed
		}
		return StepIdle
	}
	return Advance(ctx, a)
}
