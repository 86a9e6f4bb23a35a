package movement

import (
	"github.com/milk9111/agilearcher/pathfind"
	"github.com/milk9111/agilearcher/tilemap"
)

// Plan is an accepted destination: the state to enter and the route to
// consume.
type Plan struct {
	State  ActionState
	Target tilemap.Cell
	Route  []tilemap.Cell
	Region int
}

// actionState is the behaviour of one ActionState. plan handles a confirmed
// destination, advance runs once per tick.
type actionState interface {
	Name() string
	plan(ctx Context, a *Actor, target tilemap.Cell) (Plan, bool)
	advance(ctx Context, a *Actor) Step
}

// State singletons (no allocation on transitions).
var (
	stateOnGround actionState = onGroundState{}
	stateMoving   actionState = movingState{}
	stateJumping  actionState = jumpingState{}
	stateInAir    actionState = inAirState{}
)

func stateFor(s ActionState) actionState {
	switch s {
	case Moving:
		return stateMoving
	case Jumping:
		return stateJumping
	case InAir:
		return stateInAir
	default:
		return stateOnGround
	}
}

type onGroundState struct{}

type movingState struct{}

type jumpingState struct{}

type inAirState struct{}

func (onGroundState) Name() string { return "on_ground" }
func (onGroundState) plan(ctx Context, a *Actor, target tilemap.Cell) (Plan, bool) {
	if region := ctx.Tiles.Layout.Region(a.Region); region != nil && region.Contains(target) {
		return walk(ctx, a, target, a.Region)
	}
	return jump(ctx, a, target)
}
func (onGroundState) advance(Context, *Actor) Step { return StepIdle }

func (inAirState) Name() string { return "in_air" }
func (inAirState) plan(ctx Context, a *Actor, target tilemap.Cell) (Plan, bool) {
	if region := ctx.Tiles.RegionOf(target); region != tilemap.NoRegion && a.WithinJump(target) {
		return walk(ctx, a, target, region)
	}
	return jump(ctx, a, target)
}
func (inAirState) advance(Context, *Actor) Step { return StepIdle }

func (movingState) Name() string { return "moving" }
func (movingState) plan(Context, *Actor, tilemap.Cell) (Plan, bool) { return Plan{}, false }
func (movingState) advance(ctx Context, a *Actor) Step {
	if popRoute(a) {
		return StepMoved
	}
	a.State = OnGround
	return StepArrived
}

func (jumpingState) Name() string { return "jumping" }
func (jumpingState) plan(Context, *Actor, tilemap.Cell) (Plan, bool) { return Plan{}, false }
func (jumpingState) advance(ctx Context, a *Actor) Step {
	if popRoute(a) {
		return StepMoved
	}
	a.State = InAir
	a.setRegion(ctx.Tiles, ctx.Tiles.RegionOf(a.Cell))
	return StepArrived
}

// walk routes along open cells. An unreachable target is not an error, it
// just produces no plan.
func walk(ctx Context, a *Actor, target tilemap.Cell, region int) (Plan, bool) {
	route := pathfind.FindPath(ctx.Tiles.Grid(), a.Cell, target)
	if len(route) == 0 {
		return Plan{}, false
	}
	return Plan{State: Moving, Target: target, Route: route, Region: region}, true
}

// jump sets the actor straight onto the target; no arc is simulated.
func jump(ctx Context, a *Actor, target tilemap.Cell) (Plan, bool) {
	if !ctx.Tiles.Layout.IsJumpTarget(target) || !a.WithinJump(target) {
		return Plan{}, false
	}
	return Plan{State: Jumping, Target: target, Route: []tilemap.Cell{target}, Region: a.Region}, true
}

func popRoute(a *Actor) bool {
	if len(a.Route) == 0 {
		return false
	}
	a.Cell = a.Route[0]
	a.Route = a.Route[1:]
	return true
}
