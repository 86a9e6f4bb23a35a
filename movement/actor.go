// Package movement drives how an actor picks a destination tile and walks or
// jumps along the computed route, one cell per tick.
package movement

import (
	"errors"
	"fmt"

	"github.com/milk9111/agilearcher/tilemap"
	"github.com/milk9111/agilearcher/turn"
)

// DefaultJumpDistance is the jump budget of a freshly spawned actor.
const DefaultJumpDistance = 8

// ActionCost is the energy one confirmed move or jump costs, regardless of
// route length.
const ActionCost = 1

var ErrNoRegion = errors.New("movement: cell is not on a walkable region")

// ActionState is the per-actor movement state.
type ActionState int

const (
	OnGround ActionState = iota
	Moving
	Jumping
	InAir
)

func (s ActionState) String() string {
	return stateFor(s).Name()
}

// Actor is the movement state of one movable entity.
type Actor struct {
	State        ActionState
	Route        []tilemap.Cell
	JumpDistance int
	Region       int
	Cell         tilemap.Cell

	// Tracked actors mirror their region into TileData.ActiveRegion.
	Tracked bool
}

// NewActor places an actor on the ground at cell with no region resolved.
func NewActor(cell tilemap.Cell, jumpDistance int) Actor {
	if jumpDistance <= 0 {
		jumpDistance = DefaultJumpDistance
	}
	return Actor{
		State:        OnGround,
		JumpDistance: jumpDistance,
		Region:       tilemap.NoRegion,
		Cell:         cell,
	}
}

// ResolveRegion looks up the region under the actor's cell. On failure the
// actor keeps NoRegion, which makes every walk check fail closed.
func (a *Actor) ResolveRegion(tiles *tilemap.TileData) error {
	a.setRegion(tiles, tiles.RegionOf(a.Cell))
	if a.Region == tilemap.NoRegion {
		return fmt.Errorf("%w: %s", ErrNoRegion, a.Cell)
	}
	return nil
}

func (a *Actor) setRegion(tiles *tilemap.TileData, region int) {
	a.Region = region
	if a.Tracked && tiles != nil {
		tiles.SetActiveRegion(region)
	}
}

// InFlight reports whether an action is under way and cannot be redirected.
func (a *Actor) InFlight() bool {
	return a.State == Moving || a.State == Jumping
}

// WithinJump reports whether c is inside the actor's jump budget.
func (a *Actor) WithinJump(c tilemap.Cell) bool {
	return JumpDistance(a.Cell, c) <= a.JumpDistance
}

// JumpDistance measures a jump with the Chebyshev metric, so a diagonal
// jump costs the same as a straight one of equal reach.
func JumpDistance(from, to tilemap.Cell) int {
	return max(abs(from.X-to.X), abs(from.Y-to.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Context is the shared per-tick state every movement call reads.
type Context struct {
	Tiles *tilemap.TileData
	Turn  *turn.State
}

// Spawn creates an actor at cell and resolves its region. The actor is
// returned even when the region is unresolved; the error only reports it.
func Spawn(tiles *tilemap.TileData, cell tilemap.Cell, jumpDistance int) (*Actor, error) {
	a := NewActor(cell, jumpDistance)
	return &a, a.ResolveRegion(tiles)
}
