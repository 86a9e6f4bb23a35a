package system

import (
	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/movement"
	"github.com/milk9111/agilearcher/tilemap"
	"github.com/milk9111/agilearcher/turn"
)

// highlightKey is everything a plan depends on. The plan is recomputed only
// when one of these changes.
type highlightKey struct {
	target    tilemap.Cell
	cell      tilemap.Cell
	state     movement.ActionState
	region    int
	jump      int
	turn      turn.Turn
	number    int
	exhausted bool
}

// HighlightSystem shows the destination highlight exactly when confirming
// the tile under the cursor would be accepted.
type HighlightSystem struct {
	ctx    *Context
	key    highlightKey
	cached bool
	plan   movement.Plan
	ok     bool
}

func NewHighlightSystem(ctx *Context) *HighlightSystem {
	return &HighlightSystem{ctx: ctx}
}

func (s *HighlightSystem) Update(w *ecs.World) {
	if w == nil || s.ctx == nil || s.ctx.Tiles == nil {
		return
	}
	he, ok := ecs.First(w, component.HighlightComponent.Kind())
	if !ok {
		return
	}
	highlight, _ := ecs.Get(w, he, component.HighlightComponent.Kind())
	sprite, _ := ecs.Get(w, he, component.SpriteComponent.Kind())

	pe, actor, energy, ok := player(w)
	if !ok {
		hide(highlight, sprite)
		return
	}
	in, _ := ecs.Get(w, pe, component.InputComponent.Kind())
	target, ok := s.ctx.cursorCell(in)
	if !ok {
		hide(highlight, sprite)
		return
	}

	key := highlightKey{
		target:    target,
		cell:      actor.Cell,
		state:     actor.State,
		region:    actor.Region,
		jump:      actor.JumpDistance,
		turn:      s.ctx.Turn.Turn,
		number:    s.ctx.Turn.Number,
		exhausted: energy != nil && energy.Exhausted(),
	}
	if !s.cached || key != s.key {
		s.plan, s.ok = movement.PlanMove(s.ctx.movement(), actor, energy, target)
		s.key = key
		s.cached = true
	}
	if !s.ok {
		hide(highlight, sprite)
		return
	}

	highlight.Cell = target
	highlight.Jump = s.plan.State == movement.Jumping
	highlight.Visible = true
	if sprite != nil {
		sprite.Visible = true
		sprite.Color = highlight.Color
		if highlight.Jump {
			sprite.Color = highlight.JumpColor
		}
	}
	if transform, ok := ecs.Get(w, he, component.TransformComponent.Kind()); ok {
		transform.X, transform.Y = s.ctx.Tiles.WorldPosition(target)
	}
}

// highlightIndicator hides both the logical highlight and its sprite.
type highlightIndicator struct {
	highlight *component.Highlight
	sprite    *component.Sprite
}

func (h highlightIndicator) Hide() { hide(h.highlight, h.sprite) }

func hide(highlight *component.Highlight, sprite *component.Sprite) {
	highlight.Hide()
	if sprite != nil {
		sprite.Visible = false
	}
}
