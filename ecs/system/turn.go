package system

import (
	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/turn"
)

// TurnSystem ends the player turn once the player's energy is spent. It
// runs after every system that can change energy in the tick.
type TurnSystem struct {
	ctx *Context
}

func NewTurnSystem(ctx *Context) *TurnSystem {
	return &TurnSystem{ctx: ctx}
}

func (s *TurnSystem) Update(w *ecs.World) {
	if w == nil || s.ctx == nil {
		return
	}
	pe, _, energy, ok := player(w)
	if !ok || energy == nil {
		return
	}

	if in, ok := ecs.Get(w, pe, component.InputComponent.Kind()); ok && in.EndTurn {
		if s.ctx.Turns.EndPlayerTurn(s.ctx.Turn, energy) {
			logger.Log.WithField("turn", s.ctx.Turn.Number).Debug("player ended turn")
		}
	}

	var indicator turn.Indicator
	if he, ok := ecs.First(w, component.HighlightComponent.Kind()); ok {
		highlight, _ := ecs.Get(w, he, component.HighlightComponent.Kind())
		sprite, _ := ecs.Get(w, he, component.SpriteComponent.Kind())
		indicator = highlightIndicator{highlight: highlight, sprite: sprite}
	}

	if !s.ctx.Turns.Observe(s.ctx.Turn, energy, indicator) {
		return
	}
	w.Events().Push(ecs.Event{Type: EventTurnChanged, Data: *s.ctx.Turn})
}
