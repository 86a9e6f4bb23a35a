package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/movement"
)

// MovementSystem runs the movement state machine of every actor and keeps
// its Transform on the tile it occupies.
type MovementSystem struct {
	ctx *Context
}

func NewMovementSystem(ctx *Context) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || s.ctx == nil || s.ctx.Tiles == nil {
		return
	}
	mctx := s.ctx.movement()

	ecs.ForEach2(w, component.MoverComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, actor *movement.Actor, transform *component.Transform) {
		energy, _ := ecs.Get(w, e, component.EnergyComponent.Kind())

		var intent movement.Intent
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			intent.Target, intent.HasTarget = s.ctx.cursorCell(in)
			intent.Confirm = in.Confirm
		}

		switch step := movement.Update(mctx, actor, energy, intent); step {
		case movement.StepConfirmed:
			logger.Log.WithFields(logrus.Fields{
				"entity": e.String(),
				"state":  actor.State.String(),
				"target": intent.Target.String(),
				"route":  len(actor.Route),
			}).Debug("action confirmed")
			w.Events().Push(ecs.Event{Type: EventActionConfirmed, Data: e})
		case movement.StepArrived:
			w.Events().Push(ecs.Event{Type: EventActorArrived, Data: e})
		}

		transform.X, transform.Y = s.ctx.Tiles.WorldPosition(actor.Cell)
	})
}
