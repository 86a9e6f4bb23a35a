package system

import (
	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/prefabs"
)

// NewGameScheduler wires the systems in tick order. Energy can only change
// in input and movement, so TurnSystem sees the final energy of the tick.
// changes may be nil when hot reload is off.
func NewGameScheduler(ctx *Context, input InputSource, enemy *prefabs.EnemyTurnSpec, changes ChangeSource) (*ecs.Scheduler, error) {
	enemyTurn, err := NewEnemyTurnSystem(ctx, enemy)
	if err != nil {
		return nil, err
	}
	s := ecs.NewScheduler(
		NewInputSystem(input),
		NewMovementSystem(ctx),
		NewHighlightSystem(ctx),
		NewTurnSystem(ctx),
		enemyTurn,
		NewEnergyUISystem(),
	)
	if changes != nil {
		s.Add(NewPrefabReloadSystem(changes, enemyTurn))
	}
	return s, nil
}
