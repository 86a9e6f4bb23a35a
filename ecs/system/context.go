package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/movement"
	"github.com/milk9111/agilearcher/tilemap"
	"github.com/milk9111/agilearcher/turn"
)

// Event types pushed onto the world queue.
const (
	EventActionConfirmed = "action_confirmed"
	EventActorArrived    = "actor_arrived"
	EventTurnChanged     = "turn_changed"
	EventPrefabReloaded  = "prefab_reloaded"
)

// Context is the shared state every system reads: the tile resource and
// the turn. It is created once per level and handed to each system.
type Context struct {
	Tiles *tilemap.TileData
	Turn  *turn.State
	Turns *turn.Manager
}

// NewContext starts the first player turn. Every turn change is logged
// through the manager's hooks.
func NewContext(tiles *tilemap.TileData) *Context {
	return &Context{
		Tiles: tiles,
		Turn:  turn.NewState(),
		Turns: &turn.Manager{OnEnemyTurn: logTurn, OnPlayerTurn: logTurn},
	}
}

func logTurn(s *turn.State) {
	logger.Log.WithFields(logrus.Fields{
		"turn":   s.Turn.String(),
		"number": s.Number,
	}).Info("turn changed")
}

func (c *Context) movement() movement.Context {
	return movement.Context{Tiles: c.Tiles, Turn: c.Turn}
}

// player looks up the tracked player and its movement state.
func player(w *ecs.World) (ecs.Entity, *movement.Actor, *turn.Energy, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	actor, ok := ecs.Get(w, e, component.MoverComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	energy, _ := ecs.Get(w, e, component.EnergyComponent.Kind())
	return e, actor, energy, true
}

// cursorCell maps the pointer to a tile, reporting false when it is off the map.
func (c *Context) cursorCell(in *component.Input) (tilemap.Cell, bool) {
	if in == nil || !in.CursorInside || c.Tiles == nil {
		return tilemap.Cell{}, false
	}
	return c.Tiles.CellAtScreen(in.CursorX, in.CursorY)
}
