package entity

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/movement"
	"github.com/milk9111/agilearcher/prefabs"
	"github.com/milk9111/agilearcher/tilemap"
	"github.com/milk9111/agilearcher/turn"
)

var defaultPlayerColor = color.RGBA{R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff}

// NewPlayerAt spawns the tracked player actor on cell. A cell outside every
// region is only a placement warning: the player is kept and cannot walk
// until it jumps somewhere.
func NewPlayerAt(w *ecs.World, tiles *tilemap.TileData, cell tilemap.Cell, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.PlayerSpec{}
	}
	if !tiles.Grid().InBounds(cell) {
		return 0, fmt.Errorf("player: spawn %s: %w", cell, tilemap.ErrOutOfBounds)
	}

	e := ecs.CreateEntity(w)

	actor := movement.NewActor(cell, spec.JumpDistance)
	actor.Tracked = true
	if err := actor.ResolveRegion(tiles); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"entity": e.String(),
			"cell":   cell.String(),
		}).WithError(err).Warn("player placed outside every region")
	}

	base := spec.BaseEnergy
	if base <= 0 {
		base = turn.DefaultBaseEnergy
	}
	energy := turn.NewEnergy(base)

	width, height := spec.Sprite.Width, spec.Sprite.Height
	if width <= 0 {
		width = float64(tiles.TileWidth)
	}
	if height <= 0 {
		height = float64(tiles.TileHeight)
	}

	x, y := tiles.WorldPosition(cell)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.MoverComponent.Kind(), &actor); err != nil {
		return 0, fmt.Errorf("player: add mover: %w", err)
	}
	if err := ecs.Add(w, e, component.EnergyComponent.Kind(), &energy); err != nil {
		return 0, fmt.Errorf("player: add energy: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:   width,
		Height:  height,
		Color:   spec.Sprite.Color.OrDefault(defaultPlayerColor),
		Visible: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	return e, nil
}
