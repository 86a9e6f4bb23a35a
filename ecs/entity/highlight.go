package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/prefabs"
	"github.com/milk9111/agilearcher/tilemap"
)

var (
	defaultWalkHighlight = color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0x80}
	defaultJumpHighlight = color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0x80}
)

// NewHighlight creates the hidden destination highlight, one tile in size.
func NewHighlight(w *ecs.World, tiles *tilemap.TileData, spec *prefabs.HighlightSpec) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.HighlightSpec{}
	}
	walk := spec.Sprite.Color.OrDefault(defaultWalkHighlight)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HighlightComponent.Kind(), &component.Highlight{
		Color:     walk,
		JumpColor: spec.JumpColor.OrDefault(defaultJumpHighlight),
	}); err != nil {
		return 0, fmt.Errorf("highlight: add highlight: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("highlight: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  float64(tiles.TileWidth),
		Height: float64(tiles.TileHeight),
		Color:  walk,
	}); err != nil {
		return 0, fmt.Errorf("highlight: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("highlight: add render layer: %w", err)
	}
	return e, nil
}
