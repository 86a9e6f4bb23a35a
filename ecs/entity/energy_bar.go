package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/prefabs"
)

const (
	defaultEnergyBarWidth  = 150.0
	defaultEnergyBarHeight = 12.0
	energyBarPadding       = 12.0
)

var defaultEnergyBarColor = color.RGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}

// NewEnergyBar creates the HUD bar. EnergyUISystem sizes it each frame.
func NewEnergyBar(w *ecs.World, spec *prefabs.EnergyBarSpec) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.EnergyBarSpec{Transform: prefabs.TransformSpec{X: energyBarPadding, Y: energyBarPadding}}
	}
	maxWidth := spec.MaxWidth
	if maxWidth <= 0 {
		maxWidth = defaultEnergyBarWidth
	}
	height := spec.Sprite.Height
	if height <= 0 {
		height = defaultEnergyBarHeight
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnergyBarComponent.Kind(), &component.EnergyBar{
		MaxWidth:   maxWidth,
		Width:      maxWidth,
		Height:     height,
		Background: spec.Background.OrDefault(color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
	}); err != nil {
		return 0, fmt.Errorf("energy bar: add bar: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("energy bar: add screen-space: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.Transform.X, Y: spec.Transform.Y}); err != nil {
		return 0, fmt.Errorf("energy bar: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:   maxWidth,
		Height:  height,
		Color:   spec.Sprite.Color.OrDefault(defaultEnergyBarColor),
		Visible: true,
	}); err != nil {
		return 0, fmt.Errorf("energy bar: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("energy bar: add render layer: %w", err)
	}
	return e, nil
}
