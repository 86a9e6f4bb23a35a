package system

import (
	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
)

// EnergyUISystem scales the energy bar to the player's remaining energy.
type EnergyUISystem struct{}

func NewEnergyUISystem() *EnergyUISystem { return &EnergyUISystem{} }

func (s *EnergyUISystem) Update(w *ecs.World) {
	_, _, energy, ok := player(w)
	if !ok || energy == nil {
		return
	}
	fraction := energy.Fraction()

	ecs.ForEach(w, component.EnergyBarComponent.Kind(), func(e ecs.Entity, bar *component.EnergyBar) {
		bar.Width = bar.MaxWidth * fraction
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Width = bar.Width
		}
	})
}
