package component

import (
	"image/color"

	"github.com/milk9111/agilearcher/turn"
)

var EnergyComponent = NewComponent[turn.Energy]()

// EnergyBar is the HUD bar scaled to the player's remaining energy.
type EnergyBar struct {
	MaxWidth   float64
	Width      float64
	Height     float64
	Background color.RGBA
}

var EnergyBarComponent = NewComponent[EnergyBar]()
