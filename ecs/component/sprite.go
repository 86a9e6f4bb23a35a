package component

import "image/color"

// Sprite is a flat-colour rectangle drawn at the entity's Transform.
type Sprite struct {
	Width   float64
	Height  float64
	Color   color.RGBA
	Visible bool
}

var SpriteComponent = NewComponent[Sprite]()
