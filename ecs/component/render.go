package component

// RenderLayer orders drawing. Lower indices draw first; ties keep entity
// order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

// ScreenSpace tags HUD entities. Their Transform is in window pixels with y
// growing down, and they ignore the map offset.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()

// LevelBounds is the loaded map's size in pixels. Exactly one entity carries
// it per world.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
