package component

import (
	"image/color"

	"github.com/milk9111/agilearcher/tilemap"
)

// Highlight marks the tile under the cursor when it is a legal destination.
type Highlight struct {
	Cell      tilemap.Cell
	Jump      bool
	Visible   bool
	Color     color.RGBA
	JumpColor color.RGBA
}

// Hide clears the highlight. It satisfies turn.Indicator.
func (h *Highlight) Hide() {
	if h == nil {
		return
	}
	h.Visible = false
}

var HighlightComponent = NewComponent[Highlight]()
