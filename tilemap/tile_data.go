package tilemap

import (
	"fmt"
	"math"
)

// TileData is the shared, read-mostly world resource built once per level.
// The only field written after load is the active region, and only the
// movement code writes it.
type TileData struct {
	Layout     *Layout
	TileWidth  int
	TileHeight int

	activeRegion int
}

// NewTileData wraps a layout with the pixel size of one tile.
func NewTileData(layout *Layout, tileWidth, tileHeight int) (*TileData, error) {
	if layout == nil || layout.Grid == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidDimensions)
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d", ErrInvalidDimensions, tileWidth, tileHeight)
	}
	return &TileData{
		Layout:       layout,
		TileWidth:    tileWidth,
		TileHeight:   tileHeight,
		activeRegion: NoRegion,
	}, nil
}

func (t *TileData) Grid() *Grid { return t.Layout.Grid }

// Width and Height are in tiles.
func (t *TileData) Width() int  { return t.Layout.Grid.width }
func (t *TileData) Height() int { return t.Layout.Grid.height }

// PixelWidth and PixelHeight are the map dimensions in pixels.
func (t *TileData) PixelWidth() int  { return t.Width() * t.TileWidth }
func (t *TileData) PixelHeight() int { return t.Height() * t.TileHeight }

// WorldPosition returns the bottom-left corner of c on an up-is-positive axis.
func (t *TileData) WorldPosition(c Cell) (x, y float64) {
	x = float64(c.X * t.TileWidth)
	y = float64((t.Height() - c.Y - 1) * t.TileHeight)
	return x, y
}

// CellAtWorld inverts WorldPosition.
func (t *TileData) CellAtWorld(x, y float64) Cell {
	col := int(math.Floor(x / float64(t.TileWidth)))
	row := t.Height() - 1 - int(math.Floor(y/float64(t.TileHeight)))
	return Cell{X: col, Y: row}
}

// ScreenPosition returns the top-left corner of c in y-down pixel space.
func (t *TileData) ScreenPosition(c Cell) (x, y float64) {
	return float64(c.X * t.TileWidth), float64(c.Y * t.TileHeight)
}

// CellAtScreen converts a pointer position (pixels, y down from the map top)
// to a cell. ok is false when the pointer is outside the map.
func (t *TileData) CellAtScreen(px, py int) (c Cell, ok bool) {
	c = Cell{
		X: int(math.Floor(float64(px) / float64(t.TileWidth))),
		Y: int(math.Floor(float64(py) / float64(t.TileHeight))),
	}
	return c, t.Layout.Grid.InBounds(c)
}

// RegionOf returns the region index containing c, or NoRegion.
func (t *TileData) RegionOf(c Cell) int {
	return t.Layout.RegionOf(c)
}

// ActiveRegion is the region the tracked actor currently occupies.
func (t *TileData) ActiveRegion() int {
	return t.activeRegion
}

// SetActiveRegion records the tracked actor's region. NoRegion is allowed.
func (t *TileData) SetActiveRegion(i int) {
	if t.Layout.Region(i) == nil {
		i = NoRegion
	}
	t.activeRegion = i
}
