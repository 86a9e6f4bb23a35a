// Package levels loads tile maps authored as JSON.
package levels

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/agilearcher/tilemap"
)

// CollisionLayer is the layer whose non-zero entries are unpassable.
const CollisionLayer = "collision"

var (
	ErrInvalidSize      = errors.New("levels: invalid map or tile size")
	ErrMalformedLayer   = errors.New("levels: malformed layer")
	ErrNoCollisionLayer = errors.New("levels: no collision layer")
	ErrSpawnOutOfBounds = errors.New("levels: spawn outside the map")
)

type Level struct {
	Width      int         `json:"width" jsonschema:"minimum=1"`
	Height     int         `json:"height" jsonschema:"minimum=1"`
	TileWidth  int         `json:"tile_width" jsonschema:"minimum=1"`
	TileHeight int         `json:"tile_height" jsonschema:"minimum=1"`
	Layers     [][]int     `json:"layers" jsonschema:"description=Row-major tile values, one slice per layer"`
	LayerMeta  []LayerMeta `json:"layer_meta,omitempty"`
	SpawnX     int         `json:"spawn_x"`
	SpawnY     int         `json:"spawn_y" jsonschema:"description=Row counted from the top of the map"`
}

type LayerMeta struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics"`
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 || l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("%w: %dx%d tiles of %dx%d px", ErrInvalidSize, l.Width, l.Height, l.TileWidth, l.TileHeight)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d entries, want %d", ErrMalformedLayer, i, len(layer), l.Width*l.Height)
		}
	}
	if _, ok := l.collisionIndex(); !ok {
		return ErrNoCollisionLayer
	}
	if l.SpawnX < 0 || l.SpawnX >= l.Width || l.SpawnY < 0 || l.SpawnY >= l.Height {
		return fmt.Errorf("%w: (%d,%d)", ErrSpawnOutOfBounds, l.SpawnX, l.SpawnY)
	}
	return nil
}

// collisionIndex picks the layer named "collision", falling back to the
// first physics layer.
func (l *Level) collisionIndex() (int, bool) {
	fallback := -1
	for i, meta := range l.LayerMeta {
		if i >= len(l.Layers) {
			break
		}
		if meta.Name == CollisionLayer {
			return i, true
		}
		if meta.Physics && fallback < 0 {
			fallback = i
		}
	}
	return fallback, fallback >= 0
}

// CollisionCells returns the unpassable cells in row-major order.
func (l *Level) CollisionCells() []tilemap.Cell {
	idx, ok := l.collisionIndex()
	if !ok {
		return nil
	}
	var cells []tilemap.Cell
	for i, v := range l.Layers[idx] {
		if v != 0 {
			cells = append(cells, tilemap.Cell{X: i % l.Width, Y: i / l.Width})
		}
	}
	return cells
}

func (l *Level) Spawn() tilemap.Cell {
	return tilemap.Cell{X: l.SpawnX, Y: l.SpawnY}
}

// TileData builds the region layout and the shared tile resource.
func (l *Level) TileData() (*tilemap.TileData, error) {
	layout, err := tilemap.BuildLayout(l.Width, l.Height, l.CollisionCells())
	if err != nil {
		return nil, err
	}
	return tilemap.NewTileData(layout, l.TileWidth, l.TileHeight)
}
