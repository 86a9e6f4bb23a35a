package entity

import (
	"fmt"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/levels"
	"github.com/milk9111/agilearcher/tilemap"
)

// LoadLevelToWorld builds the tile resource for lvl and records its pixel
// bounds on a level entity.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (*tilemap.TileData, error) {
	tiles, err := lvl.TileData()
	if err != nil {
		return nil, fmt.Errorf("level: build tiles: %w", err)
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  float64(tiles.PixelWidth()),
		Height: float64(tiles.PixelHeight()),
	}); err != nil {
		return nil, fmt.Errorf("level: add bounds: %w", err)
	}
	return tiles, nil
}

// LevelSize returns the loaded map's pixel size, or ok false before a level
// is in the world.
func LevelSize(w *ecs.World) (width, height int, ok bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	bounds, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return int(bounds.Width), int(bounds.Height), true
}
