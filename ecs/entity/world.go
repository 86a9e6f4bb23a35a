package entity

import (
	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/levels"
	"github.com/milk9111/agilearcher/prefabs"
	"github.com/milk9111/agilearcher/tilemap"
)

// Prefabs is the set of specs a playable world is built from.
type Prefabs struct {
	Player    *prefabs.PlayerSpec
	Highlight *prefabs.HighlightSpec
	EnergyBar *prefabs.EnergyBarSpec
	EnemyTurn *prefabs.EnemyTurnSpec
}

func LoadPrefabs() (*Prefabs, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	highlight, err := prefabs.LoadHighlightSpec()
	if err != nil {
		return nil, err
	}
	bar, err := prefabs.LoadEnergyBarSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := prefabs.LoadEnemyTurnSpec()
	if err != nil {
		return nil, err
	}
	return &Prefabs{Player: player, Highlight: highlight, EnergyBar: bar, EnemyTurn: enemy}, nil
}

// PopulateWorld loads lvl and spawns the player, the highlight and the
// energy bar.
func PopulateWorld(w *ecs.World, lvl *levels.Level, p *Prefabs) (*tilemap.TileData, error) {
	if p == nil {
		p = &Prefabs{}
	}
	tiles, err := LoadLevelToWorld(w, lvl)
	if err != nil {
		return nil, err
	}
	if _, err := NewPlayerAt(w, tiles, lvl.Spawn(), p.Player); err != nil {
		return nil, err
	}
	if _, err := NewHighlight(w, tiles, p.Highlight); err != nil {
		return nil, err
	}
	if _, err := NewEnergyBar(w, p.EnergyBar); err != nil {
		return nil, err
	}
	return tiles, nil
}
