package system

import (
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/movement"
	"github.com/milk9111/agilearcher/prefabs"
)

// ChangeSource reports edited prefab paths; prefabs.Watcher implements it.
type ChangeSource interface {
	Poll() []string
}

// PrefabReloadSystem re-applies edited prefab specs to live entities.
// Editors often write a file several times per save; a change whose disk
// mod time was already applied is skipped.
type PrefabReloadSystem struct {
	source  ChangeSource
	enemy   *EnemyTurnSystem
	applied map[string]time.Time
}

func NewPrefabReloadSystem(source ChangeSource, enemy *EnemyTurnSystem) *PrefabReloadSystem {
	return &PrefabReloadSystem{source: source, enemy: enemy, applied: make(map[string]time.Time)}
}

func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}
	for _, path := range s.source.Poll() {
		name := filepath.Base(path)
		var reload func() error
		switch {
		case name == prefabs.PlayerSpecFile:
			reload = func() error { return s.reloadPlayer(w) }
		case name == prefabs.EnemyTurnSpecFile:
			reload = s.reloadEnemyTurn
		case filepath.Ext(name) == ".tengo":
			reload = s.reloadEnemyTurn
			name = "scripts/" + name
		default:
			continue
		}
		if !s.changed(name) {
			continue
		}
		err := reload()
		if err != nil {
			logger.Log.WithField("file", name).WithError(err).Warn("prefab reload failed")
			continue
		}
		logger.Log.WithField("file", name).Info("prefab reloaded")
		w.Events().Push(ecs.Event{Type: EventPrefabReloaded, Data: name})
	}
}

func (s *PrefabReloadSystem) changed(name string) bool {
	mod, ok := prefabs.ModTime(name)
	if !ok {
		return true
	}
	if last, seen := s.applied[name]; seen && !mod.After(last) {
		return false
	}
	s.applied[name] = mod
	return true
}

func (s *PrefabReloadSystem) reloadPlayer(w *ecs.World) error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.MoverComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, actor *movement.Actor) {
		if spec.JumpDistance > 0 {
			actor.JumpDistance = spec.JumpDistance
		}
		if energy, ok := ecs.Get(w, e, component.EnergyComponent.Kind()); ok && spec.BaseEnergy > 0 {
			energy.SetBase(spec.BaseEnergy)
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if spec.Sprite.Width > 0 {
				sprite.Width = spec.Sprite.Width
			}
			if spec.Sprite.Height > 0 {
				sprite.Height = spec.Sprite.Height
			}
			sprite.Color = spec.Sprite.Color.OrDefault(sprite.Color)
		}
		logger.Log.WithFields(logrus.Fields{
			"entity":        e.String(),
			"jump_distance": actor.JumpDistance,
			"base_energy":   spec.BaseEnergy,
		}).Debug("player spec applied")
	})
	return nil
}

func (s *PrefabReloadSystem) reloadEnemyTurn() error {
	if s.enemy == nil {
		return nil
	}
	spec, err := prefabs.LoadEnemyTurnSpec()
	if err != nil {
		return err
	}
	return s.enemy.Reload(spec)
}
