package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/entity"
	"github.com/milk9111/agilearcher/ecs/system"
	"github.com/milk9111/agilearcher/levels"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/prefabs"
)

type Game struct {
	world     *ecs.World
	ctx       *system.Context
	scheduler *ecs.Scheduler
	renderer  *renderer
	watcher   *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}

	specs, err := entity.LoadPrefabs()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	tiles, err := entity.PopulateWorld(world, lvl, specs)
	if err != nil {
		return nil, err
	}

	g := &Game{world: world, ctx: system.NewContext(tiles)}

	var changes system.ChangeSource
	if watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"))
		if err != nil {
			logger.Log.WithError(err).Warn("prefab hot reload disabled")
		} else {
			changes = g.watcher
		}
	}

	g.scheduler, err = system.NewGameScheduler(g.ctx, newEbitenInput(tiles), specs.EnemyTurn, changes)
	if err != nil {
		return nil, err
	}
	g.renderer, err = newRenderer(tiles, debug)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"level":   levelName,
		"regions": len(tiles.Layout.Regions),
		"spawn":   lvl.Spawn().String(),
	}).Info("level loaded")
	return g, nil
}

func (g *Game) Update() error {
	g.scheduler.Update(g.world)
	for _, evt := range g.world.Events().Drain() {
		logger.Log.WithField("data", evt.Data).Debug(evt.Type)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.ctx)
}

// Layout keeps one logical pixel per map pixel; the window scale does the rest.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h, ok := entity.LevelSize(g.world); ok {
		return w, h
	}
	return g.ctx.Tiles.PixelWidth(), g.ctx.Tiles.PixelHeight()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
