package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/agilearcher/levels"
	"github.com/milk9111/agilearcher/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and region overlay")
	levelName := flag.String("level", levels.Default, "level file (embedded name or path on disk)")
	scale := flag.Int("scale", 2, "window scale factor")
	watch := flag.Bool("watch", false, "hot reload prefab specs from ./prefabs")
	flag.Parse()

	logger.Init(os.Stdout)
	logger.SetDebug(*debug)

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if *scale < 1 {
		*scale = 1
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w**scale, h**scale)
	ebiten.SetWindowTitle("agile archer")

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("run game")
	}
}
