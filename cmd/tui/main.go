// Command tui plays a level in the terminal with the same systems as the
// windowed game. Click a tile to move or jump, press e to end the turn.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/entity"
	"github.com/milk9111/agilearcher/ecs/system"
	"github.com/milk9111/agilearcher/levels"
	"github.com/milk9111/agilearcher/logger"
)

func main() {
	levelName := flag.String("level", levels.Default, "level file (embedded name or path on disk)")
	logPath := flag.String("log", "", "write logs to this file (discarded when empty)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*levelName, *logPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}

func run(levelName, logPath string, debug bool) error {
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger.Init(out)
	logger.SetDebug(debug)

	lvl, err := levels.Load(levelName)
	if err != nil {
		return err
	}
	specs, err := entity.LoadPrefabs()
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	tiles, err := entity.PopulateWorld(w, lvl, specs)
	if err != nil {
		return err
	}

	view := newTermView(tiles)
	input := &termInput{view: view}
	ctx := system.NewContext(tiles)
	sched, err := system.NewGameScheduler(ctx, input, specs.EnemyTurn, nil)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go forwardEvents(screen, events, done)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if input.handle(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case <-ticker.C:
			sched.Update(w)
			for _, evt := range w.Events().Drain() {
				logger.Log.WithField("data", evt.Data).Debug(evt.Type)
			}
			view.draw(screen, w, ctx)
		}
	}
}

// forwardEvents feeds screen events to the tick loop until the screen is
// finalized or done is closed.
func forwardEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
