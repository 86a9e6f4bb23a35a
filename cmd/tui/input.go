package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/agilearcher/ecs/component"
)

// termInput folds tcell events into the per-tick input snapshot. Clicks and
// key presses latch until the next Poll so a fast click is never lost
// between ticks.
type termInput struct {
	view    termView
	cursorX int
	cursorY int
	inside  bool
	held    bool
	confirm bool
	endTurn bool
}

// handle applies one event and reports whether the player asked to quit.
func (i *termInput) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'e' || ev.Rune() == 'E'):
			i.endTurn = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		i.cursorX, i.cursorY, i.inside = i.view.cursorPixels(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !i.held {
			i.confirm = true
		}
		i.held = pressed
	}
	return false
}

func (i *termInput) Poll() component.Input {
	in := component.Input{
		CursorX:      i.cursorX,
		CursorY:      i.cursorY,
		CursorInside: i.inside,
		Confirm:      i.confirm,
		EndTurn:      i.endTurn,
	}
	i.confirm = false
	i.endTurn = false
	return in
}
