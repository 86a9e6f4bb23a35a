package component

// Input stores per-frame pointer and key state written by the front end.
type Input struct {
	CursorX      int
	CursorY      int
	CursorInside bool
	Confirm      bool
	EndTurn      bool
}

var InputComponent = NewComponent[Input]()
