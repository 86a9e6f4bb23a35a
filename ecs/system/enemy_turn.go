package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/logger"
	"github.com/milk9111/agilearcher/prefabs"
	"github.com/milk9111/agilearcher/turn"
)

// EnemyTurnSystem resolves the enemy side with a tengo script and hands the
// turn back to the player. The script sees frame, think_frames and
// turn_number and sets done when the enemy side has finished.
type EnemyTurnSystem struct {
	ctx      *Context
	spec     prefabs.EnemyTurnSpec
	compiled *tengo.Compiled
	frame    int
}

func NewEnemyTurnSystem(ctx *Context, spec *prefabs.EnemyTurnSpec) (*EnemyTurnSystem, error) {
	s := &EnemyTurnSystem{ctx: ctx}
	if err := s.Reload(spec); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the script. On failure the previous script stays active.
func (s *EnemyTurnSystem) Reload(spec *prefabs.EnemyTurnSpec) error {
	if spec == nil {
		return fmt.Errorf("enemy turn: nil spec")
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return fmt.Errorf("enemy turn: load %s: %w", spec.Script, err)
	}

	script := tengo.NewScript(src)
	if err := declareGlobals(script, map[string]any{
		"frame":        0,
		"think_frames": spec.ThinkFrames,
		"turn_number":  0,
	}); err != nil {
		return fmt.Errorf("enemy turn: %s: %w", spec.Script, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("enemy turn: compile %s: %w", spec.Script, err)
	}
	s.compiled = compiled
	s.spec = *spec
	return nil
}

func (s *EnemyTurnSystem) Update(w *ecs.World) {
	if w == nil || s.ctx == nil || s.ctx.Turn == nil {
		return
	}
	if s.ctx.Turn.Turn != turn.Enemy {
		s.frame = 0
		return
	}

	s.frame++
	done, err := s.run()
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"script": s.spec.Script,
			"frame":  s.frame,
		}).WithError(err).Error("enemy turn script failed; ending enemy turn")
		done = true
	}
	if !done {
		return
	}

	_, _, energy, _ := player(w)
	if !s.ctx.Turns.BeginPlayerTurn(s.ctx.Turn, energy) {
		return
	}
	ecs.ForEach(w, component.EnergyComponent.Kind(), func(_ ecs.Entity, e *turn.Energy) {
		e.Reset()
	})
	s.frame = 0
	w.Events().Push(ecs.Event{Type: EventTurnChanged, Data: *s.ctx.Turn})
}

func declareGlobals(script *tengo.Script, globals map[string]any) error {
	for name, value := range globals {
		if err := script.Add(name, value); err != nil {
			return fmt.Errorf("declare %s: %w", name, err)
		}
	}
	return nil
}

func (s *EnemyTurnSystem) run() (bool, error) {
	if s.compiled == nil {
		return false, fmt.Errorf("no compiled script")
	}
	if err := s.compiled.Set("frame", s.frame); err != nil {
		return false, err
	}
	if err := s.compiled.Set("think_frames", s.spec.ThinkFrames); err != nil {
		return false, err
	}
	if err := s.compiled.Set("turn_number", s.ctx.Turn.Number); err != nil {
		return false, err
	}
	if err := s.compiled.Run(); err != nil {
		return false, err
	}
	if !s.compiled.IsDefined("done") {
		return false, fmt.Errorf("script does not define done")
	}
	return s.compiled.Get("done").Bool(), nil
}
