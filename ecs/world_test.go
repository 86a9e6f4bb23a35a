package ecs

import (
	"errors"
	"slices"
	"testing"

	"github.com/milk9111/agilearcher/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second destroy should report false")
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() || fresh == old {
		t.Fatalf("expected id reuse with a new generation, got %s after %s", fresh, old)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("components must not survive destroy")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("Add on stale handle: err = %v", err)
	}
}

func TestComponentAccess(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e := CreateEntity(w)

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"add_int", func() error { return Add(w, e, ints.Kind(), intPtr(10)) }, nil},
		{"nil_value", func() error { return Add[string](w, e, strs.Kind(), nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.run(); !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}

	v, ok := Get(w, e, ints.Kind())
	if !ok || *v != 10 {
		t.Fatalf("Get = %v ok=%v, want 10", v, ok)
	}
	*v = 11
	if again, _ := Get(w, e, ints.Kind()); *again != 11 {
		t.Fatalf("Get must return the stored pointer")
	}
	if Has(w, e, strs.Kind()) {
		t.Fatalf("string component should be absent")
	}
	if !Remove(w, e, ints.Kind()) || Remove(w, e, ints.Kind()) {
		t.Fatalf("Remove should succeed exactly once")
	}
}

func TestQueries(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	for _, add := range []struct {
		e    Entity
		kind component.ComponentKind[int]
	}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}, {e3, kc}} {
		if err := Add(w, add.e, add.kind, intPtr(int(add.e.id()))); err != nil {
			t.Fatal(err)
		}
	}

	var one []Entity
	ForEach(w, ka, func(e Entity, _ *int) { one = append(one, e) })
	if !slices.Contains(one, e1) || !slices.Contains(one, e2) || slices.Contains(one, e3) {
		t.Fatalf("ForEach = %v", one)
	}

	var two []Entity
	ForEach2(w, kb, kc, func(e Entity, _ *int, _ *int) { two = append(two, e) })
	if len(two) != 2 {
		t.Fatalf("ForEach2 = %v, want e2 and e3", two)
	}

	var three []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { three = append(three, e) })
	if len(three) != 1 || three[0] != e2 {
		t.Fatalf("ForEach3 = %v, want only e2", three)
	}

	if first, ok := First(w, kb); !ok || (first != e2 && first != e3) {
		t.Fatalf("First = %s ok=%v", first, ok)
	}

	DestroyEntity(w, e2)
	three = nil
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { three = append(three, e) })
	if len(three) != 0 {
		t.Fatalf("dead entities must not be visited, got %v", three)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), kind, intPtr(i))
	}
	visited := 0
	ForEach(w, kind, func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 || len(Entities(w)) != 0 {
		t.Fatalf("visited=%d alive=%d", visited, len(Entities(w)))
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"input", &log}, nil, recordSystem{"movement", &log})
	s.Add(recordSystem{"turn", &log})
	s.Update(NewWorld())
	if !slices.Equal(log, []string{"input", "movement", "turn"}) {
		t.Fatalf("order = %v", log)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("nil systems must be skipped")
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b", Data: 2})
	if w.Events().Len() != 2 {
		t.Fatalf("Len = %d", w.Events().Len())
	}
	got := w.Events().Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Data != 2 {
		t.Fatalf("Drain = %v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("queue should be empty after Drain")
	}
}
