package ecs

import (
	"slices"
	"testing"
)

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestSpawn(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(testComp{val: 42})
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after Spawn")
	}
	c, ok := w.Get(id, ComponentType(1)).(testComp)
	if !ok || c.val != 42 {
		t.Fatalf("expected testComp{42}, got %#v", w.Get(id, ComponentType(1)))
	}
}

func TestAddReplacesComponent(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(testComp{val: 1})
	w.Add(id, testComp{val: 2})
	if got := w.Get(id, ComponentType(1)).(testComp).val; got != 2 {
		t.Fatalf("expected val=2, got %d", got)
	}
}

func TestAddToUnknownEntityIsNoop(t *testing.T) {
	w := NewWorld()
	w.Add(EntityID(99), testComp{})
	if w.Has(EntityID(99), ComponentType(1)) {
		t.Fatal("component should not attach to an entity that was never spawned")
	}
}

func TestDeleteIsDeferredUntilMaintain(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(testComp{val: 7})
	w.Delete(id)
	w.Delete(id)

	if !w.Alive(id) {
		t.Fatal("entity should stay alive until Maintain")
	}
	if n := w.Maintain(); n != 1 {
		t.Fatalf("Maintain removed %d entities, want 1", n)
	}
	if w.Alive(id) {
		t.Fatal("entity should be gone after Maintain")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after Maintain")
	}
	if n := w.Maintain(); n != 0 {
		t.Fatalf("second Maintain removed %d, want 0", n)
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()
	both := w.Spawn(testComp{}, otherComp{})
	w.Spawn(testComp{})
	w.Spawn(otherComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 || results[0] != both {
		t.Fatalf("expected [%v], got %v", both, results)
	}
}

func TestQuerySortedAndExcludesDeleted(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := range 5 {
		ids = append(ids, w.Spawn(testComp{val: i}))
	}
	w.Delete(ids[2])
	w.Maintain()

	got := w.Query(ComponentType(1))
	want := []EntityID{ids[0], ids[1], ids[3], ids[4]}
	if !slices.Equal(got, want) {
		t.Fatalf("Query = %v, want %v", got, want)
	}
	if w.Query() != nil {
		t.Fatal("Query with no types should return nil")
	}
}
