package universe

import "testing"

func TestToroidalNeighbors(t *testing.T) {
	u := NewSparseUniverse(10, 10)
	got := map[Coordinate]bool{}
	for _, n := range u.Neighbors(Coordinate{Y: 0, X: 0}) {
		got[n] = true
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 distinct neighbors, got %d", len(got))
	}
	for _, want := range []Coordinate{{9, 9}, {9, 0}, {0, 9}, {1, 1}} {
		if !got[want] {
			t.Fatalf("neighbors of (0,0) miss %v", want)
		}
	}
	if got[Coordinate{Y: 0, X: 0}] {
		t.Fatal("a cell must not be its own neighbor")
	}
}

func TestSetDefaultRemovesEntry(t *testing.T) {
	u := NewSparseUniverse(10, 10)
	c := Coordinate{Y: 3, X: 4}
	u.Set(c, LifeAlive)
	if u.ActiveCells() != 1 || u.Get(c) != LifeAlive {
		t.Fatalf("cell not stored: count=%d state=%d", u.ActiveCells(), u.Get(c))
	}
	u.Set(c, StateDefault)
	if u.ActiveCells() != 0 {
		t.Fatalf("writing the default state must remove the entry, count=%d", u.ActiveCells())
	}
	if u.Get(c) != StateDefault {
		t.Fatalf("removed cell reads %d", u.Get(c))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	u := NewSparseUniverse(5, 5)
	u.Set(Coordinate{Y: 1, X: 1}, WireworldHead)
	c := u.Clone()
	c.Set(Coordinate{Y: 2, X: 2}, WireworldWire)
	if u.ActiveCells() != 1 {
		t.Fatalf("mutating a clone changed the original, count=%d", u.ActiveCells())
	}
	if !u.Equal(u.Clone()) {
		t.Fatal("a fresh clone must equal its source")
	}
}

func TestEqualComparesStates(t *testing.T) {
	a := NewSparseUniverse(5, 5)
	b := NewSparseUniverse(5, 5)
	a.Set(Coordinate{Y: 1, X: 1}, WireworldHead)
	b.Set(Coordinate{Y: 1, X: 1}, WireworldTail)
	if a.Equal(b) {
		t.Fatal("universes with different states at the same coordinate must differ")
	}
}
