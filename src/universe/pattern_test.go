package universe

import (
	"errors"
	"testing"
)

func TestStampWrapsAroundEdges(t *testing.T) {
	u := NewSparseUniverse(10, 10)
	blinker := Template{Name: "Blinker", Coordinates: [][]int{{0, -1}, {0, 0}, {0, 1}}}
	Stamp(u, blinker, Coordinate{Y: 0, X: 0}, LifeAlive)

	assertCells(t, u, map[Coordinate]CellState{
		{0, 9}: LifeAlive,
		{0, 0}: LifeAlive,
		{0, 1}: LifeAlive,
	})
}

func TestStampUsesActiveState(t *testing.T) {
	u := NewSparseUniverse(10, 10)
	wire := Template{Name: "Straight Wire", Coordinates: [][]int{{0, 0}, {0, 1}}}
	Stamp(u, wire, Coordinate{Y: 2, X: 2}, WireworldRule{}.ActiveState())
	if u.Get(Coordinate{2, 2}) != WireworldWire {
		t.Fatalf("stamped state=%d, expected wire", u.Get(Coordinate{2, 2}))
	}
}

func TestStampUnknownPattern(t *testing.T) {
	s := NewSimulation(LifeRule{}, newTestOptions(), nil)
	defer s.Close()

	err := s.StampTemplate("no-such-pattern", Coordinate{Y: 5, X: 5})
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	if s.Snapshot().ActiveCells() != 0 {
		t.Fatal("a failed stamp must leave the universe untouched")
	}
}

func TestRuleTemplatesPreloaded(t *testing.T) {
	s := NewSimulation(LifeRule{}, newTestOptions(), nil)
	defer s.Close()

	names := s.TemplateNames()
	if len(names) == 0 {
		t.Fatal("life templates must be preloaded")
	}
	if names[1] != "Blinker" {
		t.Fatalf("expected Blinker second in the library, got %q", names[1])
	}
	if err := s.StampTemplate("Blinker", Coordinate{Y: 5, X: 5}); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	if s.Snapshot().ActiveCells() != 3 {
		t.Fatalf("blinker stamps 3 cells, got %d", s.Snapshot().ActiveCells())
	}
}

func newTestOptions() *Options {
	o := DefaultOptions
	o.Interval = 0
	return &o
}
