package universe

import "testing"

func TestWireHeadGeneration(t *testing.T) {
	neighbors := []Coordinate{{4, 4}, {4, 5}, {4, 6}, {5, 4}}
	for heads := 0; heads <= 4; heads++ {
		u := NewSparseUniverse(20, 20)
		u.Set(Coordinate{5, 5}, WireworldWire)
		for i := 0; i < heads; i++ {
			u.Set(neighbors[i], WireworldHead)
		}
		next := Step(u, WireworldRule{})
		got := next.Get(Coordinate{5, 5})
		want := WireworldWire
		if heads == 1 || heads == 2 {
			want = WireworldHead
		}
		if got != want {
			t.Fatalf("wire with %d head neighbors became %d, expected %d", heads, got, want)
		}
	}
}

func TestElectronDecay(t *testing.T) {
	u := NewSparseUniverse(20, 20)
	u.Set(Coordinate{5, 5}, WireworldHead)

	u1 := Step(u, WireworldRule{})
	if u1.Get(Coordinate{5, 5}) != WireworldTail {
		t.Fatalf("a head must decay to a tail, got %d", u1.Get(Coordinate{5, 5}))
	}
	u2 := Step(u1, WireworldRule{})
	if u2.ActiveCells() != 0 {
		t.Fatalf("a tail must decay to empty, count=%d", u2.ActiveCells())
	}
}

func TestEmptyCellsNeverGrowWire(t *testing.T) {
	u := NewSparseUniverse(20, 20)
	u.Set(Coordinate{5, 4}, WireworldHead)
	u.Set(Coordinate{5, 6}, WireworldHead)

	next := Step(u, WireworldRule{})
	if next.Get(Coordinate{5, 5}) != StateDefault {
		t.Fatal("empty cells must never transition, whatever their neighbors")
	}
}

func TestElectronTravelsAlongWire(t *testing.T) {
	//head pushing along a straight wire: H W W -> T H W -> T(gone) T H
	u := NewSparseUniverse(20, 20)
	u.Set(Coordinate{5, 4}, WireworldHead)
	u.Set(Coordinate{5, 5}, WireworldWire)
	u.Set(Coordinate{5, 6}, WireworldWire)

	u1 := Step(u, WireworldRule{})
	assertCells(t, u1, map[Coordinate]CellState{
		{5, 4}: WireworldTail,
		{5, 5}: WireworldHead,
		{5, 6}: WireworldWire,
	})

	u2 := Step(u1, WireworldRule{})
	assertCells(t, u2, map[Coordinate]CellState{
		{5, 5}: WireworldTail,
		{5, 6}: WireworldHead,
	})
}
