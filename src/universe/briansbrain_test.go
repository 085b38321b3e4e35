package universe

import "testing"

func TestOnNeverStepInvariant(t *testing.T) {
	u := NewSparseUniverse(20, 20)
	u.Set(Coordinate{5, 5}, BrainOn)
	u.Set(Coordinate{5, 6}, BrainOn)

	next := Step(u, BriansBrainRule{})
	if next.Get(Coordinate{5, 5}) != BrainRecruiting {
		t.Fatalf("an ON cell must recruit unconditionally, got %d", next.Get(Coordinate{5, 5}))
	}
	if next.Equal(u) {
		t.Fatal("a generation with ON cells can never equal its successor")
	}
}

func TestRecruitingReturnsToOff(t *testing.T) {
	u := NewSparseUniverse(20, 20)
	u.Set(Coordinate{5, 5}, BrainRecruiting)

	next := Step(u, BriansBrainRule{})
	if next.ActiveCells() != 0 {
		t.Fatalf("a lone recruiting cell must fall back to off, count=%d", next.ActiveCells())
	}
}

func TestActivationRequiresExactlyTwoOnNeighbors(t *testing.T) {
	neighbors := []Coordinate{{4, 4}, {4, 5}, {4, 6}, {5, 4}}
	for on := 0; on <= 4; on++ {
		u := NewSparseUniverse(20, 20)
		for i := 0; i < on; i++ {
			u.Set(neighbors[i], BrainOn)
		}
		next := Step(u, BriansBrainRule{})
		got := next.Get(Coordinate{5, 5})
		want := StateDefault
		if on == 2 {
			want = BrainOn
		}
		if got != want {
			t.Fatalf("off cell with %d ON neighbors became %d, expected %d", on, got, want)
		}
	}
}

func TestRecruitingNeighborsDoNotActivate(t *testing.T) {
	u := NewSparseUniverse(20, 20)
	u.Set(Coordinate{4, 4}, BrainRecruiting)
	u.Set(Coordinate{4, 6}, BrainRecruiting)

	next := Step(u, BriansBrainRule{})
	if next.Get(Coordinate{5, 5}) != StateDefault {
		t.Fatal("recruiting neighbors must not activate an off cell")
	}
}
