package universe

import (
	"bytes"
	"errors"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	u := NewSparseUniverse(15, 30)
	u.Set(Coordinate{0, 0}, WireworldWire)
	u.Set(Coordinate{3, 7}, WireworldHead)
	u.Set(Coordinate{14, 29}, WireworldTail)

	data, err := Save(u, WireworldRule{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(data, WireworldRule{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Height != 15 || loaded.Width != 30 {
		t.Fatalf("dimensions lost: %dx%d", loaded.Height, loaded.Width)
	}
	if !loaded.Equal(u) {
		t.Fatal("round trip must reproduce the exact cell mapping")
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	u := NewSparseUniverse(10, 10)
	for _, c := range []Coordinate{{5, 4}, {5, 5}, {5, 6}, {2, 9}} {
		u.Set(c, LifeAlive)
	}
	a, err := Save(u, LifeRule{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := Save(u, LifeRule{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("saving the same generation twice must yield identical bytes")
	}
}

func TestLoadMalformedRecord(t *testing.T) {
	cases := map[string]string{
		"truncated json":   `{"version":1,"rule":"life"`,
		"wrong version":    `{"version":99,"rule":"life","height":10,"width":10,"cells":[]}`,
		"zero dimensions":  `{"version":1,"rule":"life","height":0,"width":10,"cells":[]}`,
		"bad state token":  `{"version":1,"rule":"life","height":10,"width":10,"cells":[[1,1,-3]]}`,
		"cells not a list": `{"version":1,"rule":"life","height":10,"width":10,"cells":"xx"}`,
		"default stored":   `{"version":1,"rule":"life","height":10,"width":10,"cells":[[1,1,0]]}`,
	}
	for name, data := range cases {
		if _, err := Load([]byte(data), LifeRule{}); !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("%s: expected ErrMalformedRecord, got %v", name, err)
		}
	}
}

func TestLoadAgainstWrongRule(t *testing.T) {
	u := NewSparseUniverse(10, 10)
	u.Set(Coordinate{1, 1}, WireworldTail)
	data, err := Save(u, WireworldRule{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := Load(data, LifeRule{}); !errors.Is(err, ErrUnsupportedState) {
		t.Fatalf("expected ErrUnsupportedState, got %v", err)
	}
}

func TestLoadRejectsForeignStateToken(t *testing.T) {
	data := `{"version":1,"rule":"life","height":10,"width":10,"cells":[[1,1,7]]}`
	if _, err := Load([]byte(data), LifeRule{}); !errors.Is(err, ErrUnsupportedState) {
		t.Fatalf("expected ErrUnsupportedState, got %v", err)
	}
}
