package universe

import (
	"encoding/json"
	"fmt"
	"sort"
)

//saveFormatVersion tags the on-disk layout so future layouts can be told apart
const saveFormatVersion = 1

//saveRecord is the portable form of one generation: the declared
//dimensions plus a flat list of [y, x, state] triples for every stored cell
type saveRecord struct {
	Version int      `json:"version"`
	Rule    string   `json:"rule"`
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Cells   [][3]int `json:"cells"`
}

//Save encodes the universe as JSON
//cells are emitted in row-major order so saving the same generation twice
//yields byte-identical output
func Save(u *SparseUniverse, r Rule) ([]byte, error) {
	rec := saveRecord{
		Version: saveFormatVersion,
		Rule:    r.Name(),
		Height:  u.Height,
		Width:   u.Width,
		Cells:   make([][3]int, 0, u.ActiveCells()),
	}
	u.Walk(func(c Coordinate, s CellState) {
		rec.Cells = append(rec.Cells, [3]int{c.Y, c.X, int(s)})
	})
	sort.Slice(rec.Cells, func(i, j int) bool {
		if rec.Cells[i][0] != rec.Cells[j][0] {
			return rec.Cells[i][0] < rec.Cells[j][0]
		}
		return rec.Cells[i][1] < rec.Cells[j][1]
	})
	return json.Marshal(rec)
}

//Load decodes a saved universe and validates it against the rule
//the returned error wraps ErrMalformedRecord when the record cannot be
//decoded and ErrUnsupportedState when a state token does not belong to the
//rule's state set
func Load(data []byte, r Rule) (*SparseUniverse, error) {
	var rec saveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rec.Version != saveFormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedRecord, rec.Version)
	}
	if rec.Height <= 0 || rec.Width <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedRecord, rec.Height, rec.Width)
	}
	if rec.Rule != "" && rec.Rule != r.Name() {
		return nil, fmt.Errorf("%w: record for rule %q loaded as %q", ErrUnsupportedState, rec.Rule, r.Name())
	}
	known := map[CellState]bool{}
	for _, s := range r.States() {
		known[s] = true
	}
	u := NewSparseUniverse(rec.Height, rec.Width)
	for _, cell := range rec.Cells {
		token := cell[2]
		if token <= 0 || token > 255 {
			return nil, fmt.Errorf("%w: state token %d at (%d,%d)", ErrMalformedRecord, token, cell[0], cell[1])
		}
		s := CellState(token)
		if !known[s] {
			return nil, fmt.Errorf("%w: token %d is not a %s state", ErrUnsupportedState, token, r.Name())
		}
		u.Set(Coordinate{Y: cell[0], X: cell[1]}, s)
	}
	return u, nil
}
