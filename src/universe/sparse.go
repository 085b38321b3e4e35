package universe

import "hash/fnv"

//neighborhood deltas for the 8-cell Moore neighborhood, (0,0) excluded
var mooreDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//SparseUniverse stores one generation of cells
//only non-default cells are kept, keyed by coordinate, so memory scales
//with activity rather than with the declared dimensions
//Height and Width are used only to compute toroidal wraparound
type SparseUniverse struct {
	Height int
	Width  int
	cells  map[Coordinate]CellState
}

//NewSparseUniverse creates an empty universe with the given dimensions
func NewSparseUniverse(height int, width int) *SparseUniverse {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	return &SparseUniverse{
		Height: height,
		Width:  width,
		cells:  map[Coordinate]CellState{},
	}
}

//Get returns the state at c, StateDefault if the cell is not stored
func (u *SparseUniverse) Get(c Coordinate) CellState {
	return u.cells[c]
}

//Set writes the state at c
//writing StateDefault removes the entry instead of storing it,
//keeping the representation minimal
func (u *SparseUniverse) Set(c Coordinate, s CellState) {
	if s == StateDefault {
		delete(u.cells, c)
		return
	}
	u.cells[c] = s
}

//Wrap maps c onto the torus [0,Height)x[0,Width)
func (u *SparseUniverse) Wrap(c Coordinate) Coordinate {
	return Coordinate{
		Y: (c.Y%u.Height + u.Height) % u.Height,
		X: (c.X%u.Width + u.Width) % u.Width,
	}
}

//Neighbors returns the 8 coordinates of the toroidal Moore neighborhood of c
func (u *SparseUniverse) Neighbors(c Coordinate) [8]Coordinate {
	var n [8]Coordinate
	for i, d := range mooreDeltas {
		n[i] = u.Wrap(Coordinate{Y: c.Y + d[0], X: c.X + d[1]})
	}
	return n
}

//Walk calls cb for every stored (non-default) cell, no ordering guarantee
func (u *SparseUniverse) Walk(cb func(c Coordinate, s CellState)) {
	for c, s := range u.cells {
		cb(c, s)
	}
}

//ActiveCells returns the count of stored cells
func (u *SparseUniverse) ActiveCells() int {
	return len(u.cells)
}

//Clone returns an independent copy of the universe
func (u *SparseUniverse) Clone() *SparseUniverse {
	n := &SparseUniverse{
		Height: u.Height,
		Width:  u.Width,
		cells:  make(map[Coordinate]CellState, len(u.cells)),
	}
	for c, s := range u.cells {
		n.cells[c] = s
	}
	return n
}

//Equal reports whether two universes hold exactly the same cells
func (u *SparseUniverse) Equal(o *SparseUniverse) bool {
	if len(u.cells) != len(o.cells) {
		return false
	}
	for c, s := range u.cells {
		if o.cells[c] != s {
			return false
		}
	}
	return true
}

//hash computes an order-independent digest of the stored cells
//used by the history tracker to index snapshots
func (u *SparseUniverse) hash() uint64 {
	var sum uint64
	for c, s := range u.cells {
		h := fnv.New64a()
		var buf [9]byte
		putInt32(buf[0:], int32(c.Y))
		putInt32(buf[4:], int32(c.X))
		buf[8] = byte(s)
		_, _ = h.Write(buf[:])
		sum += h.Sum64()
	}
	return sum
}

func putInt32(b []byte, v int32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
