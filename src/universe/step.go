package universe

//Step applies the rule to one generation and returns the next
//the input universe is never mutated, generations are immutable values
//
//only the stored cells and their neighbors can change state in one
//generation (a default cell with no active neighbor provably stays
//default), so the evaluation frontier is that union rather than a dense
//height x width scan
func Step(u *SparseUniverse, r Rule) *SparseUniverse {
	frontier := make(map[Coordinate]struct{}, u.ActiveCells()*4)
	u.Walk(func(c Coordinate, _ CellState) {
		frontier[c] = struct{}{}
		for _, n := range u.Neighbors(c) {
			frontier[n] = struct{}{}
		}
	})

	next := NewSparseUniverse(u.Height, u.Width)
	var neighbors [8]CellState
	for c := range frontier {
		for i, n := range u.Neighbors(c) {
			neighbors[i] = u.Get(n)
		}
		if s := r.NextState(u.Get(c), neighbors[:]); s != StateDefault {
			next.Set(c, s)
		}
	}
	return next
}
