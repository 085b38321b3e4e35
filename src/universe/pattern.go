package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [y,x] offsets relative to the anchor
}

//Stamp places the template onto the universe at the anchor coordinate
//targets outside the declared dimensions wrap toroidally, consistent with
//the dimension-agnostic sparse storage
func Stamp(u *SparseUniverse, tmpl Template, anchor Coordinate, state CellState) {
	for _, off := range tmpl.Coordinates {
		u.Set(u.Wrap(Coordinate{Y: anchor.Y + off[0], X: anchor.X + off[1]}), state)
	}
}
