package universe

//Coordinate identifies a cell by row (Y) and column (X)
//it has no inherent bounds, meaning is assigned by a universe's dimensions
type Coordinate struct {
	Y int
	X int
}

//CellState is a state token scoped to the active Rule
//the zero value is the rule's default state (dead/off/empty)
//and is never stored in a SparseUniverse
type CellState uint8

//StateDefault is the implicit state of every cell absent from storage
const StateDefault CellState = 0
