package universe

//LifeAlive is the single non-default state of Conway's Life
const LifeAlive CellState = 1

//LifeRule implements Conway's Game of Life
//a live cell survives with 2 or 3 live neighbors, a dead cell
//becomes alive with exactly 3
type LifeRule struct{}

func (LifeRule) Name() string { return "life" }

func (LifeRule) States() []CellState { return []CellState{LifeAlive} }

func (LifeRule) ActiveState() CellState { return LifeAlive }

func (LifeRule) ToggleState(current CellState) CellState {
	if current == LifeAlive {
		return StateDefault
	}
	return LifeAlive
}

func (LifeRule) NextState(current CellState, neighbors []CellState) CellState {
	alive := 0
	for _, n := range neighbors {
		if n == LifeAlive {
			alive++
		}
	}
	if alive == 3 || (alive == 2 && current == LifeAlive) {
		return LifeAlive
	}
	return StateDefault
}

func (LifeRule) Templates() []Template {
	return []Template{
		{"Block", "2x2 still life", [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"Blinker", "period-2 oscillator", [][]int{{0, -1}, {0, 0}, {0, 1}}},
		{"Toad", "period-2 oscillator", [][]int{{0, 0}, {0, 1}, {0, 2}, {1, -1}, {1, 0}, {1, 1}}},
		{"Glider", "diagonal spaceship", [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{"LWSS", "lightweight spaceship", [][]int{{0, 1}, {0, 4}, {1, 0}, {2, 0}, {2, 4}, {3, 0}, {3, 1}, {3, 2}, {3, 3}}},
		{"MWSS", "middleweight spaceship", [][]int{{0, 1}, {0, 5}, {1, 0}, {2, 0}, {2, 5}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}},
		{"HWSS", "heavyweight spaceship", [][]int{{0, 1}, {0, 6}, {1, 0}, {2, 0}, {2, 6}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}}},
		{"Pulsar", "period-3 oscillator", [][]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
			{2, 0}, {2, 5}, {2, 7}, {2, 12},
			{3, 0}, {3, 5}, {3, 7}, {3, 12},
			{4, 0}, {4, 5}, {4, 7}, {4, 12},
			{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10}}},
		{"Pentadecathlon", "period-15 oscillator", [][]int{
			{0, 1}, {1, 0}, {1, 2}, {2, 1}, {3, 1}, {4, 1},
			{5, 1}, {6, 1}, {7, 1}, {8, 0}, {8, 2}, {9, 1}}},
		{"Gosper Glider Gun", "first known infinite-growth pattern", [][]int{
			{0, 24}, {1, 22}, {1, 24}, {2, 12}, {2, 13}, {2, 20}, {2, 21}, {2, 34}, {2, 35},
			{3, 11}, {3, 15}, {3, 20}, {3, 21}, {3, 34}, {3, 35}, {4, 0}, {4, 1}, {4, 10},
			{4, 16}, {4, 20}, {4, 21}, {5, 0}, {5, 1}, {5, 10}, {5, 14}, {5, 16}, {5, 17},
			{5, 22}, {5, 24}, {6, 10}, {6, 16}, {6, 24}, {7, 11}, {7, 15}, {8, 12}, {8, 13}}},
	}
}

func init() {
	RegisterRule(LifeRule{})
}
