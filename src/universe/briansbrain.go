package universe

//Brian's Brain states, BrainOff is the implicit default
const (
	BrainOn         CellState = 1
	BrainRecruiting CellState = 2
)

//BriansBrainRule implements Brian's Brain, a three-state automaton with a
//non-reversible cycle: ON fires for one tick, then recruits for one tick,
//then returns to off
//only ON neighbors activate an off cell, recruiting cells act purely as a
//one-tick refractory delay
type BriansBrainRule struct{}

func (BriansBrainRule) Name() string { return "briansbrain" }

func (BriansBrainRule) States() []CellState {
	return []CellState{BrainOn, BrainRecruiting}
}

func (BriansBrainRule) ActiveState() CellState { return BrainOn }

func (BriansBrainRule) ToggleState(current CellState) CellState {
	if current == StateDefault {
		return BrainOn
	}
	return StateDefault
}

func (BriansBrainRule) NextState(current CellState, neighbors []CellState) CellState {
	switch current {
	case BrainOn:
		return BrainRecruiting
	case BrainRecruiting:
		return StateDefault
	}
	on := 0
	for _, n := range neighbors {
		if n == BrainOn {
			on++
		}
	}
	if on == 2 {
		return BrainOn
	}
	return StateDefault
}

func (BriansBrainRule) Templates() []Template {
	return []Template{
		{"Blinker", "horizontal trio", [][]int{{0, -1}, {0, 0}, {0, 1}}},
		{"Glider", "five-cell seed", [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{"Puffer", "eight-cell ring", [][]int{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}, {3, 0}, {3, 3}}},
		{"Brain Spiral", "asymmetric spiral seed", [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}}},
	}
}

func init() {
	RegisterRule(BriansBrainRule{})
}
