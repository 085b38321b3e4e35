package universe

//Wireworld states, empty is the implicit default
const (
	WireworldWire CellState = 1
	WireworldHead CellState = 2
	WireworldTail CellState = 3
)

//WireworldRule implements Wireworld, an automaton modelling electrons
//travelling along wires
//a head always decays to a tail and a tail to empty, a wire fires into a
//head when 1 or 2 of its neighbors are heads, empty cells never change
type WireworldRule struct{}

func (WireworldRule) Name() string { return "wireworld" }

func (WireworldRule) States() []CellState {
	return []CellState{WireworldWire, WireworldHead, WireworldTail}
}

func (WireworldRule) ActiveState() CellState { return WireworldWire }

//ToggleState cycles empty -> wire -> head -> tail -> empty so a circuit
//and its electrons can be drawn with a single key
func (WireworldRule) ToggleState(current CellState) CellState {
	return CellState((current + 1) % 4)
}

func (WireworldRule) NextState(current CellState, neighbors []CellState) CellState {
	switch current {
	case WireworldHead:
		return WireworldTail
	case WireworldTail:
		return StateDefault
	case WireworldWire:
		heads := 0
		for _, n := range neighbors {
			if n == WireworldHead {
				heads++
			}
		}
		if heads == 1 || heads == 2 {
			return WireworldHead
		}
		return WireworldWire
	}
	//no spontaneous wire growth
	return StateDefault
}

func (WireworldRule) Templates() []Template {
	return []Template{
		{"Straight Wire", "four-cell run", [][]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{"Corner", "right-angle bend", [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{"T-Junction", "three-way split", [][]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}},
		{"Diode", "one-way wire structure", [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}, {2, 0}, {2, 2}}},
	}
}

func init() {
	RegisterRule(WireworldRule{})
}
