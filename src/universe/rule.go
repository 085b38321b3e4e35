package universe

import "sort"

//Rule is the pluggable state-transition contract
//the step engine treats state tokens as opaque and never inspects them,
//all rule-family knowledge lives behind this interface
type Rule interface {
	//Name returns the rule family identifier
	Name() string
	//States returns the rule's non-default state tokens
	States() []CellState
	//ActiveState returns the state placed when stamping templates
	ActiveState() CellState
	//ToggleState returns the state that follows current when the user
	//toggles a cell during editing
	ToggleState(current CellState) CellState
	//NextState computes the next state of a cell from its current state
	//and the states of its 8 Moore neighbors
	NextState(current CellState, neighbors []CellState) CellState
	//Templates returns the rule's built-in seeding templates
	Templates() []Template
}

var rules = map[string]Rule{}

//RegisterRule adds the rule to the internal registry
func RegisterRule(r Rule) {
	if r == nil || r.Name() == "" {
		return
	}
	rules[r.Name()] = r
}

//RuleByName returns the registered rule with the given name
func RuleByName(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}

//RuleNames returns the sorted names of all registered rules
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for k := range rules {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
