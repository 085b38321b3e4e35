package universe

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"sync"
	"time"
)

//Options represents the simulation's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	HistoryDepth    int //retained generations for cycle detection, 0 = unbounded
	MaxSkippedTicks int
	Advanced        map[string]interface{} //advanced options (rule specific)
}

//Status represents the status of the simulation at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	ActiveCells   int
	IterationTime time.Duration
	Outcome       Outcome
	CycleLength   int //generations back to the matching state, set when Outcome is Cycled
	Details       map[string]interface{}
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start()
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 60
	DefHeight             = 20
	DefMaxSkippedTicks    = 5
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//Simulation drives a sparse universe under one rule
//it owns the clock: each tick computes the next generation and feeds it to
//the history tracker to decide whether to keep running
//the universe itself is an immutable-per-generation value, editing
//operations apply only between ticks via the control channel
type Simulation struct {
	options Options
	rule    Rule
	tracker *Tracker
	state   struct {
		Status
		sync.Mutex
	}
	grid struct {
		u *SparseUniverse
		sync.Mutex
	}
	stateCh       chan Status
	views         []Viewer
	templates     map[string]Template
	templateOrder []string
	controlCh     chan func()
	closeCh       chan bool
}

//NewSimulation creates a Simulation for the given rule
//the rule's built-in templates are preloaded into the library
func NewSimulation(r Rule, o *Options, stateCh chan Status) *Simulation {
	if o == nil {
		o = &DefaultOptions
	}
	if o.Advanced == nil {
		o.Advanced = make(map[string]interface{})
	}
	o.Advanced["rule"] = r.Name()

	s := Simulation{
		options:   *o,
		rule:      r,
		tracker:   NewTracker(o.HistoryDepth),
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]Template{},
	}
	s.state.Details = make(map[string]interface{})
	s.grid.u = NewSparseUniverse(o.Height, o.Width)
	for _, tmpl := range r.Templates() {
		s.AddTemplate(tmpl)
	}
	s.refreshView()
	go s.mainLoop()
	return &s
}

//Rule returns the rule the simulation runs under
func (s *Simulation) Rule() Rule {
	return s.rule
}

//AddTemplate adds the seeding template to the internal library
//the universe can be populated with this template by call StampTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	if _, ok := s.templates[tmpl.Name]; !ok {
		s.templateOrder = append(s.templateOrder, tmpl.Name)
	}
	s.templates[tmpl.Name] = tmpl
}

//TemplateNames returns the library's template names in insertion order
func (s *Simulation) TemplateNames() []string {
	names := make([]string, len(s.templateOrder))
	copy(names, s.templateOrder)
	return names
}

//StampTemplate places the named template at the anchor coordinate
//returns ErrUnknownPattern if the name is absent from the library,
//leaving the universe untouched
func (s *Simulation) StampTemplate(name string, anchor Coordinate) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	s.grid.Lock()
	Stamp(s.grid.u, tmpl, anchor, s.rule.ActiveState())
	s.state.ActiveCells = s.grid.u.ActiveCells()
	s.grid.Unlock()
	s.tracker.Reset()
	s.refreshView()
	return nil
}

//Settle settles the universe with data
//vc - array of y,x coordinates, each receives the rule's active state
func (s *Simulation) Settle(vc [][]int) {
	s.grid.Lock()
	for _, v := range vc {
		s.grid.u.Set(s.grid.u.Wrap(Coordinate{Y: v[0], X: v[1]}), s.rule.ActiveState())
	}
	s.state.ActiveCells = s.grid.u.ActiveCells()
	s.grid.Unlock()
	s.tracker.Reset()
	s.refreshView()
}

//SettleWithRandomData populates the universe with random data
func (s *Simulation) SettleWithRandomData() {
	if s.state.RunningMode == RunningStateManual || s.state.RunningMode == RunningStateFinished {
		s.controlCh <- s.clear
		s.controlCh <- func() {
			s.grid.Lock()
			for i := 0; i < s.grid.u.Height*s.grid.u.Width/4; i++ {
				c := Coordinate{Y: rand.Intn(s.grid.u.Height), X: rand.Intn(s.grid.u.Width)}
				s.grid.u.Set(c, s.rule.ActiveState())
			}
			s.state.ActiveCells = s.grid.u.ActiveCells()
			s.grid.Unlock()
			s.tracker.Reset()
			s.refreshView()
		}
	}
}

//ToggleCell cycles the cell at y,x through the rule's toggle sequence
func (s *Simulation) ToggleCell(y int, x int) {
	s.grid.Lock()
	c := s.grid.u.Wrap(Coordinate{Y: y, X: x})
	s.grid.u.Set(c, s.rule.ToggleState(s.grid.u.Get(c)))
	s.state.ActiveCells = s.grid.u.ActiveCells()
	s.grid.Unlock()
	s.tracker.Reset()
	s.refreshView()
}

//SetCell writes the state at y,x directly
func (s *Simulation) SetCell(y int, x int, state CellState) {
	s.grid.Lock()
	s.grid.u.Set(s.grid.u.Wrap(Coordinate{Y: y, X: x}), state)
	s.state.ActiveCells = s.grid.u.ActiveCells()
	s.grid.Unlock()
	s.tracker.Reset()
	s.refreshView()
}

//RegisterViewer registers the viewer - the simulation will call the viewer when the state is changed
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	return s.state.Status
}

//Options returns current simulation configuration represented by Options struct
func (s *Simulation) Options() Options {
	return s.options
}

//Snapshot returns an independent copy of the current generation
func (s *Simulation) Snapshot() *SparseUniverse {
	s.grid.Lock()
	defer s.grid.Unlock()
	return s.grid.u.Clone()
}

//SaveState writes the current generation to a timestamped file in the
//working directory and returns the filename
func (s *Simulation) SaveState() (string, error) {
	s.grid.Lock()
	data, err := Save(s.grid.u, s.rule)
	s.grid.Unlock()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-%s.sav", s.rule.Name(), time.Now().Format("20060102-150405"))
	if err := ioutil.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

//LoadState replaces the current generation with the one saved in filename
//a failed load leaves the prior universe untouched
func (s *Simulation) LoadState(filename string) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	u, err := Load(data, s.rule)
	if err != nil {
		return err
	}
	s.grid.Lock()
	s.grid.u = u
	s.state.IterationNum = 0
	s.state.ActiveCells = u.ActiveCells()
	s.grid.Unlock()
	s.tracker.Reset()
	s.refreshView()
	return nil
}

//Run starts the simulation, returns immediately
func (s *Simulation) Run() {
	s.controlCh <- s.run
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (s *Simulation) Stop() {
	s.controlCh <- s.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Simulation) Step() {
	s.controlCh <- s.step
}

//Clear clears the universe (reset all cells and counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Simulation) Clear() {
	s.controlCh <- s.clear
}

//Close stops the main loop, close the channels, returns immediately
func (s *Simulation) Close() {
	s.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Simulation) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:

		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//switchRunningState switch the state of the simulation to RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Simulation) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the simulation cycle
//the cycle will stop on Stop() calling or when a termination signal is reached
func (s *Simulation) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.state.RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > s.options.MaxSkippedTicks {
				s.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the simulation is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop stops the simulation running cycle
func (s *Simulation) stop() {
	if s.state.RunningMode == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step computes the next generation and checks the termination predicates
func (s *Simulation) step() {
	finished := false
	rm := s.state.RunningMode
	maxIter := s.options.MaxSteps
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	if maxIter != 0 && s.state.IterationNum >= maxIter {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)

	s.grid.Lock()
	if s.state.IterationNum == 0 {
		//the seed is generation zero
		res := s.tracker.Observe(s.grid.u)
		if res.Outcome != Continuing {
			s.state.Outcome = res.Outcome
			s.state.CycleLength = res.GenerationsAgo
			s.grid.Unlock()
			finished = true
			return
		}
	}
	start := time.Now()
	next := Step(s.grid.u, s.rule)
	res := s.tracker.Observe(next)
	s.grid.u = next
	s.state.IterationNum++
	s.state.ActiveCells = next.ActiveCells()
	s.state.IterationTime = time.Since(start)
	s.state.Outcome = res.Outcome
	s.state.CycleLength = res.GenerationsAgo
	s.grid.Unlock()
	if res.Outcome != Continuing {
		finished = true
	}
}

//clear clears the universe data, reset all counters
func (s *Simulation) clear() {
	s.state.Lock()
	s.grid.Lock()
	s.state.IterationNum = 0
	s.state.ActiveCells = 0
	s.state.Outcome = Continuing
	s.state.CycleLength = 0
	s.grid.u = NewSparseUniverse(s.options.Height, s.options.Width)
	s.state.RunningMode = RunningStateManual
	s.grid.Unlock()
	s.state.Unlock()
	s.tracker.Reset()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls Refresh event for all registered views
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
