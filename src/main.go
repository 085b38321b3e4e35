package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"sparselife/src/universe"
	"sparselife/src/view"
)

var (
	//three stable patterns plus a small methuselah
	testSample = [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	loadFile    string
	rule        string
	seed        string
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the simulation status
	}

	rule, _ := universe.RuleByName(eo.rule)
	s := universe.NewSimulation(rule, uo, stateCh)

	s.AddTemplate(
		universe.Template{
			Name:        "testSample1",
			Descr:       "the test sample with 3 stable patterns",
			Coordinates: testSample,
		})

	switch {
	case eo.loadFile != "":
		if err := s.LoadState(eo.loadFile); err != nil {
			flaggy.ShowHelpAndExit(fmt.Sprintf("cannot load %s: %v", eo.loadFile, err))
		}
	case eo.randomData:
		s.SettleWithRandomData()
	default:
		seed := eo.seed
		if seed == "" {
			seed = "testSample1"
		}
		anchor := universe.Coordinate{Y: uo.Height / 2, X: uo.Width / 2}
		if err := s.StampTemplate(seed, anchor); err != nil {
			flaggy.ShowHelpAndExit(fmt.Sprintf("cannot seed: %v, patterns are [%s]",
				err, strings.Join(s.TemplateNames(), "|")))
		}
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
	} else {
		fmt.Printf("Cellular automata simulation started (%s)...\n", rule.Name())

		startTime := time.Now()
		s.Run()
		for {
			st := <-stateCh
			if st.RunningMode == universe.RunningStateFinished {
				totalTime := time.Since(startTime).Round(time.Millisecond)
				fmt.Printf("Finished, iteration is: %v, total running time: %v\n", st.IterationNum, totalTime)
				switch st.Outcome {
				case universe.Extinguished:
					fmt.Println("The universe has died out.")
				case universe.Cycled:
					fmt.Printf("Reached a repeating shape, period %v generations.\n", st.CycleLength)
				}
				break
			}
			if st.RunningMode == universe.RunningStateStep {
				if st.IterationNum%10 == 0 {
					fmt.Printf("Finished iterations: %v\n", st.IterationNum)
				}
			}
		}
		s.Close()
		close(stateCh)
	}

}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	uo = &universe.DefaultOptions
	eo = &EnvOptions{rule: "life"}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Int(&uo.HistoryDepth, "d", "historyDepth", "Retain at most this many generations for cycle detection, 0 keeps all")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.loadFile, "l", "load", "Load a saved state file")
	flaggy.String(&eo.seed, "p", "pattern", "Seed pattern to stamp at the field center, defaults to testSample1")
	flaggy.String(&eo.rule, "e", "rule", "Automaton rule to use ["+strings.Join(universe.RuleNames(), "|")+"]")

	flaggy.Parse()

	_, ok := universe.RuleByName(eo.rule)
	if !ok {
		flaggy.ShowHelpAndExit("unknown rule")
	}

	return
}
