package universe

import "testing"

var benchTemplate = Template{
	Name:  "bench1",
	Descr: "",
	Coordinates: [][]int{
		{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3},
	},
}

const (
	benchWidth  = 200
	benchHeight = 200
)

func simulationStep(s *Simulation, b *testing.B) {
	s.AddTemplate(benchTemplate)
	stateCh := s.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		_ = s.StampTemplate("bench1", Coordinate{Y: 0, X: 0})
		b.StartTimer()
		s.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual || st.RunningMode == RunningStateFinished {
				break
			}
		}
	}
	s.Close()
	close(stateCh)
}

func newBenchOptions() *Options {
	o := DefaultOptions
	o.Interval = 0
	o.Width = benchWidth
	o.Height = benchHeight
	return &o
}

func Benchmark_Step(b *testing.B) {
	for _, name := range RuleNames() {
		b.Run(name, func(b *testing.B) {
			r, _ := RuleByName(name)
			s := NewSimulation(r, newBenchOptions(), make(chan Status, 10))
			simulationStep(s, b)
		})
	}
}

func Benchmark_SparseStep(b *testing.B) {
	for _, name := range RuleNames() {
		b.Run(name, func(b *testing.B) {
			r, _ := RuleByName(name)
			u := NewSparseUniverse(benchHeight, benchWidth)
			Stamp(u, benchTemplate, Coordinate{Y: 0, X: 0}, r.ActiveState())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				next := Step(u, r)
				if next.ActiveCells() > 0 {
					u = next
				}
			}
		})
	}
}
