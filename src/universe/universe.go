package universe

//Simulator is the boundary the engine exposes to rendering/input layers
type Simulator interface {
	Status() Status
	Options() Options
	Rule() Rule
	Snapshot() *SparseUniverse
	StateCh() chan Status
	AddTemplate(tmpl Template)
	TemplateNames() []string
	StampTemplate(name string, anchor Coordinate) error
	Settle(vc [][]int)
	SettleWithRandomData()
	ToggleCell(y int, x int)
	SetCell(y int, x int, state CellState)
	RegisterViewer(v Viewer)
	SaveState() (string, error)
	LoadState(filename string) error
	Run()
	Stop()
	Step()
	Clear()
	Close()
}
