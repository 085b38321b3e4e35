package universe

//Outcome is the termination signal produced after observing a generation
type Outcome int

const (
	//Continuing means the simulation has neither died nor repeated
	Continuing Outcome = iota
	//Extinguished means the generation holds zero non-default cells
	Extinguished
	//Cycled means the generation exactly matches an earlier one
	Cycled
)

//Result carries the outcome of observing one generation
//GenerationsAgo is set only for Cycled and counts back to the matching
//generation
type Result struct {
	Outcome        Outcome
	GenerationsAgo int
}

type snapshot struct {
	gen   int
	hash  uint64
	cells *SparseUniverse
}

//Tracker detects extinction and exact-state repetition across generations
//it holds no rule-specific knowledge
//
//snapshots are indexed by an order-independent hash so each observation
//compares against hash-colliding candidates instead of scanning the whole
//history, and retention is optionally bounded to a fixed window of recent
//generations (depth 0 keeps everything, matching the source behavior of
//detecting a repeat however far back)
type Tracker struct {
	depth     int
	nextGen   int
	snapshots []snapshot
	index     map[uint64][]int //hash -> generation numbers
}

//NewTracker creates a tracker retaining at most depth generations,
//0 means unbounded
func NewTracker(depth int) *Tracker {
	return &Tracker{
		depth: depth,
		index: map[uint64][]int{},
	}
}

//Observe tests the generation against the termination predicates and,
//when the simulation continues, appends it to the history
func (t *Tracker) Observe(u *SparseUniverse) Result {
	if u.ActiveCells() == 0 {
		return Result{Outcome: Extinguished}
	}
	h := u.hash()
	firstGen := t.nextGen - len(t.snapshots)
	for _, gen := range t.index[h] {
		if gen < firstGen {
			continue //evicted from the window
		}
		s := t.snapshots[gen-firstGen]
		if s.cells.Equal(u) {
			return Result{Outcome: Cycled, GenerationsAgo: t.nextGen - gen}
		}
	}
	t.append(snapshot{gen: t.nextGen, hash: h, cells: u.Clone()})
	return Result{Outcome: Continuing}
}

//Generations returns the count of snapshots currently retained
func (t *Tracker) Generations() int {
	return len(t.snapshots)
}

//Reset discards the whole history, used when the universe is edited
func (t *Tracker) Reset() {
	t.nextGen = 0
	t.snapshots = t.snapshots[:0]
	t.index = map[uint64][]int{}
}

func (t *Tracker) append(s snapshot) {
	t.snapshots = append(t.snapshots, s)
	t.index[s.hash] = append(t.index[s.hash], s.gen)
	t.nextGen++
	if t.depth > 0 && len(t.snapshots) > t.depth {
		old := t.snapshots[0]
		t.snapshots = t.snapshots[1:]
		t.dropIndexed(old)
	}
}

func (t *Tracker) dropIndexed(s snapshot) {
	gens := t.index[s.hash]
	for i, g := range gens {
		if g == s.gen {
			t.index[s.hash] = append(gens[:i], gens[i+1:]...)
			break
		}
	}
	if len(t.index[s.hash]) == 0 {
		delete(t.index, s.hash)
	}
}
