package search

// Phase is the Bisector's current stage, mirroring the reference
// implementation's Bisect.state enum.
type Phase int

const (
	Initial Phase = iota
	Unbounded
	Bounded
)

// Bisector finds the smallest MaxDays for which Core reports Won, by
// doubling a probe ceiling until an Overflow-to-Won transition is
// observed, then bisecting between the largest known failure and the
// smallest known success.
type Bisector struct {
	Core    *Core
	Holes   int
	Visits  int
	MaxDays int // hard ceiling no probe may exceed

	KnownBad   int
	KnownGood  int // -1 until a win has been observed
	CurrentMax int
	Increment  int
	Phase      Phase

	bestVictoryDay int
	bestChain      []Generation
	probes         int
}

// NewBisector builds a Bisector bound to core. holes and visits
// determine the initial probe increment; maxDays is the absolute
// ceiling no probe is allowed to exceed.
func NewBisector(core *Core, holes, visits, maxDays int) *Bisector {
	return &Bisector{
		Core:      core,
		Holes:     holes,
		Visits:    visits,
		MaxDays:   maxDays,
		KnownGood: -1,
		Phase:     Initial,
	}
}

// Run drives the probe loop to completion, returning whether a
// solution was found and, if so, the minimal day count. BestChain then
// holds the winning reservoir chain the Fixup Pass reconstructs from.
func (b *Bisector) Run() (solved bool, victoryDay int, err error) {
	b.initial()
	for {
		outcome, runErr := b.Core.Run(b.Holes, b.CurrentMax)
		if runErr != nil {
			return false, 0, runErr
		}
		b.probes++

		if outcome == Lost {
			// Every hole was exhausted with no surviving state at any
			// day up to CurrentMax: the configuration is proven
			// unwinnable, and no larger probe can change that, so there
			// is nothing left to bisect toward.
			break
		}

		found := 0
		if outcome == Won {
			found = b.Core.VictoryDay()
			b.bestVictoryDay = found
			// The reservoir is reset on every subsequent probe, so the
			// winning chain must be captured now rather than referenced
			// by ID for later retrieval.
			b.bestChain = b.Core.Reservoir.Walk(b.Core.ReservoirLeaf())
		}

		if !b.advance(found) {
			break
		}
	}
	if b.KnownGood > 0 {
		return true, b.KnownGood, nil
	}
	return false, 0, nil
}

// BestVictoryDay returns the winning probe's day count, and BestChain
// returns its captured reservoir chain in ascending day order -- the
// Fixup Pass's starting input. Both are valid only after Run reports
// solved.
func (b *Bisector) BestVictoryDay() int     { return b.bestVictoryDay }
func (b *Bisector) BestChain() []Generation { return b.bestChain }

// Probes returns the number of Core.Run invocations Run performed.
func (b *Bisector) Probes() int { return b.probes }

func (b *Bisector) initial() {
	b.KnownBad = 0
	b.KnownGood = -1
	b.Increment = (b.Holes + b.Visits - 1) / b.Visits
	b.Phase = Unbounded
	b.CurrentMax = b.KnownBad + b.Increment
	if b.CurrentMax > b.MaxDays {
		b.CurrentMax = b.MaxDays
	}
}

// advance applies one Bisector state transition given the outcome of
// the probe just run (found is the victory day, or <= 0 for
// Overflow/Lost), and reports whether another probe should run.
func (b *Bisector) advance(found int) bool {
	switch b.Phase {
	case Unbounded:
		if found > 0 {
			b.Phase = Bounded
			b.KnownGood = found
			b.Increment = (b.KnownGood - b.KnownBad + 1) / 2
		} else {
			b.KnownBad = b.CurrentMax
			b.Increment *= 2
			if limit := b.MaxDays - b.KnownBad; b.Increment > limit {
				b.Increment = limit
			}
		}
	case Bounded:
		if found > 0 {
			b.KnownGood = found
		} else {
			b.KnownBad = b.CurrentMax
		}
		b.Increment = (b.KnownGood - b.KnownBad) / 2
	}

	if b.Increment < 1 {
		return false
	}
	b.CurrentMax = b.KnownBad + b.Increment
	return true
}
