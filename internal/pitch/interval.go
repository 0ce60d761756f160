package pitch

// Interval is a named distance between two spelled notes. Intervals are
// declared in ascending semitone order, ties broken by diatonic step, so the
// numeric value orders them the way they stack above a root.
type Interval uint8

const (
	PerfectUnison Interval = iota
	DiminishedSecond
	AugmentedUnison
	MinorSecond
	MajorSecond
	DiminishedThird
	AugmentedSecond
	MinorThird
	MajorThird
	DiminishedFourth
	AugmentedThird
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth
	DiminishedSixth
	AugmentedFifth
	MinorSixth
	MajorSixth
	DiminishedSeventh
	AugmentedSixth
	MinorSeventh
	MajorSeventh
	DiminishedOctave
	AugmentedSeventh
	PerfectOctave
	MinorNinth
	MajorNinth
	AugmentedNinth
	DiminishedEleventh
	PerfectEleventh
	AugmentedEleventh
	MinorThirteenth
	MajorThirteenth
	AugmentedThirteenth

	intervalCount
)

type intervalInfo struct {
	name      string
	short     string
	steps     int
	semitones int
}

var intervals = [intervalCount]intervalInfo{
	PerfectUnison:       {"perfect unison", "P1", 0, 0},
	DiminishedSecond:    {"diminished second", "d2", 1, 0},
	AugmentedUnison:     {"augmented unison", "A1", 0, 1},
	MinorSecond:         {"minor second", "m2", 1, 1},
	MajorSecond:         {"major second", "M2", 1, 2},
	DiminishedThird:     {"diminished third", "d3", 2, 2},
	AugmentedSecond:     {"augmented second", "A2", 1, 3},
	MinorThird:          {"minor third", "m3", 2, 3},
	MajorThird:          {"major third", "M3", 2, 4},
	DiminishedFourth:    {"diminished fourth", "d4", 3, 4},
	AugmentedThird:      {"augmented third", "A3", 2, 5},
	PerfectFourth:       {"perfect fourth", "P4", 3, 5},
	AugmentedFourth:     {"augmented fourth", "A4", 3, 6},
	DiminishedFifth:     {"diminished fifth", "d5", 4, 6},
	PerfectFifth:        {"perfect fifth", "P5", 4, 7},
	DiminishedSixth:     {"diminished sixth", "d6", 5, 7},
	AugmentedFifth:      {"augmented fifth", "A5", 4, 8},
	MinorSixth:          {"minor sixth", "m6", 5, 8},
	MajorSixth:          {"major sixth", "M6", 5, 9},
	DiminishedSeventh:   {"diminished seventh", "d7", 6, 9},
	AugmentedSixth:      {"augmented sixth", "A6", 5, 10},
	MinorSeventh:        {"minor seventh", "m7", 6, 10},
	MajorSeventh:        {"major seventh", "M7", 6, 11},
	DiminishedOctave:    {"diminished octave", "d8", 7, 11},
	AugmentedSeventh:    {"augmented seventh", "A7", 6, 12},
	PerfectOctave:       {"perfect octave", "P8", 7, 12},
	MinorNinth:          {"minor ninth", "m9", 8, 13},
	MajorNinth:          {"major ninth", "M9", 8, 14},
	AugmentedNinth:      {"augmented ninth", "A9", 8, 15},
	DiminishedEleventh:  {"diminished eleventh", "d11", 10, 16},
	PerfectEleventh:     {"perfect eleventh", "P11", 10, 17},
	AugmentedEleventh:   {"augmented eleventh", "A11", 10, 18},
	MinorThirteenth:     {"minor thirteenth", "m13", 12, 20},
	MajorThirteenth:     {"major thirteenth", "M13", 12, 21},
	AugmentedThirteenth: {"augmented thirteenth", "A13", 12, 22},
}

// AllIntervals lists the catalog in ascending order.
func AllIntervals() []Interval {
	out := make([]Interval, intervalCount)
	for i := range out {
		out[i] = Interval(i)
	}
	return out
}

// LookupInterval finds the catalog interval spanning the given number of
// diatonic steps and semitones.
func LookupInterval(steps, semitones int) (Interval, bool) {
	for i, info := range intervals {
		if info.steps == steps && info.semitones == semitones {
			return Interval(i), true
		}
	}
	return 0, false
}

func (i Interval) info() intervalInfo {
	if i >= intervalCount {
		return intervalInfo{name: "unknown interval", short: "?"}
	}
	return intervals[i]
}

// Semitones returns the chromatic size of the interval.
func (i Interval) Semitones() int { return i.info().semitones }

// Steps returns the diatonic size of the interval (0 for a unison, 7 for an octave).
func (i Interval) Steps() int { return i.info().steps }

// Short returns the abbreviated label, e.g. "m3".
func (i Interval) Short() string { return i.info().short }

func (i Interval) String() string { return i.info().name }
