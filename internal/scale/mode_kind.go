package scale

import (
	"fmt"
	"sync"

	"kord/internal/pitch"
)

// ModeKind enumerates the modes of the major, harmonic minor and melodic
// minor scales.
type ModeKind uint8

const (
	Ionian ModeKind = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	LocrianNatural6
	IonianSharp5
	DorianSharp4
	PhrygianDominant
	LydianSharp2
	Ultralocrian
	DorianFlat2
	LydianAugmented
	LydianDominant
	MixolydianFlat6
	LocrianNatural2
	Altered

	modeCount
)

type modeInfo struct {
	name        string
	description string
	parent      Kind
	degree      int
}

var modes = [modeCount]modeInfo{
	Ionian:           {"ionian", "ionian, 1st mode of major scale, major scale", Major, 1},
	Dorian:           {"dorian", "dorian, 2nd mode of major scale, minor with raised 6th", Major, 2},
	Phrygian:         {"phrygian", "phrygian, 3rd mode of major scale, minor with lowered 2nd", Major, 3},
	Lydian:           {"lydian", "lydian, 4th mode of major scale, major with raised 4th", Major, 4},
	Mixolydian:       {"mixolydian", "mixolydian, 5th mode of major scale, major with lowered 7th", Major, 5},
	Aeolian:          {"aeolian", "aeolian, 6th mode of major scale, natural minor", Major, 6},
	Locrian:          {"locrian", "locrian, 7th mode of major scale, half-diminished chord scale", Major, 7},
	LocrianNatural6:  {"locrian ♮6", "locrian ♮6, 2nd mode of harmonic minor, m7♭5(♮13) color", HarmonicMinor, 2},
	IonianSharp5:     {"ionian ♯5", "ionian ♯5, 3rd mode of harmonic minor, augmented major", HarmonicMinor, 3},
	DorianSharp4:     {"dorian ♯4", "dorian ♯4, 4th mode of harmonic minor, minor with lydian bite", HarmonicMinor, 4},
	PhrygianDominant: {"phrygian dominant", "phrygian dominant, 5th mode of harmonic minor, spanish phrygian", HarmonicMinor, 5},
	LydianSharp2:     {"lydian ♯2", "lydian ♯2, 6th mode of harmonic minor, bright and exotic", HarmonicMinor, 6},
	Ultralocrian:     {"ultralocrian", "ultralocrian, 7th mode of harmonic minor, very unstable and dark", HarmonicMinor, 7},
	DorianFlat2:      {"dorian ♭2", "dorian ♭2, 2nd mode of melodic minor, phrygian ♮6", MelodicMinor, 2},
	LydianAugmented:  {"lydian augmented", "lydian augmented, 3rd mode of melodic minor, lydian ♯5", MelodicMinor, 3},
	LydianDominant:   {"lydian dominant", "lydian dominant, 4th mode of melodic minor, acoustic scale, dominant with ♯11", MelodicMinor, 4},
	MixolydianFlat6:  {"mixolydian ♭6", "mixolydian ♭6, 5th mode of melodic minor, aeolian dominant", MelodicMinor, 5},
	LocrianNatural2:  {"locrian ♮2", "locrian ♮2, 6th mode of melodic minor, half-diminished ♮2", MelodicMinor, 6},
	Altered:          {"altered", "altered, 7th mode of melodic minor, super locrian, V7alt scale", MelodicMinor, 7},
}

// modeIntervals rotates each parent scale to the mode's starting degree and
// respells the result as intervals above the new root.
var modeIntervals = sync.OnceValue(func() [modeCount][]pitch.Interval {
	var out [modeCount][]pitch.Interval
	for m := range modeCount {
		info := modes[m]
		parent := info.parent.Intervals()
		start := info.degree - 1
		base := parent[start].Semitones()
		ivs := make([]pitch.Interval, len(parent))
		for i := range parent {
			semis := (parent[(start+i)%len(parent)].Semitones() - base + 12) % 12
			iv, ok := pitch.LookupInterval(i, semis)
			if !ok {
				panic(fmt.Sprintf("mode %s: no interval for %d steps and %d semitones", info.name, i, semis))
			}
			ivs[i] = iv
		}
		out[m] = ivs
	}
	return out
})

// ModeKinds lists every mode in declaration order.
func ModeKinds() []ModeKind {
	out := make([]ModeKind, modeCount)
	for i := range out {
		out[i] = ModeKind(i)
	}
	return out
}

func (k ModeKind) info() modeInfo {
	if k >= modeCount {
		return modeInfo{name: "unknown mode", parent: Major, degree: 1}
	}
	return modes[k]
}

// Intervals returns the mode's degrees above its root.
func (k ModeKind) Intervals() []pitch.Interval {
	if k >= modeCount {
		return nil
	}
	return modeIntervals()[k]
}

// Parent returns the scale the mode is drawn from.
func (k ModeKind) Parent() Kind { return k.info().parent }

// Degree returns the 1-based degree of the parent scale the mode starts on.
func (k ModeKind) Degree() int { return k.info().degree }

func (k ModeKind) Description() string { return k.info().description }

func (k ModeKind) String() string { return k.info().name }
