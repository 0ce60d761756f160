package scale

import "kord/internal/pitch"

// Kind enumerates the named scales.
type Kind uint8

const (
	Major Kind = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
	WholeTone
	Chromatic
	DiminishedWholeHalf
	DiminishedHalfWhole
	MajorPentatonic
	MinorPentatonic
	Blues

	kindCount
)

type kindInfo struct {
	name        string
	description string
	intervals   []pitch.Interval
}

var kinds = [kindCount]kindInfo{
	Major: {
		name:        "major",
		description: "major scale, ionian mode parent",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MajorThird, pitch.PerfectFourth,
			pitch.PerfectFifth, pitch.MajorSixth, pitch.MajorSeventh,
		},
	},
	NaturalMinor: {
		name:        "natural minor",
		description: "natural minor scale, aeolian mode parent",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MinorThird, pitch.PerfectFourth,
			pitch.PerfectFifth, pitch.MinorSixth, pitch.MinorSeventh,
		},
	},
	HarmonicMinor: {
		name:        "harmonic minor",
		description: "harmonic minor scale, raised seventh degree",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MinorThird, pitch.PerfectFourth,
			pitch.PerfectFifth, pitch.MinorSixth, pitch.MajorSeventh,
		},
	},
	MelodicMinor: {
		name:        "melodic minor",
		description: "melodic minor scale, raised sixth and seventh degrees",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MinorThird, pitch.PerfectFourth,
			pitch.PerfectFifth, pitch.MajorSixth, pitch.MajorSeventh,
		},
	},
	WholeTone: {
		name:        "whole tone",
		description: "whole tone scale, all whole steps",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MajorThird,
			pitch.AugmentedFourth, pitch.AugmentedFifth, pitch.AugmentedSixth,
		},
	},
	Chromatic: {
		name:        "chromatic",
		description: "chromatic scale, all twelve semitones",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MinorSecond, pitch.MajorSecond, pitch.MinorThird,
			pitch.MajorThird, pitch.PerfectFourth, pitch.AugmentedFourth, pitch.PerfectFifth,
			pitch.MinorSixth, pitch.MajorSixth, pitch.MinorSeventh, pitch.MajorSeventh,
		},
	},
	DiminishedWholeHalf: {
		name:        "diminished whole-half",
		description: "diminished scale, whole-half pattern, fully diminished seventh chord parent",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MinorThird, pitch.PerfectFourth,
			pitch.DiminishedFifth, pitch.MinorSixth, pitch.DiminishedSeventh, pitch.MajorSeventh,
		},
	},
	DiminishedHalfWhole: {
		name:        "diminished half-whole",
		description: "diminished scale, half-whole pattern, dominant 7♭9 chord parent",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MinorSecond, pitch.MinorThird, pitch.MajorThird,
			pitch.AugmentedFourth, pitch.PerfectFifth, pitch.MajorSixth, pitch.MinorSeventh,
		},
	},
	MajorPentatonic: {
		name:        "major pentatonic",
		description: "major pentatonic scale, five-note major scale without 4th and 7th",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MajorSecond, pitch.MajorThird, pitch.PerfectFifth, pitch.MajorSixth,
		},
	},
	MinorPentatonic: {
		name:        "minor pentatonic",
		description: "minor pentatonic scale, five-note minor scale without 2nd and 6th",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MinorThird, pitch.PerfectFourth, pitch.PerfectFifth, pitch.MinorSeventh,
		},
	},
	Blues: {
		name:        "blues",
		description: "blues scale, minor pentatonic with added ♯4 (blue note)",
		intervals: []pitch.Interval{
			pitch.PerfectUnison, pitch.MinorThird, pitch.PerfectFourth,
			pitch.AugmentedFourth, pitch.PerfectFifth, pitch.MinorSeventh,
		},
	},
}

// Kinds lists every scale kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kindInfo{name: "unknown scale"}
	}
	return kinds[k]
}

// Intervals returns the scale degrees above the root. The slice is shared.
func (k Kind) Intervals() []pitch.Interval { return k.info().intervals }

// Description is a one-line human summary.
func (k Kind) Description() string { return k.info().description }

func (k Kind) String() string { return k.info().name }
