package chord

import (
	"fmt"

	"kord/internal/modifier"
	"kord/internal/pitch"
	"kord/internal/scale"
)

// Family is the named chord shape a modifier set resolves to.
type Family uint8

const (
	Major Family = iota
	Minor
	Major7
	Dominant
	MinorMajor7
	MinorDominant
	DominantSharp11
	Augmented
	AugmentedMajor7
	AugmentedDominant
	HalfDiminished
	Diminished
	DominantFlat9
	DominantSharp9
	Sharp11

	familyCount
)

// Quality is a Family plus the dominant degree for families that stack one.
type Quality struct {
	Family Family
	Degree modifier.Degree
}

type familyInfo struct {
	name        string // %s is replaced by the degree
	description string
	intervals   []pitch.Interval
	candidates  []scale.Candidate
	degreed     bool
}

var (
	triad      = []pitch.Interval{pitch.PerfectUnison, pitch.MajorThird, pitch.PerfectFifth}
	minorTriad = []pitch.Interval{pitch.PerfectUnison, pitch.MinorThird, pitch.PerfectFifth}
)

func with(base []pitch.Interval, extra ...pitch.Interval) []pitch.Interval {
	out := make([]pitch.Interval, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

var families = [familyCount]familyInfo{
	Major: {
		name: "", description: "major",
		intervals: triad,
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Ionian, "Primary major scale - natural fit for major triad"),
			scale.ScaleCandidate(2, scale.MajorPentatonic, "Five-note major sound - safe, consonant choice"),
			scale.ModeCandidate(3, scale.Lydian, "Bright alternative with ♯4 for added color"),
			scale.ModeCandidate(4, scale.Mixolydian, "Major with ♭7 - common in blues and rock"),
		},
	},
	Minor: {
		name: "m", description: "minor",
		intervals: minorTriad,
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Aeolian, "Natural minor - primary choice for minor triads"),
			scale.ScaleCandidate(2, scale.MinorPentatonic, "Five-note minor sound - blues and rock standard"),
			scale.ScaleCandidate(3, scale.Blues, "Minor pentatonic with ♯4 - essential blues scale"),
			scale.ModeCandidate(4, scale.Dorian, "Minor with ♮6 - jazzy, brighter minor sound"),
			scale.ModeCandidate(5, scale.Phrygian, "Minor with ♭2 - exotic, Spanish flavor"),
			scale.ScaleCandidate(6, scale.HarmonicMinor, "Classical minor with ♮7 for strong resolution"),
		},
	},
	Major7: {
		name: "maj7", description: "major 7",
		intervals: with(triad, pitch.MajorSeventh),
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Ionian, "Natural major 7th from major scale"),
			scale.ModeCandidate(2, scale.Lydian, "Bright maj7 sound with ♯4 for modern jazz"),
		},
	},
	Dominant: {
		name: "%s", description: "dominant", degreed: true,
		intervals: with(triad, pitch.MinorSeventh),
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Mixolydian, "Primary dominant scale - major with ♭7"),
			scale.ScaleCandidate(2, scale.Blues, "Essential blues sound over dominant chords"),
			scale.ModeCandidate(3, scale.LydianDominant, "Dominant with ♯11 for sophisticated color"),
			scale.ModeCandidate(4, scale.MixolydianFlat6, "Dominant with ♭13 for darker, minor-leaning sound"),
			scale.ScaleCandidate(5, scale.WholeTone, "Symmetrical scale for augmented dominant color"),
		},
	},
	MinorMajor7: {
		name: "m(maj7)", description: "minor major 7",
		intervals: with(minorTriad, pitch.MajorSeventh),
		candidates: []scale.Candidate{
			scale.ScaleCandidate(1, scale.MelodicMinor, "Source scale for minor-major 7 sound"),
			scale.ScaleCandidate(2, scale.HarmonicMinor, "Alternative with ♮7 and ♭6"),
		},
	},
	MinorDominant: {
		name: "m%s", description: "minor 7", degreed: true,
		intervals: with(minorTriad, pitch.MinorSeventh),
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Dorian, "Classic minor 7 scale - minor with ♮6"),
			scale.ScaleCandidate(2, scale.MinorPentatonic, "Simple, effective minor 7 choice"),
			scale.ScaleCandidate(3, scale.Blues, "Blues flavor over minor 7 chords"),
			scale.ModeCandidate(4, scale.Aeolian, "Natural minor alternative"),
			scale.ModeCandidate(5, scale.Phrygian, "Minor 7 with ♭2 for modal flavor"),
		},
	},
	DominantSharp11: {
		name: "%s(♯11)", description: "dominant sharp 11", degreed: true,
		intervals: with(triad, pitch.MinorSeventh, pitch.AugmentedEleventh),
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.LydianDominant, "Defining scale for dominant ♯11 sound"),
			scale.ModeCandidate(2, scale.Mixolydian, "Basic dominant scale alternative"),
		},
	},
	Augmented: {
		name: "+", description: "augmented",
		intervals: []pitch.Interval{pitch.PerfectUnison, pitch.MajorThird, pitch.AugmentedFifth},
		candidates: []scale.Candidate{
			scale.ScaleCandidate(1, scale.WholeTone, "Symmetrical scale built from augmented triads"),
			scale.ModeCandidate(2, scale.LydianAugmented, "Major with ♯4 and ♯5"),
		},
	},
	AugmentedMajor7: {
		name: "+(maj7)", description: "augmented major 7",
		intervals: []pitch.Interval{pitch.PerfectUnison, pitch.MajorThird, pitch.AugmentedFifth, pitch.MajorSeventh},
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.LydianAugmented, "3rd mode of melodic minor - major 7 with ♯5"),
			scale.ModeCandidate(2, scale.IonianSharp5, "Major with ♯5 from harmonic minor"),
		},
	},
	AugmentedDominant: {
		name: "+%s", description: "augmented dominant", degreed: true,
		intervals: []pitch.Interval{pitch.PerfectUnison, pitch.MajorThird, pitch.AugmentedFifth, pitch.MinorSeventh},
		candidates: []scale.Candidate{
			scale.ScaleCandidate(1, scale.WholeTone, "Primary scale for augmented dominant chords"),
			scale.ModeCandidate(2, scale.LydianDominant, "Can be used with ♯5 alterations"),
		},
	},
	HalfDiminished: {
		name: "m%s(♭5)", description: "half diminished", degreed: true,
		intervals: []pitch.Interval{pitch.PerfectUnison, pitch.MinorThird, pitch.DiminishedFifth, pitch.MinorSeventh},
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Locrian, "Primary half-diminished scale - 7th mode of major"),
			scale.ModeCandidate(2, scale.LocrianNatural2, "Half-diminished with ♮2 - smoother melodic motion"),
			scale.ModeCandidate(3, scale.LocrianNatural6, "Half-diminished with ♮6 from harmonic minor"),
		},
	},
	Diminished: {
		name: "dim", description: "diminished",
		intervals: []pitch.Interval{pitch.PerfectUnison, pitch.MinorThird, pitch.DiminishedFifth, pitch.DiminishedSeventh},
		candidates: []scale.Candidate{
			scale.ScaleCandidate(1, scale.DiminishedWholeHalf, "Symmetrical scale for fully diminished 7th chords"),
			scale.ScaleCandidate(2, scale.DiminishedHalfWhole, "Alternative diminished scale pattern"),
		},
	},
	DominantFlat9: {
		name: "%s(♭9)", description: "dominant flat 9", degreed: true,
		intervals: with(triad, pitch.MinorSeventh, pitch.MinorNinth),
		candidates: []scale.Candidate{
			scale.ScaleCandidate(1, scale.DiminishedHalfWhole, "Primary scale for dominant ♭9 - half-whole pattern"),
			scale.ModeCandidate(2, scale.PhrygianDominant, "Spanish sound with ♭9 and major 3rd"),
		},
	},
	DominantSharp9: {
		name: "%s(♯9)", description: "dominant sharp 9", degreed: true,
		intervals: with(triad, pitch.MinorSeventh, pitch.AugmentedNinth),
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Altered, "Altered dominant scale - all alterations available"),
			scale.ModeCandidate(2, scale.DorianFlat2, "Minor with ♭2 providing ♯9 color"),
		},
	},
	Sharp11: {
		name: "(♯11)", description: "sharp 11",
		intervals: with(triad, pitch.MajorSeventh, pitch.AugmentedEleventh),
		candidates: []scale.Candidate{
			scale.ModeCandidate(1, scale.Lydian, "Major with ♯11 for bright, modern sound"),
			scale.ModeCandidate(2, scale.LydianDominant, "Dominant with ♯11"),
		},
	},
}

// QualityOf resolves a modifier set to its chord quality. Diminished wins
// over everything, then minor, then augmented.
func QualityOf(mods modifier.Set) Quality {
	degree, dominant := mods.DominantDegree()
	q := func(f Family) Quality { return Quality{Family: f, Degree: degree} }

	switch {
	case mods.Has(modifier.Diminished):
		return Quality{Family: Diminished}
	case mods.Has(modifier.Minor):
		switch {
		case mods.Has(modifier.Major7):
			return Quality{Family: MinorMajor7}
		case dominant && mods.Has(modifier.Flat5):
			return q(HalfDiminished)
		case dominant:
			return q(MinorDominant)
		}
		return Quality{Family: Minor}
	case mods.Has(modifier.Augmented5):
		switch {
		case mods.Has(modifier.Major7):
			return Quality{Family: AugmentedMajor7}
		case dominant:
			return q(AugmentedDominant)
		}
		return Quality{Family: Augmented}
	case mods.Has(modifier.Major7):
		return Quality{Family: Major7}
	case dominant:
		switch {
		case mods.Has(modifier.Flat9):
			return q(DominantFlat9)
		case mods.Has(modifier.Sharp9):
			return q(DominantSharp9)
		case mods.Has(modifier.Sharp11):
			return q(DominantSharp11)
		}
		return q(Dominant)
	case mods.Has(modifier.Sharp11) && mods.Len() == 1:
		return Quality{Family: Sharp11}
	}
	return Quality{Family: Major}
}

func (q Quality) info() familyInfo {
	if q.Family >= familyCount {
		return familyInfo{name: "?", description: "unknown"}
	}
	return families[q.Family]
}

// Name is the quality suffix used in chord names, e.g. "m7(♭5)".
func (q Quality) Name() string {
	info := q.info()
	if info.degreed {
		return fmt.Sprintf(info.name, q.Degree)
	}
	return info.name
}

func (q Quality) Description() string { return q.info().description }

// Intervals returns the base chord intervals before dominant stacking,
// alterations and extensions.
func (q Quality) Intervals() []pitch.Interval {
	return with(q.info().intervals)
}

// ScaleCandidates lists scales and modes that fit the quality, best first.
func (q Quality) ScaleCandidates() []scale.Candidate {
	return append([]scale.Candidate(nil), q.info().candidates...)
}

func (q Quality) String() string {
	if name := q.Name(); name != "" {
		return name
	}
	return "major"
}
