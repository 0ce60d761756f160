// Package chord builds validated chord values from parsed symbols or
// programmatic construction and derives their tones and canonical names.
package chord

import (
	"fmt"
	"slices"
	"strings"

	"kord/internal/modifier"
	"kord/internal/pitch"
	"kord/internal/scale"
)

// Chord is an immutable chord value. The zero value is not useful; start
// from New or Build.
type Chord struct {
	root      pitch.Note
	mods      modifier.Set
	exts      modifier.ExtensionSet
	slash     pitch.Note
	hasSlash  bool
	inversion int
}

// New returns the major triad on root.
func New(root pitch.Note) Chord {
	return Chord{root: root}
}

func (c Chord) Root() pitch.Note { return c.root }

func (c Chord) Modifiers() modifier.Set { return c.mods }

func (c Chord) Extensions() modifier.ExtensionSet { return c.exts }

// Slash returns the explicit bass note, if any.
func (c Chord) Slash() (pitch.Note, bool) { return c.slash, c.hasSlash }

func (c Chord) Inversion() int { return c.inversion }

// WithModifier adds m. Augmented5 removes Flat5 and Diminished, and those
// two are ignored while Augmented5 is present.
func (c Chord) WithModifier(m modifier.Modifier) Chord {
	if m == modifier.Augmented5 {
		c.mods = c.mods.Without(modifier.Flat5).Without(modifier.Diminished)
	}
	if (m == modifier.Diminished || m == modifier.Flat5) && c.mods.Has(modifier.Augmented5) {
		return c
	}
	c.mods = c.mods.With(m)
	return c
}

func (c Chord) WithModifiers(mods modifier.Set) Chord {
	for _, m := range mods.Slice() {
		c = c.WithModifier(m)
	}
	return c
}

func (c Chord) WithExtension(e modifier.Extension) Chord {
	c.exts = c.exts.With(e)
	return c
}

func (c Chord) WithExtensions(exts modifier.ExtensionSet) Chord {
	c.exts |= exts
	return c
}

// WithSlash sets the bass note. Only its spelling matters; the octave is
// chosen when tones are computed.
func (c Chord) WithSlash(bass pitch.Note) Chord {
	c.slash = bass.WithOctave(pitch.DefaultOctave)
	c.hasSlash = true
	return c
}

func (c Chord) WithoutSlash() Chord {
	c.slash = pitch.Note{}
	c.hasSlash = false
	return c
}

func (c Chord) WithOctave(o pitch.Octave) Chord {
	c.root = c.root.WithOctave(o)
	return c
}

func (c Chord) WithInversion(n int) Chord {
	c.inversion = max(n, 0)
	return c
}

func (c Chord) withoutModifier(m modifier.Modifier) Chord {
	c.mods = c.mods.Without(m)
	return c
}

func (c Chord) withoutExtension(e modifier.Extension) Chord {
	c.exts = c.exts.Without(e)
	return c
}

// Canonical drops extensions already implied by the dominant degree and
// modifiers swallowed by Diminished.
func (c Chord) Canonical() Chord {
	if degree, ok := c.mods.DominantDegree(); ok {
		switch degree {
		case modifier.Nine:
			c = c.withoutExtension(modifier.Add9)
		case modifier.Eleven:
			c = c.withoutExtension(modifier.Add9).withoutExtension(modifier.Add11)
		case modifier.Thirteen:
			c = c.withoutExtension(modifier.Add9).withoutExtension(modifier.Add11).withoutExtension(modifier.Add13)
		}
	}
	if c.mods.Has(modifier.Diminished) {
		c = c.withoutModifier(modifier.Minor).withoutModifier(modifier.Flat5).withoutModifier(modifier.Augmented5)
	}
	return c
}

// Validate checks the modifier set against the catalog.
func (c Chord) Validate() error {
	return modifier.Validate(c.mods)
}

func (c Chord) Quality() Quality { return QualityOf(c.mods) }

func (c Chord) Description() string { return c.Quality().Description() }

func (c Chord) ScaleCandidates() []scale.Candidate { return c.Quality().ScaleCandidates() }

// Intervals returns the sorted, deduplicated intervals above the root.
func (c Chord) Intervals() []pitch.Interval {
	out := c.Quality().Intervals()
	mods, exts := c.mods, c.exts

	if degree, ok := mods.DominantDegree(); ok {
		switch degree {
		case modifier.Nine:
			out = append(out, pitch.MajorNinth)
		case modifier.Eleven:
			out = append(out, pitch.MajorNinth, pitch.PerfectEleventh)
		case modifier.Thirteen:
			out = append(out, pitch.MajorNinth, pitch.PerfectEleventh, pitch.MajorThirteenth)
		}
	}

	if mods.Has(modifier.Flat5) {
		out = replaceAt(out, 2, pitch.DiminishedFifth)
	}
	if mods.Has(modifier.Augmented5) {
		out = replaceAt(out, 2, pitch.AugmentedFifth)
	}
	if mods.Has(modifier.Flat9) {
		out = append(out, pitch.MinorNinth)
	}
	if mods.Has(modifier.Sharp9) {
		out = append(out, pitch.AugmentedNinth)
	}
	if mods.Has(modifier.Sharp11) {
		out = append(out, pitch.AugmentedEleventh)
	}

	if exts.Has(modifier.Sus2) {
		out = replaceAt(out, 1, pitch.MajorSecond)
	}
	if exts.Has(modifier.Sus4) {
		out = replaceAt(out, 1, pitch.PerfectFourth)
	}
	extIntervals := [...]struct {
		ext modifier.Extension
		iv  pitch.Interval
	}{
		{modifier.Flat11, pitch.DiminishedEleventh},
		{modifier.Flat13, pitch.MinorThirteenth},
		{modifier.Sharp13, pitch.AugmentedThirteenth},
		{modifier.Add2, pitch.MajorSecond},
		{modifier.Add4, pitch.PerfectFourth},
		{modifier.Add6, pitch.MajorSixth},
		{modifier.Add9, pitch.MajorNinth},
		{modifier.Add11, pitch.PerfectEleventh},
		{modifier.Add13, pitch.MajorThirteenth},
	}
	for _, ei := range extIntervals {
		if exts.Has(ei.ext) {
			out = append(out, ei.iv)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// replaceAt removes the interval at index i and appends iv, so the caller's
// later sort puts iv in place.
func replaceAt(ivs []pitch.Interval, i int, iv pitch.Interval) []pitch.Interval {
	if i < len(ivs) {
		ivs = slices.Delete(ivs, i, i+1)
	}
	return append(ivs, iv)
}

// TryTones computes the chord tones in ascending order: root plus intervals,
// inverted, with the slash bass first. Duplicate pitch classes collapse to
// their lowest occurrence. It fails when a tone would leave octaves 0..15.
func (c Chord) TryTones() ([]pitch.Note, error) {
	ivs := c.Intervals()
	tones := make([]pitch.Note, 0, len(ivs)+1)
	for _, iv := range ivs {
		n, err := c.root.TryAdd(iv)
		if err != nil {
			return nil, err
		}
		tones = append(tones, n)
	}

	for range c.inversion {
		lowest := tones[0]
		tones = tones[1:]
		top := tones[len(tones)-1]
		for pitch.Compare(lowest, top) < 0 {
			up, err := lowest.TryAdd(pitch.PerfectOctave)
			if err != nil {
				return nil, err
			}
			lowest = up
		}
		tones = append(tones, lowest)
	}

	slices.SortStableFunc(tones, pitch.Compare)

	if c.hasSlash {
		bass, err := placeBass(c.slash, tones[0])
		if err != nil {
			return nil, err
		}
		tones = append([]pitch.Note{bass}, tones...)
	}

	var seen pitch.ClassSet
	out := tones[:0]
	for _, n := range tones {
		if seen.Has(n.Class()) {
			continue
		}
		seen = seen.With(n.Class())
		out = append(out, n)
	}
	return out, nil
}

// placeBass puts the bass within the octave below bottom.
func placeBass(bass, bottom pitch.Note) (pitch.Note, error) {
	floor := bottom.Semitone() - 12
	n := bass.WithOctave(pitch.MinOctave)
	for n.Semitone() < floor {
		up, err := n.TryAdd(pitch.PerfectOctave)
		if err != nil {
			return pitch.Note{}, err
		}
		n = up
	}
	if pitch.Compare(n, bottom) >= 0 {
		return pitch.Note{}, &pitch.OctaveRangeError{Value: -1}
	}
	return n, nil
}

// Tones is TryTones for chords known to fit the octave range; it panics
// otherwise.
func (c Chord) Tones() []pitch.Note {
	tones, err := c.TryTones()
	if err != nil {
		panic(fmt.Sprintf("chord %s: %v", c.PreciseName(), err))
	}
	return tones
}

// Classes returns the pitch-class set of the chord's tones.
func (c Chord) Classes() (pitch.ClassSet, error) {
	tones, err := c.TryTones()
	if err != nil {
		return 0, err
	}
	var set pitch.ClassSet
	for _, n := range tones {
		set = set.With(n.Class())
	}
	return set, nil
}

// Name renders the canonical symbol, e.g. "C7(♭9)/E".
func (c Chord) Name() string {
	quality := c.Quality().Name()
	var b strings.Builder
	b.WriteString(c.root.Name())
	b.WriteString(quality)

	alterations := []struct {
		mod   modifier.Modifier
		text  string
		shown bool
	}{
		{modifier.Flat5, "(♭5)", strings.Contains(quality, "(♭5)")},
		{modifier.Augmented5, "(♯5)", strings.Contains(quality, "+") || strings.Contains(quality, "(♯5)")},
		{modifier.Flat9, "(♭9)", strings.Contains(quality, "(♭9)")},
		{modifier.Sharp9, "(♯9)", strings.Contains(quality, "(♯9)")},
		{modifier.Sharp11, "(♯11)", strings.Contains(quality, "(♯11)")},
	}
	for _, alt := range alterations {
		if c.mods.Has(alt.mod) && !alt.shown {
			b.WriteString(alt.text)
		}
	}
	for _, e := range c.exts.Slice() {
		b.WriteString("(" + e.String() + ")")
	}
	if c.hasSlash {
		b.WriteString("/" + c.slash.Name())
	}
	return b.String()
}

// PreciseName adds the root octave ("@3") when it is not 4 and the
// inversion ("^1") when set.
func (c Chord) PreciseName() string {
	name := c.Name()
	if c.root.Octave() != pitch.DefaultOctave {
		name += "@" + c.root.Octave().String()
	}
	if c.inversion != 0 {
		name += fmt.Sprintf("^%d", c.inversion)
	}
	return name
}

func (c Chord) String() string { return c.PreciseName() }

// Equal reports whether both chords have the same root spelling and octave,
// modifiers, extensions, slash and inversion.
func (c Chord) Equal(other Chord) bool {
	return c == other
}
