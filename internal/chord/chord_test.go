package chord_test

import (
	"errors"
	"strings"
	"testing"

	"kord/internal/chord"
	"kord/internal/modifier"
	"kord/internal/pitch"
	"kord/internal/scale"
)

func tones(t *testing.T, c chord.Chord) string {
	t.Helper()
	notes, err := c.TryTones()
	if err != nil {
		t.Fatalf("TryTones(%s) returned error: %v", c, err)
	}
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func mustParse(t *testing.T, symbol string) chord.Chord {
	t.Helper()
	c, err := chord.Parse(symbol)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", symbol, err)
	}
	return c
}

func TestChordTones(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"C", "C4 E4 G4"},
		{"Cm", "C4 E♭4 G4"},
		{"Cdim", "C4 E♭4 G♭4 B𝄫4"},
		{"Cm7b5", "C4 E♭4 G♭4 B♭4"},
		{"C+", "C4 E4 G♯4"},
		{"C7#11", "C4 E4 G4 B♭4 F♯5"},
		{"Dm#9", "D4 F4 A4"},
		{"Em(#5)", "E4 G4 B♯4"},
		{"C13", "C4 E4 G4 B♭4 D5 F5 A5"},
		{"C7sus4", "C4 F4 G4 B♭4"},
		{"Csus2", "C4 D4 G4"},
		{"C6", "C4 E4 G4 A4"},
		{"Cmaj9", "C4 E4 G4 B4 D5"},
		{"C7b9", "C4 E4 G4 B♭4 D♭5"},
		{"C@3", "C3 E3 G3"},
		{"C^1", "E4 G4 C5"},
		{"C^2", "G4 C5 E5"},
	}
	for _, tt := range tests {
		if got := tones(t, mustParse(t, tt.symbol)); got != tt.want {
			t.Fatalf("unexpected tones for %q: got %q want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestDuplicatePitchClassesCollapse(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		// E♯ is F, already the minor third.
		{"Dm#9", "D4 F4 A4"},
		// D♯ is E♭.
		{"Cm#9", "C4 E♭4 G4"},
		// F𝄪 is G, already the seventh.
		{"Am7(#13)", "A4 C5 E5 G5"},
	}
	for _, tt := range tests {
		c := mustParse(t, tt.symbol)
		got := tones(t, c)
		if got != tt.want {
			t.Fatalf("unexpected tones for %q: got %q want %q", tt.symbol, got, tt.want)
		}
		set, err := c.Classes()
		if err != nil {
			t.Fatalf("Classes(%q) returned error: %v", tt.symbol, err)
		}
		if set.Len() != len(strings.Fields(got)) {
			t.Fatalf("%q repeats a pitch class: %s has %d classes", tt.symbol, got, set.Len())
		}
	}
}

func TestSlashBassComesFirst(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"C/E", "E3 C4 G4"},
		{"C/G", "G3 C4 E4"},
		// A bass outside the chord is kept as an added tone.
		{"C/D", "D3 C4 E4 G4"},
		{"Am/F#", "F♯4 A4 C5 E5"},
	}
	for _, tt := range tests {
		if got := tones(t, mustParse(t, tt.symbol)); got != tt.want {
			t.Fatalf("unexpected tones for %q: got %q want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		symbol string
		name   string
		desc   string
	}{
		{"C", "C", "major"},
		{"Cm7b5", "Cm7(♭5)", "half diminished"},
		{"Cø", "Cm7(♭5)", "half diminished"},
		{"Bbmaj9", "B♭maj7(add9)", "major 7"},
		{"C7b9", "C7(♭9)", "dominant flat 9"},
		{"C9#11", "C9(♯11)", "dominant sharp 11"},
		{"Dm#9", "Dm(♯9)", "minor"},
		{"Em(#5)", "Em(♯5)", "minor"},
		{"C(#11)", "C(♯11)", "sharp 11"},
		{"C#11", "C♯11", "dominant"},
		{"C+7", "C+7", "augmented dominant"},
		{"C+7b9", "C+7(♭9)", "augmented dominant"},
		{"Cmmaj7", "Cm(maj7)", "minor major 7"},
		{"Co7", "Cdim", "diminished"},
		{"C6/E", "C(add6)/E", "major"},
		{"Eb13(b13)", "E♭13(♭13)", "dominant"},
	}
	for _, tt := range tests {
		c := mustParse(t, tt.symbol)
		if c.Name() != tt.name {
			t.Fatalf("unexpected name for %q: got %q want %q", tt.symbol, c.Name(), tt.name)
		}
		if c.Description() != tt.desc {
			t.Fatalf("unexpected description for %q: got %q want %q", tt.symbol, c.Description(), tt.desc)
		}
	}
}

func TestPreciseName(t *testing.T) {
	c := mustParse(t, "F#dim/A@3^1")
	if got := c.PreciseName(); got != "F♯dim/A@3^1" {
		t.Fatalf("unexpected precise name: %q", got)
	}
	if got := mustParse(t, "G7").PreciseName(); got != "G7" {
		t.Fatalf("unexpected precise name: %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	symbols := []string{
		"C", "Cm7b5", "F#dim/A@3^1", "Bbmaj9", "C7(b9)", "Cm(maj7)", "C+7", "C9(#11)",
		"Dm#9", "Csus2", "C6", "Eb13(b13)", "Gø7", "C(#11)", "A+(maj7)", "Cdimb5",
		"Abm11/Gb", "D7sus4(add13)", "C𝄪m", "G♭♭7",
	}
	for _, symbol := range symbols {
		original := mustParse(t, symbol)
		again := mustParse(t, original.PreciseName())
		if !again.Equal(original) {
			t.Fatalf("round trip of %q via %q changed the chord: %s", symbol, original.PreciseName(), again)
		}
		if tones(t, again) != tones(t, original) {
			t.Fatalf("round trip of %q changed tones", symbol)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		symbol string
		kind   chord.ErrorKind
	}{
		{"C+b5", chord.ConflictingModifiers},
		{"C+dim", chord.ConflictingModifiers},
		{"Cmaj7dim", chord.UnrecognizedModifierCombination},
		{"Cm(maj7)7", chord.UnrecognizedModifierCombination},
		{"C13@15", chord.OctaveOutOfRange},
	}
	for _, tt := range tests {
		_, err := chord.Parse(tt.symbol)
		var buildErr *chord.BuildError
		if !errors.As(err, &buildErr) {
			t.Fatalf("Parse(%q) error = %v, want BuildError", tt.symbol, err)
		}
		if buildErr.Kind != tt.kind {
			t.Fatalf("Parse(%q) kind = %s, want %s", tt.symbol, buildErr.Kind, tt.kind)
		}
	}

	_, err := chord.Parse("Cmaj7dim")
	if !errors.Is(err, chord.ErrUnrecognizedModifiers) || !errors.Is(err, modifier.ErrUnrecognizedCombination) {
		t.Fatalf("unexpected error chain: %v", err)
	}
}

func TestWithModifierAugmentedWins(t *testing.T) {
	c := pitch.MustNote(pitch.LetterC, 0, 4)
	got := chord.New(c).WithModifier(modifier.Flat5).WithModifier(modifier.Augmented5)
	if got.Modifiers() != modifier.NewSet(modifier.Augmented5) {
		t.Fatalf("unexpected modifiers: %s", got.Modifiers())
	}
	got = chord.New(c).WithModifier(modifier.Augmented5).WithModifier(modifier.Diminished)
	if got.Modifiers() != modifier.NewSet(modifier.Augmented5) {
		t.Fatalf("unexpected modifiers: %s", got.Modifiers())
	}
}

func TestQualityOf(t *testing.T) {
	tests := []struct {
		mods modifier.Set
		name string
	}{
		{modifier.NewSet(), ""},
		{modifier.NewSet(modifier.Minor, modifier.Flat5, modifier.Dominant9), "m9(♭5)"},
		{modifier.NewSet(modifier.Minor, modifier.Dominant11), "m11"},
		{modifier.NewSet(modifier.Augmented5, modifier.Dominant13), "+13"},
		{modifier.NewSet(modifier.Sharp9, modifier.Dominant7), "7(♯9)"},
		{modifier.NewSet(modifier.Diminished, modifier.Minor), "dim"},
		{modifier.NewSet(modifier.Sharp11, modifier.Flat5), ""},
	}
	for _, tt := range tests {
		if got := chord.QualityOf(tt.mods).Name(); got != tt.name {
			t.Fatalf("unexpected quality for %s: got %q want %q", tt.mods, got, tt.name)
		}
	}
}

func TestScaleCandidates(t *testing.T) {
	candidates := mustParse(t, "G7").ScaleCandidates()
	if len(candidates) != 5 {
		t.Fatalf("unexpected candidate count: %d", len(candidates))
	}
	first := candidates[0]
	if !first.IsMode || first.Mode != scale.Mixolydian || first.Rank != 1 {
		t.Fatalf("unexpected first candidate: %+v", first)
	}
	notes, err := first.Notes(mustParse(t, "G7").Root())
	if err != nil {
		t.Fatalf("Notes returned error: %v", err)
	}
	if notes[6].Name() != "F" {
		t.Fatalf("unexpected seventh degree: %s", notes[6])
	}
	if got := mustParse(t, "Cm7b5").ScaleCandidates()[0].Mode; got != scale.Locrian {
		t.Fatalf("unexpected half-diminished scale: %s", got)
	}
}

func TestTonesNeverPanicFromParsedInput(t *testing.T) {
	for _, symbol := range []string{"B13@15", "C/D@0", "C@0^9", "Cbm/Cb@0"} {
		c, err := chord.Parse(symbol)
		if err != nil {
			continue
		}
		if _, err := c.TryTones(); err != nil {
			t.Fatalf("built chord %q cannot compute tones: %v", symbol, err)
		}
	}
}
