package pitch_test

import (
	"errors"
	"testing"

	"kord/internal/pitch"
)

func note(t *testing.T, letter pitch.Letter, acc int, octave pitch.Octave) pitch.Note {
	t.Helper()
	n, err := pitch.NewNote(letter, acc, octave)
	if err != nil {
		t.Fatalf("NewNote returned error: %v", err)
	}
	return n
}

func TestAddIntervalFromC(t *testing.T) {
	c4 := note(t, pitch.LetterC, 0, 4)
	tests := []struct {
		interval pitch.Interval
		want     string
	}{
		{pitch.PerfectUnison, "C4"},
		{pitch.DiminishedSecond, "D𝄫4"},
		{pitch.AugmentedUnison, "C♯4"},
		{pitch.MinorSecond, "D♭4"},
		{pitch.MajorSecond, "D4"},
		{pitch.DiminishedThird, "E𝄫4"},
		{pitch.AugmentedSecond, "D♯4"},
		{pitch.MinorThird, "E♭4"},
		{pitch.MajorThird, "E4"},
		{pitch.DiminishedFourth, "F♭4"},
		{pitch.AugmentedThird, "E♯4"},
		{pitch.PerfectFourth, "F4"},
		{pitch.AugmentedFourth, "F♯4"},
		{pitch.DiminishedFifth, "G♭4"},
		{pitch.PerfectFifth, "G4"},
		{pitch.DiminishedSixth, "A𝄫4"},
		{pitch.AugmentedFifth, "G♯4"},
		{pitch.MinorSixth, "A♭4"},
		{pitch.MajorSixth, "A4"},
		{pitch.DiminishedSeventh, "B𝄫4"},
		{pitch.AugmentedSixth, "A♯4"},
		{pitch.MinorSeventh, "B♭4"},
		{pitch.MajorSeventh, "B4"},
		{pitch.DiminishedOctave, "C♭5"},
		{pitch.AugmentedSeventh, "B♯4"},
		{pitch.PerfectOctave, "C5"},
		{pitch.MinorNinth, "D♭5"},
		{pitch.MajorNinth, "D5"},
		{pitch.AugmentedNinth, "D♯5"},
		{pitch.DiminishedEleventh, "F♭5"},
		{pitch.PerfectEleventh, "F5"},
		{pitch.AugmentedEleventh, "F♯5"},
		{pitch.MinorThirteenth, "A♭5"},
		{pitch.MajorThirteenth, "A5"},
		{pitch.AugmentedThirteenth, "A♯5"},
	}
	for _, tt := range tests {
		if got := c4.Add(tt.interval).String(); got != tt.want {
			t.Fatalf("unexpected C4 + %s: got %q want %q", tt.interval, got, tt.want)
		}
	}
}

func TestAddIntervalOctaveEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		from     pitch.Note
		interval pitch.Interval
		want     string
	}{
		{"flat ninth from B flat", note(t, pitch.LetterB, -1, 4), pitch.MinorNinth, "C♭6"},
		{"flat ninth from B flat 3", note(t, pitch.LetterB, -1, 3), pitch.MinorNinth, "C♭5"},
		{"sharp ninth from A", note(t, pitch.LetterA, 0, 4), pitch.AugmentedNinth, "B♯5"},
		{"augmented seventh from C sharp", note(t, pitch.LetterC, 1, 4), pitch.AugmentedSeventh, "B𝄪4"},
		{"octave from B sharp", note(t, pitch.LetterB, 1, 4), pitch.PerfectOctave, "B♯5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Add(tt.interval).String(); got != tt.want {
				t.Fatalf("unexpected result: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestOctaveArithmeticNeverWraps(t *testing.T) {
	top := pitch.MaxOctave
	if _, err := top.TryAdd(1); err == nil {
		t.Fatal("expected overflow error past octave 15")
	}
	var rangeErr *pitch.OctaveRangeError
	if _, err := pitch.MinOctave.TryAdd(-1); !errors.As(err, &rangeErr) {
		t.Fatalf("expected OctaveRangeError, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on octave overflow")
		}
	}()
	_ = top.Add(1)
}

func TestTryAddReportsOverflow(t *testing.T) {
	high := note(t, pitch.LetterB, 0, pitch.MaxOctave)
	if _, err := high.TryAdd(pitch.MajorNinth); err == nil {
		t.Fatal("expected overflow error")
	}
	if _, err := high.TryAdd(pitch.PerfectUnison); err != nil {
		t.Fatalf("unexpected error for unison: %v", err)
	}
}

func TestClassArithmetic(t *testing.T) {
	if got := pitch.B.Add(1); got != pitch.C {
		t.Fatalf("unexpected B+1: got %s", got)
	}
	if got := pitch.C.Add(-1); got != pitch.B {
		t.Fatalf("unexpected C-1: got %s", got)
	}
	if got := pitch.A.Distance(pitch.C); got != 3 {
		t.Fatalf("unexpected distance A->C: got %d want 3", got)
	}
	if got := note(t, pitch.LetterC, -1, 4).Class(); got != pitch.B {
		t.Fatalf("unexpected class for C flat: got %s", got)
	}
	if got := note(t, pitch.LetterB, 1, 4).Class(); got != pitch.C {
		t.Fatalf("unexpected class for B sharp: got %s", got)
	}
}

func TestClassSet(t *testing.T) {
	set := pitch.NewClassSet(pitch.C, pitch.E, pitch.G, pitch.C)
	if set.Len() != 3 {
		t.Fatalf("unexpected set size: got %d want 3", set.Len())
	}
	other := pitch.NewClassSet(pitch.C, pitch.E, pitch.A)
	if got := set.Difference(other); got != 2 {
		t.Fatalf("unexpected symmetric difference: got %d want 2", got)
	}
	if got := set.String(); got != "{C E G}" {
		t.Fatalf("unexpected set string: %q", got)
	}
}

func TestParseClass(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want pitch.Class
	}{
		{"C", pitch.C}, {"c#", pitch.CSharp}, {"Eb", pitch.DSharp}, {"B♭", pitch.ASharp},
	} {
		got, ok := pitch.ParseClass(tt.in)
		if !ok || got != tt.want {
			t.Fatalf("unexpected class for %q: got %s ok=%v", tt.in, got, ok)
		}
	}
	if _, ok := pitch.ParseClass("H"); ok {
		t.Fatal("expected H to be rejected")
	}
}

func TestMIDIConversion(t *testing.T) {
	n, err := pitch.FromMIDI(60)
	if err != nil {
		t.Fatalf("FromMIDI returned error: %v", err)
	}
	if n.String() != "C4" {
		t.Fatalf("unexpected note for 60: %q", n)
	}
	if n.MIDI() != 60 {
		t.Fatalf("unexpected midi round trip: %d", n.MIDI())
	}
	n, err = pitch.FromMIDI(70)
	if err != nil {
		t.Fatalf("FromMIDI returned error: %v", err)
	}
	if n.String() != "B♭4" {
		t.Fatalf("unexpected note for 70: %q", n)
	}
	if _, err := pitch.FromMIDI(5); err == nil {
		t.Fatal("expected error below C0")
	}
}

func TestLookupInterval(t *testing.T) {
	iv, ok := pitch.LookupInterval(2, 3)
	if !ok || iv != pitch.MinorThird {
		t.Fatalf("unexpected lookup: got %s ok=%v", iv, ok)
	}
	if _, ok := pitch.LookupInterval(2, 9); ok {
		t.Fatal("expected no interval for 2 steps and 9 semitones")
	}
}
