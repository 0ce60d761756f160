package resolve_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"kord/internal/chord"
	"kord/internal/pitch"
	"kord/internal/resolve"
)

func names(chords []chord.Chord) []string {
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.PreciseName()
	}
	return out
}

func TestMajorTriadRanksFirst(t *testing.T) {
	got, err := resolve.FromPitchClasses([]pitch.Class{pitch.C, pitch.E, pitch.G})
	if err != nil {
		t.Fatalf("FromPitchClasses returned error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	if got[0].Name() != "C" {
		t.Fatalf("unexpected top candidate: %s (all %v)", got[0], names(got))
	}
	if len(got) > resolve.DefaultLimit {
		t.Fatalf("too many candidates: %d", len(got))
	}
}

func TestTopCandidates(t *testing.T) {
	tests := []struct {
		classes []pitch.Class
		want    string
	}{
		{[]pitch.Class{pitch.C, pitch.E, pitch.G, pitch.ASharp}, "C7"},
		{[]pitch.Class{pitch.C, pitch.E, pitch.G, pitch.B}, "Cmaj7"},
		{[]pitch.Class{pitch.A, pitch.C, pitch.E}, "Am"},
		{[]pitch.Class{pitch.G, pitch.E, pitch.C}, "C"},
		{[]pitch.Class{pitch.C, pitch.C, pitch.E, pitch.G}, "C"},
	}
	for _, tt := range tests {
		got, err := resolve.FromPitchClasses(tt.classes)
		if err != nil {
			t.Fatalf("FromPitchClasses(%v) returned error: %v", tt.classes, err)
		}
		if got[0].Name() != tt.want {
			t.Fatalf("unexpected top candidate for %v: got %s want %s", tt.classes, got[0], tt.want)
		}
	}
}

func TestEmptyInputIsNotAnError(t *testing.T) {
	got, err := resolve.FromPitchClasses(nil)
	if err != nil {
		t.Fatalf("FromPitchClasses returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty, non-nil result, got %v", got)
	}
}

func TestInvalidClass(t *testing.T) {
	_, err := resolve.FromPitchClasses([]pitch.Class{pitch.C, 12})
	var resolveErr *resolve.ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected ResolveError, got %v", err)
	}
}

func TestNearMissesFollowExactMatches(t *testing.T) {
	r := resolve.New(resolve.Options{Limit: 32})
	got, err := r.Resolve([]pitch.Class{pitch.C, pitch.E, pitch.G})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Fatalf("candidates not ordered by distance at %d: %d after %d", i, got[i].Distance, got[i-1].Distance)
		}
	}
	if !got[0].Exact() || got[len(got)-1].Exact() {
		t.Fatalf("expected exact matches first and near misses last")
	}
}

func TestDedupeKeepsFirstSpelling(t *testing.T) {
	r := resolve.New(resolve.Options{Limit: 32})
	got, err := r.Resolve([]pitch.Class{pitch.C, pitch.D, pitch.E, pitch.G})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	var list []string
	for _, c := range got {
		list = append(list, c.Chord.Name())
	}
	if !slices.Contains(list, "C(add2)") {
		t.Fatalf("expected C(add2) in %v", list)
	}
	if slices.Contains(list, "C(add9)") {
		t.Fatalf("C(add9) spells the same tones as C(add2) and should be dropped: %v", list)
	}
}

func TestResolvingTopCandidateIsStable(t *testing.T) {
	inputs := [][]pitch.Class{
		{pitch.C, pitch.E, pitch.G},
		{pitch.C, pitch.DSharp, pitch.FSharp, pitch.ASharp},
		{pitch.D, pitch.F, pitch.A, pitch.C},
		{pitch.C, pitch.CSharp, pitch.D},
		{pitch.E, pitch.GSharp, pitch.B, pitch.D, pitch.FSharp},
	}
	for _, input := range inputs {
		first, err := resolve.FromPitchClasses(input)
		if err != nil {
			t.Fatalf("FromPitchClasses returned error: %v", err)
		}
		set, err := first[0].Classes()
		if err != nil {
			t.Fatalf("Classes returned error: %v", err)
		}
		again, err := resolve.FromPitchClasses(set.Classes())
		if err != nil {
			t.Fatalf("FromPitchClasses returned error: %v", err)
		}
		if again[0].PreciseName() != first[0].PreciseName() {
			t.Fatalf("top candidate for %v moved: %s then %s", input, first[0], again[0])
		}
	}
}

func TestDeterministicAcrossCallsAndWorkers(t *testing.T) {
	input := []pitch.Class{pitch.D, pitch.FSharp, pitch.A, pitch.C, pitch.E}
	want, err := resolve.FromPitchClasses(input)
	if err != nil {
		t.Fatalf("FromPitchClasses returned error: %v", err)
	}

	sequential, err := resolve.New(resolve.Options{Workers: 1}).Resolve(input)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	for i, c := range sequential {
		if c.Chord.PreciseName() != want[i].PreciseName() {
			t.Fatalf("sequential result differs at %d: %s vs %s", i, c.Chord, want[i])
		}
	}

	var wg sync.WaitGroup
	results := make([][]string, 8)
	errs := make([]error, 8)
	wg.Add(len(results))
	for i := range results {
		go func() {
			defer wg.Done()
			got, err := resolve.FromPitchClasses(input)
			results[i], errs[i] = names(got), err
		}()
	}
	wg.Wait()
	for i := range results {
		if errs[i] != nil {
			t.Fatalf("concurrent call %d returned error: %v", i, errs[i])
		}
		if !slices.Equal(results[i], names(want)) {
			t.Fatalf("concurrent call %d differs: %v vs %v", i, results[i], names(want))
		}
	}
}

func TestLimit(t *testing.T) {
	got, err := resolve.New(resolve.Options{Limit: 3}).Resolve([]pitch.Class{pitch.C, pitch.E, pitch.G})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected candidate count: %d", len(got))
	}
}

func TestFromNotesInfersSlash(t *testing.T) {
	notes := []pitch.Note{
		pitch.MustNote(pitch.LetterC, 0, 4),
		pitch.MustNote(pitch.LetterE, 0, 3),
		pitch.MustNote(pitch.LetterG, 0, 3),
	}
	got, err := resolve.FromNotes(notes)
	if err != nil {
		t.Fatalf("FromNotes returned error: %v", err)
	}
	if got[0].Name() != "C/E" {
		t.Fatalf("unexpected top candidate: %s", got[0])
	}
	root, err := resolve.FromNotes(notes[:1])
	if err != nil {
		t.Fatalf("FromNotes returned error: %v", err)
	}
	if _, ok := root[0].Slash(); ok && root[0].Root().Class() == pitch.C {
		t.Fatalf("root-position candidate should not carry a slash: %s", root[0])
	}
}

func TestAlternateRootsSurviveDedupe(t *testing.T) {
	tests := []struct {
		classes []pitch.Class
		want    []string
		dropped []string
	}{
		{[]pitch.Class{pitch.A, pitch.C, pitch.E, pitch.G}, []string{"C(add6)", "Am7"}, []string{"C(add13)", "Am(♯13)"}},
		{[]pitch.Class{pitch.C, pitch.DSharp, pitch.G, pitch.ASharp}, []string{"Cm7"}, []string{"Cm(♯13)"}},
	}
	r := resolve.New(resolve.Options{Limit: 32})
	for _, tt := range tests {
		got, err := r.Resolve(tt.classes)
		if err != nil {
			t.Fatalf("Resolve(%v) returned error: %v", tt.classes, err)
		}
		var list []string
		for _, c := range got {
			list = append(list, c.Chord.Name())
		}
		for _, name := range tt.want {
			if !slices.Contains(list, name) {
				t.Fatalf("expected %s for %v, got %v", name, tt.classes, list)
			}
		}
		for _, name := range tt.dropped {
			if slices.Contains(list, name) {
				t.Fatalf("%s duplicates a simpler spelling for %v: %v", name, tt.classes, list)
			}
		}
	}
}

func TestNoTwoCandidatesShareRootAndClasses(t *testing.T) {
	inputs := [][]pitch.Class{
		{pitch.C, pitch.E, pitch.G, pitch.ASharp},
		{pitch.D, pitch.F, pitch.A, pitch.C},
		{pitch.C, pitch.E, pitch.G, pitch.A},
		{pitch.C, pitch.DSharp, pitch.FSharp, pitch.ASharp},
	}
	r := resolve.New(resolve.Options{Limit: 32})
	for _, input := range inputs {
		got, err := r.Resolve(input)
		if err != nil {
			t.Fatalf("Resolve(%v) returned error: %v", input, err)
		}
		for i := range got {
			for j := i + 1; j < len(got); j++ {
				a, b := got[i], got[j]
				if a.Chord.Root().Class() == b.Chord.Root().Class() && a.Classes == b.Classes {
					t.Fatalf("%v: %s and %s share root and pitch classes %s", input, a.Chord.Name(), b.Chord.Name(), a.Classes)
				}
			}
		}
	}
}

func TestModifiersBeatEquivalentExtensions(t *testing.T) {
	got, err := resolve.New(resolve.Options{Limit: 32}).Resolve([]pitch.Class{pitch.C, pitch.E, pitch.G, pitch.ASharp})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got[0].Chord.Name() != "C7" {
		t.Fatalf("unexpected top candidate: %s", got[0].Chord.Name())
	}
	for _, c := range got {
		if c.Chord.Name() == "C(♯13)" {
			t.Fatalf("C(♯13) spells C7 and should be dropped")
		}
	}
}
