// Package resolve infers chord candidates from an unordered set of pitch
// classes by enumerating every root, known modifier set, one-off modifier and
// likely extension set, then ranking the results deterministically.
package resolve

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"kord/internal/chord"
	"kord/internal/modifier"
	"kord/internal/pitch"
)

const (
	// DefaultLimit bounds the number of returned candidates.
	DefaultLimit = 8
	// MaxLimit is the largest accepted limit.
	MaxLimit = 32
)

// ResolveError reports a broken internal invariant or an invalid input class.
type ResolveError struct {
	Msg string
	Err error
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve: %s: %v", e.Msg, e.Err)
	}
	return "resolve: " + e.Msg
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Candidate is a ranked chord interpretation. Distance is the size of the
// symmetric difference between the chord's pitch classes and the input; zero
// means an exact match.
type Candidate struct {
	Chord    chord.Chord
	Classes  pitch.ClassSet
	Distance int

	name  string
	order int
}

// Exact reports whether the candidate covers the input exactly.
func (c Candidate) Exact() bool { return c.Distance == 0 }

func (c Candidate) complexity() int {
	return c.Chord.Modifiers().Len() + c.Chord.Extensions().Len()
}

// Options tunes a Resolver.
type Options struct {
	// Limit caps the result size; zero means DefaultLimit.
	Limit int
	// Workers is the number of goroutines enumerating roots; zero means one
	// per root.
	Workers int
}

// Resolver ranks chord candidates for pitch-class sets. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	limit   int
	workers int
}

// New builds a Resolver, clamping options to their valid ranges.
func New(opts Options) *Resolver {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)
	workers := opts.Workers
	if workers <= 0 || workers > len(pitch.AllClasses()) {
		workers = len(pitch.AllClasses())
	}
	return &Resolver{limit: limit, workers: workers}
}

var defaultResolver = New(Options{})

// FromPitchClasses returns up to DefaultLimit chords for the classes, best
// first. Duplicated input classes are ignored; an empty input yields an empty
// result.
func FromPitchClasses(classes []pitch.Class) ([]chord.Chord, error) {
	candidates, err := defaultResolver.Resolve(classes)
	if err != nil {
		return nil, err
	}
	out := make([]chord.Chord, len(candidates))
	for i, c := range candidates {
		out[i] = c.Chord
	}
	return out, nil
}

// FromNotes resolves octave-qualified notes. When the lowest sounding note
// is not a candidate's root it becomes that candidate's slash bass.
func FromNotes(notes []pitch.Note) ([]chord.Chord, error) {
	candidates, err := defaultResolver.ResolveNotes(notes)
	if err != nil {
		return nil, err
	}
	out := make([]chord.Chord, len(candidates))
	for i, c := range candidates {
		out[i] = c.Chord
	}
	return out, nil
}

// ResolveNotes is Resolve with slash-bass inference from the lowest note.
func (r *Resolver) ResolveNotes(notes []pitch.Note) ([]Candidate, error) {
	if len(notes) == 0 {
		return []Candidate{}, nil
	}
	classes := make([]pitch.Class, len(notes))
	for i, n := range notes {
		classes[i] = n.Class()
	}
	candidates, err := r.Resolve(classes)
	if err != nil {
		return nil, err
	}
	bass := slices.MinFunc(notes, pitch.Compare)
	for i, c := range candidates {
		if c.Chord.Root().Class() != bass.Class() {
			candidates[i].Chord = c.Chord.WithSlash(bass)
			candidates[i].name = candidates[i].Chord.Name()
		}
	}
	return candidates, nil
}

// Resolve ranks candidates for classes by distance, then by the number of
// modifiers and extensions, then by root class, then by catalog order, then
// by name.
func (r *Resolver) Resolve(classes []pitch.Class) ([]Candidate, error) {
	var input pitch.ClassSet
	for _, c := range classes {
		if !c.Valid() {
			return nil, &ResolveError{Msg: fmt.Sprintf("invalid pitch class %d", c)}
		}
		input = input.With(c)
	}
	return r.ResolveSet(input)
}

// ResolveSet is Resolve for an already collected set.
func (r *Resolver) ResolveSet(input pitch.ClassSet) ([]Candidate, error) {
	if input.Empty() {
		return []Candidate{}, nil
	}

	roots := pitch.AllClasses()
	perRoot := make([][]Candidate, len(roots))
	errs := make([]error, len(roots))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(r.workers)
	for range r.workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				perRoot[i], errs[i] = enumerateRoot(roots[i].Note(pitch.DefaultOctave), input)
			}
		}()
	}
	for i := range roots {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []Candidate
	for i := range roots {
		if errs[i] != nil {
			return nil, errs[i]
		}
		all = append(all, perRoot[i]...)
	}

	slices.SortStableFunc(all, compareCandidates)
	return r.dedupe(all), nil
}

// enumerateRoot walks the catalogs for one root. Candidates that collapse to
// an invalid modifier set are skipped.
func enumerateRoot(root pitch.Note, input pitch.ClassSet) ([]Candidate, error) {
	known := modifier.KnownSets()
	oneOffs := modifier.OneOffSets()
	extSets := modifier.LikelyExtensionSets()

	out := make([]Candidate, 0, len(known)*len(oneOffs)*len(extSets))
	for ki, mods := range known {
		for oi, extra := range oneOffs {
			for ei, exts := range extSets {
				c := chord.New(root).
					WithModifiers(mods).
					WithModifiers(extra).
					WithExtensions(exts).
					Canonical()
				if c.Validate() != nil {
					continue
				}
				set, err := c.Classes()
				if err != nil {
					return nil, &ResolveError{Msg: fmt.Sprintf("tones of %s", c.Name()), Err: err}
				}
				out = append(out, Candidate{
					Chord:    c,
					Classes:  set,
					Distance: set.Difference(input),
					name:     c.Name(),
					order:    catalogOrder(ei, ki, oi, len(known), len(oneOffs)),
				})
			}
		}
	}
	return out, nil
}

// catalogOrder ranks a catalog combination. The extension set leads, so a
// known modifier set beats an extension that spells the same tones; within
// one extension set the known and one-off tables keep their listed order.
func catalogOrder(extIndex, knownIndex, oneOffIndex, knownCount, oneOffCount int) int {
	return (extIndex*knownCount+knownIndex)*oneOffCount + oneOffIndex
}

func compareCandidates(a, b Candidate) int {
	return cmp.Or(
		cmp.Compare(a.Distance, b.Distance),
		cmp.Compare(a.complexity(), b.complexity()),
		cmp.Compare(a.Chord.Root().Class(), b.Chord.Root().Class()),
		cmp.Compare(a.order, b.order),
		strings.Compare(a.name, b.name),
	)
}

type dedupeKey struct {
	root    pitch.Class
	classes pitch.ClassSet
}

// dedupe keeps the first candidate for each root and pitch-class set. Input
// must be sorted, so the survivor is the simplest spelling earliest in the
// catalogs. Different roots over the same classes are kept.
func (r *Resolver) dedupe(sorted []Candidate) []Candidate {
	seen := make(map[dedupeKey]struct{}, r.limit)
	out := make([]Candidate, 0, r.limit)
	for _, c := range sorted {
		key := dedupeKey{root: c.Chord.Root().Class(), classes: c.Classes}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) == r.limit {
			break
		}
	}
	return out
}
