package modifier

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnrecognizedCombination marks modifier sets that are neither a known
// set nor a known set plus a single one-off modifier.
var ErrUnrecognizedCombination = errors.New("unrecognized modifier combination")

// KnownSets returns the catalog of modifier combinations that name a chord
// quality. The slice is shared; callers must not modify it.
var KnownSets = sync.OnceValue(func() []Set {
	sets := []Set{
		NewSet(),
		NewSet(Minor),
		NewSet(Major7),
	}
	for _, d := range Degrees {
		sets = append(sets, NewSet(Dominant(d)))
	}
	sets = append(sets, NewSet(Minor, Major7))
	for _, d := range Degrees {
		sets = append(sets, NewSet(Minor, Dominant(d)))
	}
	for _, d := range Degrees {
		sets = append(sets, NewSet(Sharp11, Dominant(d)))
	}
	sets = append(sets, NewSet(Augmented5), NewSet(Augmented5, Major7))
	for _, d := range Degrees {
		sets = append(sets, NewSet(Augmented5, Dominant(d)))
	}
	for _, d := range Degrees {
		sets = append(sets, NewSet(Minor, Flat5, Dominant(d)))
	}
	sets = append(sets, NewSet(Diminished))
	for _, d := range Degrees {
		sets = append(sets, NewSet(Flat9, Dominant(d)))
	}
	for _, d := range Degrees {
		sets = append(sets, NewSet(Sharp9, Dominant(d)))
	}
	return sets
})

// OneOffSets returns the single modifiers that may be layered on top of any
// known set, led by the empty set.
var OneOffSets = sync.OnceValue(func() []Set {
	return []Set{
		NewSet(),
		NewSet(Sharp11),
		NewSet(Augmented5),
		NewSet(Flat5),
		NewSet(Flat9),
		NewSet(Sharp9),
	}
})

// LikelyExtensionSets returns the extension combinations tried by the
// reverse resolver, led by the empty set.
var LikelyExtensionSets = sync.OnceValue(func() []ExtensionSet {
	return []ExtensionSet{
		NewExtensionSet(),
		NewExtensionSet(Sus2),
		NewExtensionSet(Sus4),
		NewExtensionSet(Add2),
		NewExtensionSet(Add4),
		NewExtensionSet(Add6),
		NewExtensionSet(Add9),
		NewExtensionSet(Add11),
		NewExtensionSet(Add13),
		NewExtensionSet(Flat11),
		NewExtensionSet(Flat13),
		NewExtensionSet(Sharp13),
	}
})

var knownIndex = sync.OnceValue(func() map[Set]struct{} {
	idx := make(map[Set]struct{}, len(KnownSets()))
	for _, s := range KnownSets() {
		idx[s] = struct{}{}
	}
	return idx
})

// IsKnown reports whether s is exactly one of the known sets.
func IsKnown(s Set) bool {
	_, ok := knownIndex()[s]
	return ok
}

// Validate accepts s when it is a known set, or a known set plus exactly one
// one-off modifier.
func Validate(s Set) error {
	if IsKnown(s) {
		return nil
	}
	for _, extra := range OneOffSets() {
		if extra.Len() != 1 || s&extra == 0 {
			continue
		}
		if IsKnown(s.Minus(extra)) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnrecognizedCombination, s)
}
