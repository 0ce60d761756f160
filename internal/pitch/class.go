package pitch

import (
	"math/bits"
	"strings"
)

// Class is one of the twelve pitch classes, independent of spelling and octave.
type Class uint8

const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// ClassCount is the size of the pitch-class space.
const ClassCount = 12

var classNames = [ClassCount]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// preferred spellings used when a class has to become a Note.
var classSpellings = [ClassCount]struct {
	letter     Letter
	accidental int8
}{
	{LetterC, 0}, {LetterD, -1}, {LetterD, 0}, {LetterE, -1}, {LetterE, 0}, {LetterF, 0},
	{LetterG, -1}, {LetterG, 0}, {LetterA, -1}, {LetterA, 0}, {LetterB, -1}, {LetterB, 0},
}

// AllClasses lists the pitch classes in ascending order from C.
func AllClasses() []Class {
	out := make([]Class, ClassCount)
	for i := range out {
		out[i] = Class(i)
	}
	return out
}

func (c Class) String() string {
	if int(c) >= ClassCount {
		return "?"
	}
	return classNames[c]
}

// Valid reports whether c is within the closed range of pitch classes.
func (c Class) Valid() bool {
	return int(c) < ClassCount
}

// Add transposes the class by the given number of semitones, modulo 12.
func (c Class) Add(semitones int) Class {
	return Class(mod12(int(c) + semitones))
}

// Distance returns the ascending semitone distance from c up to other (0..11).
func (c Class) Distance(other Class) int {
	return mod12(int(other) - int(c))
}

// Note spells the class as a Note in the given octave using the preferred
// spelling (C, D♭, D, E♭, E, F, G♭, G, A♭, A, B♭, B).
func (c Class) Note(octave Octave) Note {
	s := classSpellings[mod12(int(c))]
	return Note{letter: s.letter, accidental: s.accidental, octave: octave}
}

// ParseClass accepts the sharp names produced by String as well as the
// preferred flat spellings.
func ParseClass(value string) (Class, bool) {
	trimmed := strings.TrimSpace(value)
	for i, name := range classNames {
		if strings.EqualFold(name, trimmed) {
			return Class(i), true
		}
	}
	for i, s := range classSpellings {
		n := Note{letter: s.letter, accidental: s.accidental}
		if trimmed == n.ASCII() || trimmed == n.Name() {
			return Class(i), true
		}
	}
	return 0, false
}

// ClassSet is an unordered set of pitch classes stored as a 12-bit mask.
type ClassSet uint16

// NewClassSet builds a set from the given classes; duplicates collapse.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns the set with c added.
func (s ClassSet) With(c Class) ClassSet {
	return s | 1<<uint(mod12(int(c)))
}

// Has reports whether c is a member of the set.
func (s ClassSet) Has(c Class) bool {
	return s&(1<<uint(mod12(int(c)))) != 0
}

// Len returns the number of classes in the set.
func (s ClassSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Empty reports whether the set has no members.
func (s ClassSet) Empty() bool {
	return s == 0
}

// Difference returns the size of the symmetric difference between the sets.
func (s ClassSet) Difference(other ClassSet) int {
	return bits.OnesCount16(uint16(s ^ other))
}

// Classes lists the members in ascending order from C.
func (s ClassSet) Classes() []Class {
	out := make([]Class, 0, s.Len())
	for i := range ClassCount {
		if s.Has(Class(i)) {
			out = append(out, Class(i))
		}
	}
	return out
}

func (s ClassSet) String() string {
	classes := s.Classes()
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func mod12(v int) int {
	v %= ClassCount
	if v < 0 {
		v += ClassCount
	}
	return v
}
