// Package modifier defines chord modifiers and extensions together with the
// static catalogs that drive validation and reverse resolution.
package modifier

import (
	"fmt"
	"math/bits"
	"strings"
)

// Degree is the highest stacked tone of a dominant chord.
type Degree uint8

const (
	Seven Degree = iota
	Nine
	Eleven
	Thirteen
)

// Degrees lists the dominant degrees in ascending order.
var Degrees = [...]Degree{Seven, Nine, Eleven, Thirteen}

func (d Degree) String() string {
	switch d {
	case Seven:
		return "7"
	case Nine:
		return "9"
	case Eleven:
		return "11"
	case Thirteen:
		return "13"
	}
	return "?"
}

// Modifier alters the underlying tone set of a chord. The dominant modifiers
// carry their degree in the value itself so a Modifier is always comparable.
type Modifier uint8

const (
	Minor Modifier = iota
	Flat5
	Augmented5
	Major7
	Dominant7
	Dominant9
	Dominant11
	Dominant13
	Flat9
	Sharp9
	Sharp11
	Diminished

	modifierCount
)

// Dominant returns the dominant modifier for the given degree.
func Dominant(d Degree) Modifier {
	return Dominant7 + Modifier(d)
}

// IsDominant reports whether m is one of the dominant degrees.
func (m Modifier) IsDominant() bool {
	return m >= Dominant7 && m <= Dominant13
}

// Degree returns the dominant degree; ok is false for other modifiers.
func (m Modifier) Degree() (Degree, bool) {
	if !m.IsDominant() {
		return 0, false
	}
	return Degree(m - Dominant7), true
}

var modifierNames = [modifierCount]string{
	Minor:      "m",
	Flat5:      "♭5",
	Augmented5: "+",
	Major7:     "maj7",
	Dominant7:  "7",
	Dominant9:  "9",
	Dominant11: "11",
	Dominant13: "13",
	Flat9:      "♭9",
	Sharp9:     "♯9",
	Sharp11:    "♯11",
	Diminished: "dim",
}

func (m Modifier) String() string {
	if m >= modifierCount {
		return fmt.Sprintf("modifier(%d)", uint8(m))
	}
	return modifierNames[m]
}

// Set is a mathematical set of modifiers. Iteration is always in canonical
// (declaration) order.
type Set uint16

// NewSet collects modifiers; duplicates collapse.
func NewSet(mods ...Modifier) Set {
	var s Set
	for _, m := range mods {
		s |= 1 << m
	}
	return s
}

// Has reports membership.
func (s Set) Has(m Modifier) bool { return s&(1<<m) != 0 }

// With returns s plus m.
func (s Set) With(m Modifier) Set { return s | 1<<m }

// Without returns s minus m.
func (s Set) Without(m Modifier) Set { return s &^ (1 << m) }

// Union returns the modifiers present in either set.
func (s Set) Union(o Set) Set { return s | o }

// Minus returns the modifiers in s that are not in o.
func (s Set) Minus(o Set) Set { return s &^ o }

// Len returns the number of modifiers.
func (s Set) Len() int { return bits.OnesCount16(uint16(s)) }

// Slice lists the modifiers in canonical order.
func (s Set) Slice() []Modifier {
	out := make([]Modifier, 0, s.Len())
	for m := Modifier(0); m < modifierCount; m++ {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// DominantDegree returns the highest dominant degree in the set.
func (s Set) DominantDegree() (Degree, bool) {
	for m := Dominant13; m >= Dominant7; m-- {
		if s.Has(m) {
			return Degree(m - Dominant7), true
		}
	}
	return 0, false
}

func (s Set) String() string {
	mods := s.Slice()
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
