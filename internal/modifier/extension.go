package modifier

import (
	"fmt"
	"math/bits"
	"strings"
)

// Extension adds a tone to a chord without changing its quality.
type Extension uint8

const (
	Sus2 Extension = iota
	Sus4
	Flat11
	Flat13
	Sharp13
	Add2
	Add4
	Add6
	Add9
	Add11
	Add13

	extensionCount
)

var extensionNames = [extensionCount]string{
	Sus2:    "sus2",
	Sus4:    "sus4",
	Flat11:  "♭11",
	Flat13:  "♭13",
	Sharp13: "♯13",
	Add2:    "add2",
	Add4:    "add4",
	Add6:    "add6",
	Add9:    "add9",
	Add11:   "add11",
	Add13:   "add13",
}

func (e Extension) String() string {
	if e >= extensionCount {
		return fmt.Sprintf("extension(%d)", uint8(e))
	}
	return extensionNames[e]
}

// ExtensionSet is a set of extensions iterated in canonical order.
type ExtensionSet uint16

// NewExtensionSet collects extensions; duplicates collapse.
func NewExtensionSet(exts ...Extension) ExtensionSet {
	var s ExtensionSet
	for _, e := range exts {
		s |= 1 << e
	}
	return s
}

func (s ExtensionSet) Has(e Extension) bool { return s&(1<<e) != 0 }

func (s ExtensionSet) With(e Extension) ExtensionSet { return s | 1<<e }

func (s ExtensionSet) Without(e Extension) ExtensionSet { return s &^ (1 << e) }

func (s ExtensionSet) Len() int { return bits.OnesCount16(uint16(s)) }

// Slice lists the extensions in canonical order.
func (s ExtensionSet) Slice() []Extension {
	out := make([]Extension, 0, s.Len())
	for e := Extension(0); e < extensionCount; e++ {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s ExtensionSet) String() string {
	exts := s.Slice()
	parts := make([]string, len(exts))
	for i, e := range exts {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
