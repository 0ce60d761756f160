// Package scale defines named scales and modes rooted on a spelled note.
package scale

import (
	"fmt"

	"kord/internal/pitch"
)

// Scale is a root note plus a scale kind.
type Scale struct {
	root pitch.Note
	kind Kind
}

// New builds a scale, failing when a degree would leave the octave range.
func New(root pitch.Note, kind Kind) (Scale, error) {
	if kind >= kindCount {
		return Scale{}, fmt.Errorf("unknown scale kind %d", kind)
	}
	if _, err := spell(root, kind.Intervals()); err != nil {
		return Scale{}, fmt.Errorf("scale %s %s: %w", root.Name(), kind, err)
	}
	return Scale{root: root, kind: kind}, nil
}

func (s Scale) Root() pitch.Note { return s.root }

func (s Scale) Kind() Kind { return s.kind }

// Notes returns the scale degrees in ascending order starting at the root.
func (s Scale) Notes() []pitch.Note {
	notes, err := spell(s.root, s.kind.Intervals())
	if err != nil {
		panic(err)
	}
	return notes
}

// Name renders the canonical text form, e.g. "A harmonic minor".
func (s Scale) Name() string {
	return s.root.Name() + " " + s.kind.String()
}

// PreciseName includes the root octave when it is not the default.
func (s Scale) PreciseName() string {
	return preciseRoot(s.root) + " " + s.kind.String()
}

func (s Scale) Description() string { return s.kind.Description() }

// Mode is a root note plus a mode kind.
type Mode struct {
	root pitch.Note
	kind ModeKind
}

// NewMode builds a mode, failing when a degree would leave the octave range.
func NewMode(root pitch.Note, kind ModeKind) (Mode, error) {
	if kind >= modeCount {
		return Mode{}, fmt.Errorf("unknown mode kind %d", kind)
	}
	if _, err := spell(root, kind.Intervals()); err != nil {
		return Mode{}, fmt.Errorf("mode %s %s: %w", root.Name(), kind, err)
	}
	return Mode{root: root, kind: kind}, nil
}

func (m Mode) Root() pitch.Note { return m.root }

func (m Mode) Kind() ModeKind { return m.kind }

// Notes returns the mode degrees in ascending order starting at the root.
func (m Mode) Notes() []pitch.Note {
	notes, err := spell(m.root, m.kind.Intervals())
	if err != nil {
		panic(err)
	}
	return notes
}

// Name renders the canonical text form, e.g. "D dorian".
func (m Mode) Name() string {
	return m.root.Name() + " " + m.kind.String()
}

func (m Mode) PreciseName() string {
	return preciseRoot(m.root) + " " + m.kind.String()
}

func (m Mode) Description() string { return m.kind.Description() }

func spell(root pitch.Note, ivs []pitch.Interval) ([]pitch.Note, error) {
	out := make([]pitch.Note, 0, len(ivs))
	for _, iv := range ivs {
		n, err := root.TryAdd(iv)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func preciseRoot(root pitch.Note) string {
	if root.Octave() == pitch.DefaultOctave {
		return root.Name()
	}
	return root.String()
}
