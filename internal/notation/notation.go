// Package notation is the single entry point for free-form symbols. It tries
// the chord grammar first, then scales, then modes.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"kord/internal/chord"
	"kord/internal/grammar"
	"kord/internal/pitch"
	"kord/internal/scale"
)

// Kind names the populated variant of a Notation.
type Kind string

const (
	KindChord Kind = "chord"
	KindScale Kind = "scale"
	KindMode  Kind = "mode"
)

// ErrUnknownKind is returned by ParseWithType for kinds other than chord,
// scale, mode or empty.
var ErrUnknownKind = errors.New("unknown notation kind")

// Notation holds exactly one of a chord, a scale or a mode.
type Notation struct {
	kind  Kind
	chord chord.Chord
	scale scale.Scale
	mode  scale.Mode
}

func FromChord(c chord.Chord) Notation { return Notation{kind: KindChord, chord: c} }

func FromScale(s scale.Scale) Notation { return Notation{kind: KindScale, scale: s} }

func FromMode(m scale.Mode) Notation { return Notation{kind: KindMode, mode: m} }

// Parse tries chord, scale and mode grammars in that order and returns the
// first success. When all fail the chord error is returned.
func Parse(text string) (Notation, error) {
	if strings.TrimSpace(text) == "" {
		return Notation{}, &grammar.ParseError{Msg: "empty notation", Err: grammar.ErrEmptyInput}
	}
	c, chordErr := chord.Parse(text)
	if chordErr == nil {
		return FromChord(c), nil
	}
	if s, err := parseScale(text); err == nil {
		return FromScale(s), nil
	}
	if m, err := parseMode(text); err == nil {
		return FromMode(m), nil
	}
	return Notation{}, chordErr
}

// ParseWithType restricts parsing to one kind. An empty kind behaves like
// Parse.
func ParseWithType(text, kind string) (Notation, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(kind))) {
	case "":
		return Parse(text)
	case KindChord:
		c, err := chord.Parse(text)
		if err != nil {
			return Notation{}, err
		}
		return FromChord(c), nil
	case KindScale:
		s, err := parseScale(text)
		if err != nil {
			return Notation{}, err
		}
		return FromScale(s), nil
	case KindMode:
		m, err := parseMode(text)
		if err != nil {
			return Notation{}, err
		}
		return FromMode(m), nil
	}
	return Notation{}, fmt.Errorf("%w %q (want chord, scale or mode)", ErrUnknownKind, kind)
}

func parseScale(text string) (scale.Scale, error) {
	ast, err := grammar.ParseScale(text)
	if err != nil {
		return scale.Scale{}, err
	}
	return scale.New(ast.Root, ast.Kind)
}

func parseMode(text string) (scale.Mode, error) {
	ast, err := grammar.ParseMode(text)
	if err != nil {
		return scale.Mode{}, err
	}
	return scale.NewMode(ast.Root, ast.Kind)
}

func (n Notation) Kind() Kind { return n.kind }

func (n Notation) IsChord() bool { return n.kind == KindChord }

func (n Notation) IsScale() bool { return n.kind == KindScale }

func (n Notation) IsMode() bool { return n.kind == KindMode }

func (n Notation) AsChord() (chord.Chord, bool) { return n.chord, n.IsChord() }

func (n Notation) AsScale() (scale.Scale, bool) { return n.scale, n.IsScale() }

func (n Notation) AsMode() (scale.Mode, bool) { return n.mode, n.IsMode() }

// Name is the canonical text form; feeding it back to Parse yields an
// equivalent value.
func (n Notation) Name() string {
	switch n.kind {
	case KindChord:
		return n.chord.Name()
	case KindScale:
		return n.scale.Name()
	case KindMode:
		return n.mode.Name()
	}
	return ""
}

// PreciseName is Name plus octave and inversion details.
func (n Notation) PreciseName() string {
	switch n.kind {
	case KindChord:
		return n.chord.PreciseName()
	case KindScale:
		return n.scale.PreciseName()
	case KindMode:
		return n.mode.PreciseName()
	}
	return ""
}

func (n Notation) Description() string {
	switch n.kind {
	case KindChord:
		return n.chord.Description()
	case KindScale:
		return n.scale.Description()
	case KindMode:
		return n.mode.Description()
	}
	return ""
}

// Notes returns chord tones or scale degrees in ascending order.
func (n Notation) Notes() []pitch.Note {
	switch n.kind {
	case KindChord:
		return n.chord.Tones()
	case KindScale:
		return n.scale.Notes()
	case KindMode:
		return n.mode.Notes()
	}
	return nil
}

// Root returns the root note of the populated variant.
func (n Notation) Root() pitch.Note {
	switch n.kind {
	case KindChord:
		return n.chord.Root()
	case KindScale:
		return n.scale.Root()
	case KindMode:
		return n.mode.Root()
	}
	return pitch.Note{}
}

func (n Notation) String() string { return n.PreciseName() }
