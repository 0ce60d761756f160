package chord

import (
	"errors"
	"fmt"

	"kord/internal/grammar"
	"kord/internal/modifier"
	"kord/internal/pitch"
)

// ErrUnrecognizedModifiers is wrapped by BuildErrors of kind
// UnrecognizedModifierCombination.
var ErrUnrecognizedModifiers = errors.New("unrecognized modifiers")

// ErrorKind classifies a BuildError.
type ErrorKind string

const (
	UnrecognizedModifierCombination ErrorKind = "unrecognized_modifier_combination"
	ConflictingModifiers            ErrorKind = "conflicting_modifiers"
	OctaveOutOfRange                ErrorKind = "octave_out_of_range"
)

// BuildError reports a syntactically valid symbol that does not describe a
// playable chord.
type BuildError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build chord: %s", e.Msg)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Build converts a parsed chord symbol into a validated Chord. Duplicate
// modifiers and extensions collapse.
func Build(ast grammar.ChordAST) (Chord, error) {
	mods := modifier.NewSet(ast.Modifiers...)
	if mods.Has(modifier.Augmented5) && (mods.Has(modifier.Flat5) || mods.Has(modifier.Diminished)) {
		return Chord{}, &BuildError{
			Kind: ConflictingModifiers,
			Msg:  fmt.Sprintf("augmented fifth conflicts with %s", conflictWith(mods)),
		}
	}
	if err := modifier.Validate(mods); err != nil {
		return Chord{}, &BuildError{
			Kind: UnrecognizedModifierCombination,
			Msg:  fmt.Sprintf("modifiers %s do not name a chord", mods),
			Err:  errors.Join(ErrUnrecognizedModifiers, err),
		}
	}

	c := New(ast.Root).
		WithModifiers(mods).
		WithExtensions(modifier.NewExtensionSet(ast.Extensions...)).
		WithInversion(ast.Inversion)
	if ast.Slash != nil {
		c = c.WithSlash(*ast.Slash)
	}

	if _, err := c.TryTones(); err != nil {
		var rangeErr *pitch.OctaveRangeError
		if !errors.As(err, &rangeErr) {
			return Chord{}, err
		}
		return Chord{}, &BuildError{
			Kind: OctaveOutOfRange,
			Msg:  fmt.Sprintf("%s does not fit octaves %d..%d", c.PreciseName(), pitch.MinOctave, pitch.MaxOctave),
			Err:  err,
		}
	}
	return c, nil
}

func conflictWith(mods modifier.Set) string {
	if mods.Has(modifier.Diminished) {
		return "diminished"
	}
	return "flat fifth"
}

// Parse parses and builds a chord symbol.
func Parse(text string) (Chord, error) {
	ast, err := grammar.ParseChord(text)
	if err != nil {
		return Chord{}, err
	}
	return Build(ast)
}
