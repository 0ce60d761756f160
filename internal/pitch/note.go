package pitch

import (
	"fmt"
	"strings"
)

// Letter is a natural note name A–G, numbered from C.
type Letter uint8

const (
	LetterC Letter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
)

const letterCount = 7

var (
	letterNames     = [letterCount]string{"C", "D", "E", "F", "G", "A", "B"}
	letterSemitones = [letterCount]int{0, 2, 4, 5, 7, 9, 11}
)

// ParseLetter maps an upper-case letter A–G to a Letter.
func ParseLetter(r rune) (Letter, bool) {
	switch r {
	case 'C':
		return LetterC, true
	case 'D':
		return LetterD, true
	case 'E':
		return LetterE, true
	case 'F':
		return LetterF, true
	case 'G':
		return LetterG, true
	case 'A':
		return LetterA, true
	case 'B':
		return LetterB, true
	}
	return 0, false
}

func (l Letter) String() string {
	if int(l) >= letterCount {
		return "?"
	}
	return letterNames[l]
}

// MaxAccidentals bounds the accidental depth accepted from text input.
const MaxAccidentals = 2

// Note is a spelled pitch: a letter, a signed accidental count (positive for
// sharps) and an octave. Notes are values; transformations return copies.
type Note struct {
	letter     Letter
	accidental int8
	octave     Octave
}

// NewNote constructs a note. Accidentals beyond ±3 are rejected since no
// catalog interval can produce them from a parsed root.
func NewNote(letter Letter, accidental int, octave Octave) (Note, error) {
	if int(letter) >= letterCount {
		return Note{}, fmt.Errorf("invalid letter %d", letter)
	}
	if accidental < -3 || accidental > 3 {
		return Note{}, fmt.Errorf("accidental depth %d out of range", accidental)
	}
	if octave > MaxOctave {
		return Note{}, &OctaveRangeError{Value: int(octave)}
	}
	return Note{letter: letter, accidental: int8(accidental), octave: octave}, nil
}

// MustNote is NewNote for literals known to be valid.
func MustNote(letter Letter, accidental int, octave Octave) Note {
	n, err := NewNote(letter, accidental, octave)
	if err != nil {
		panic(err)
	}
	return n
}

// Letter returns the natural letter of the spelling.
func (n Note) Letter() Letter { return n.letter }

// Accidental returns the signed accidental count (+1 sharp, -2 double flat).
func (n Note) Accidental() int { return int(n.accidental) }

// Octave returns the octave number.
func (n Note) Octave() Octave { return n.octave }

// Class returns the pitch class, collapsing enharmonic spellings.
func (n Note) Class() Class {
	return Class(mod12(letterSemitones[n.letter] + int(n.accidental)))
}

// Semitone returns the absolute semitone index with C0 at zero. Spellings
// such as C♭4 sound below their written octave.
func (n Note) Semitone() int {
	return int(n.octave)*12 + letterSemitones[n.letter] + int(n.accidental)
}

// MIDI returns the MIDI note number (C4 = 60).
func (n Note) MIDI() int {
	return n.Semitone() + 12
}

// WithOctave returns the same spelling in another octave.
func (n Note) WithOctave(o Octave) Note {
	n.octave = o
	return n
}

// SameSpelling reports whether both notes share letter and accidental.
func (n Note) SameSpelling(other Note) bool {
	return n.letter == other.letter && n.accidental == other.accidental
}

// TryAdd transposes the note up by iv, keeping the spelling implied by the
// interval's diatonic size. It fails when the octave would leave 0..15.
func (n Note) TryAdd(iv Interval) (Note, error) {
	position := int(n.letter) + iv.Steps()
	octave, err := n.octave.TryAdd(position / letterCount)
	if err != nil {
		return Note{}, err
	}
	letter := Letter(position % letterCount)
	target := n.Semitone() + iv.Semitones()
	natural := int(octave)*12 + letterSemitones[letter]
	return Note{letter: letter, accidental: int8(target - natural), octave: octave}, nil
}

// Add is TryAdd for internal arithmetic that cannot leave the octave range;
// it panics on overflow.
func (n Note) Add(iv Interval) Note {
	out, err := n.TryAdd(iv)
	if err != nil {
		panic(err)
	}
	return out
}

// Compare orders notes by sounding pitch, then by letter.
func Compare(a, b Note) int {
	switch {
	case a.Semitone() < b.Semitone():
		return -1
	case a.Semitone() > b.Semitone():
		return 1
	case a.letter < b.letter:
		return -1
	case a.letter > b.letter:
		return 1
	}
	return 0
}

// Name renders the spelling without octave using musical glyphs, e.g. "E♭".
func (n Note) Name() string {
	return n.letter.String() + accidentalGlyphs(int(n.accidental))
}

// ASCII renders the spelling without octave using '#' and 'b'.
func (n Note) ASCII() string {
	switch {
	case n.accidental > 0:
		return n.letter.String() + strings.Repeat("#", int(n.accidental))
	case n.accidental < 0:
		return n.letter.String() + strings.Repeat("b", int(-n.accidental))
	}
	return n.letter.String()
}

// String renders the spelling with its octave, e.g. "F♯5".
func (n Note) String() string {
	return n.Name() + n.octave.String()
}

func accidentalGlyphs(acc int) string {
	switch acc {
	case 0:
		return ""
	case 1:
		return "♯"
	case 2:
		return "𝄪"
	case 3:
		return "♯𝄪"
	case -1:
		return "♭"
	case -2:
		return "𝄫"
	case -3:
		return "♭𝄫"
	}
	if acc > 0 {
		return strings.Repeat("♯", acc)
	}
	return strings.Repeat("♭", -acc)
}

// FromMIDI converts a MIDI note number using the preferred spelling for its
// pitch class. Notes below C0 are rejected.
func FromMIDI(number int) (Note, error) {
	if number < 12 || number > 127 {
		return Note{}, fmt.Errorf("midi note %d outside supported range 12..127", number)
	}
	octave, err := NewOctave(number/12 - 1)
	if err != nil {
		return Note{}, err
	}
	return Class(number % 12).Note(octave), nil
}
