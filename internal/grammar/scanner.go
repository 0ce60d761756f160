package grammar

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"kord/internal/pitch"
)

// scanner walks the NFC-normalized runes of a symbol.
type scanner struct {
	input string
	runes []rune
	pos   int
}

func newScanner(text string) *scanner {
	normalized := norm.NFC.String(strings.TrimSpace(text))
	return &scanner{input: normalized, runes: []rune(normalized)}
}

func (s *scanner) eof() bool { return s.pos >= len(s.runes) }

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.runes[s.pos]
}

func (s *scanner) hasPrefix(token string) bool {
	tr := []rune(token)
	if len(s.runes)-s.pos < len(tr) {
		return false
	}
	for i, r := range tr {
		if s.runes[s.pos+i] != r {
			return false
		}
	}
	return true
}

func (s *scanner) consume(token string) bool {
	if !s.hasPrefix(token) {
		return false
	}
	s.pos += len([]rune(token))
	return true
}

func (s *scanner) rest() string { return string(s.runes[s.pos:]) }

func (s *scanner) errorf(err error, format string, args ...any) *ParseError {
	return newError(s.input, s.pos, err, format, args...)
}

// accidental values per glyph; double glyphs count as depth two.
var accidentalRunes = map[rune]int{
	'#': 1,
	'♯': 1,
	'b': -1,
	'♭': -1,
	'𝄪': 2,
	'𝄫': -2,
}

// noteName scans a letter and up to two accidentals.
func (s *scanner) noteName() (pitch.Letter, int, error) {
	start := s.pos
	r := s.peek()
	letter, ok := pitch.ParseLetter(r)
	if !ok {
		if s.eof() {
			return 0, 0, s.errorf(nil, "expected note letter A-G")
		}
		return 0, 0, s.errorf(nil, "expected note letter A-G, found %q", r)
	}
	s.pos++

	acc, depth := 0, 0
	for !s.eof() {
		v, ok := accidentalRunes[s.peek()]
		if !ok {
			break
		}
		if acc != 0 && (acc > 0) != (v > 0) {
			return 0, 0, s.errorf(nil, "mixed sharps and flats")
		}
		acc += v
		depth += abs(v)
		s.pos++
	}
	if depth > pitch.MaxAccidentals {
		return 0, 0, newError(s.input, start, ErrAccidentalDepth, "accidental depth %d exceeds two", depth)
	}
	return letter, acc, nil
}

// number scans up to two decimal digits.
func (s *scanner) number() (int, bool) {
	if s.eof() || !unicode.IsDigit(s.peek()) {
		return 0, false
	}
	value, n := 0, 0
	for !s.eof() && n < 2 && s.peek() >= '0' && s.peek() <= '9' {
		value = value*10 + int(s.peek()-'0')
		s.pos++
		n++
	}
	return value, n > 0
}

func (s *scanner) octave() (pitch.Octave, error) {
	start := s.pos
	value, ok := s.number()
	if !ok {
		return 0, s.errorf(nil, "expected octave digit")
	}
	if !s.eof() && unicode.IsDigit(s.peek()) {
		return 0, newError(s.input, start, nil, "octave has too many digits")
	}
	o, err := pitch.NewOctave(value)
	if err != nil {
		return 0, newError(s.input, start, err, "invalid octave %d", value)
	}
	return o, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ParseNote parses a standalone note such as "C", "F#3" or "B♭5". The octave
// defaults to 4.
func ParseNote(text string) (pitch.Note, error) {
	s := newScanner(text)
	if s.eof() {
		return pitch.Note{}, &ParseError{Msg: "empty note", Err: ErrEmptyInput}
	}
	letter, acc, err := s.noteName()
	if err != nil {
		return pitch.Note{}, err
	}
	octave := pitch.DefaultOctave
	if !s.eof() {
		if octave, err = s.octave(); err != nil {
			return pitch.Note{}, err
		}
	}
	if !s.eof() {
		return pitch.Note{}, s.errorf(nil, "unexpected %q", s.rest())
	}
	return pitch.NewNote(letter, acc, octave)
}
