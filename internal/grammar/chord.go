package grammar

import (
	"cmp"
	"slices"
	"sync"
	"unicode/utf8"

	"kord/internal/modifier"
	"kord/internal/pitch"
)

// ChordAST is the syntactic form of a chord symbol. Modifiers and extensions
// keep their textual order and may contain duplicates; interpretation happens
// in the chord package.
type ChordAST struct {
	Root       pitch.Note
	Modifiers  []modifier.Modifier
	Extensions []modifier.Extension
	// Slash carries the bass note spelling; its octave is a placeholder.
	Slash     *pitch.Note
	HasOctave bool
	Inversion int
}

type chordToken struct {
	text string
	mods []modifier.Modifier
	exts []modifier.Extension
}

func mods(m ...modifier.Modifier) []modifier.Modifier { return m }

func exts(e ...modifier.Extension) []modifier.Extension { return e }

// chordTokens is ordered longest text first so matching is greedy.
var chordTokens = sync.OnceValue(func() []chordToken {
	tokens := []chordToken{
		{text: "maj7", mods: mods(modifier.Major7)},
		{text: "Maj7", mods: mods(modifier.Major7)},
		{text: "major7", mods: mods(modifier.Major7)},
		{text: "M7", mods: mods(modifier.Major7)},
		{text: "Δ7", mods: mods(modifier.Major7)},
		{text: "Δ", mods: mods(modifier.Major7)},
		{text: "maj9", mods: mods(modifier.Major7), exts: exts(modifier.Add9)},
		{text: "maj11", mods: mods(modifier.Major7), exts: exts(modifier.Add9, modifier.Add11)},
		{text: "maj13", mods: mods(modifier.Major7), exts: exts(modifier.Add9, modifier.Add13)},

		{text: "min", mods: mods(modifier.Minor)},
		{text: "m", mods: mods(modifier.Minor)},
		{text: "-", mods: mods(modifier.Minor)},

		{text: "7", mods: mods(modifier.Dominant7)},
		{text: "9", mods: mods(modifier.Dominant9)},
		{text: "11", mods: mods(modifier.Dominant11)},
		{text: "13", mods: mods(modifier.Dominant13)},

		{text: "b5", mods: mods(modifier.Flat5)},
		{text: "♭5", mods: mods(modifier.Flat5)},
		{text: "-5", mods: mods(modifier.Flat5)},
		{text: "#5", mods: mods(modifier.Augmented5)},
		{text: "♯5", mods: mods(modifier.Augmented5)},
		{text: "+5", mods: mods(modifier.Augmented5)},
		{text: "+", mods: mods(modifier.Augmented5)},
		{text: "aug", mods: mods(modifier.Augmented5)},

		{text: "b9", mods: mods(modifier.Flat9)},
		{text: "♭9", mods: mods(modifier.Flat9)},
		{text: "#9", mods: mods(modifier.Sharp9)},
		{text: "♯9", mods: mods(modifier.Sharp9)},
		{text: "#11", mods: mods(modifier.Sharp11)},
		{text: "♯11", mods: mods(modifier.Sharp11)},

		{text: "dim7", mods: mods(modifier.Diminished)},
		{text: "dim", mods: mods(modifier.Diminished)},
		{text: "°7", mods: mods(modifier.Diminished)},
		{text: "°", mods: mods(modifier.Diminished)},
		{text: "o7", mods: mods(modifier.Diminished)},
		{text: "o", mods: mods(modifier.Diminished)},
		{text: "ø7", mods: mods(modifier.Minor, modifier.Dominant7, modifier.Flat5)},
		{text: "ø", mods: mods(modifier.Minor, modifier.Dominant7, modifier.Flat5)},

		{text: "sus2", exts: exts(modifier.Sus2)},
		{text: "sus4", exts: exts(modifier.Sus4)},
		{text: "sus", exts: exts(modifier.Sus4)},
		{text: "b11", exts: exts(modifier.Flat11)},
		{text: "♭11", exts: exts(modifier.Flat11)},
		{text: "b13", exts: exts(modifier.Flat13)},
		{text: "♭13", exts: exts(modifier.Flat13)},
		{text: "#13", exts: exts(modifier.Sharp13)},
		{text: "♯13", exts: exts(modifier.Sharp13)},
		{text: "add2", exts: exts(modifier.Add2)},
		{text: "add4", exts: exts(modifier.Add4)},
		{text: "add6", exts: exts(modifier.Add6)},
		{text: "add9", exts: exts(modifier.Add9)},
		{text: "add11", exts: exts(modifier.Add11)},
		{text: "add13", exts: exts(modifier.Add13)},
		{text: "69", exts: exts(modifier.Add6, modifier.Add9)},
		{text: "6", exts: exts(modifier.Add6)},
	}
	slices.SortStableFunc(tokens, func(a, b chordToken) int {
		return cmp.Compare(utf8.RuneCountInString(b.text), utf8.RuneCountInString(a.text))
	})
	return tokens
})

// ParseChord parses a chord symbol such as "Cm7b5", "F#dim/A@3" or "C7^1".
func ParseChord(text string) (ChordAST, error) {
	s := newScanner(text)
	if s.eof() {
		return ChordAST{}, &ParseError{Msg: "empty chord symbol", Err: ErrEmptyInput}
	}

	letter, acc, err := s.noteName()
	if err != nil {
		return ChordAST{}, err
	}

	var ast ChordAST
	if err := s.chordBody(&ast); err != nil {
		return ChordAST{}, err
	}

	if s.consume("/") {
		bassLetter, bassAcc, err := s.noteName()
		if err != nil {
			return ChordAST{}, err
		}
		bass, err := pitch.NewNote(bassLetter, bassAcc, pitch.DefaultOctave)
		if err != nil {
			return ChordAST{}, s.errorf(err, "invalid slash note")
		}
		ast.Slash = &bass
	}

	octave := pitch.DefaultOctave
	if s.consume("@") {
		if octave, err = s.octave(); err != nil {
			return ChordAST{}, err
		}
		ast.HasOctave = true
	}

	if s.consume("^") {
		n, ok := s.number()
		if !ok {
			return ChordAST{}, s.errorf(nil, "expected inversion count")
		}
		ast.Inversion = n
	}

	if !s.eof() {
		return ChordAST{}, s.errorf(nil, "unexpected %q", s.rest())
	}

	root, err := pitch.NewNote(letter, acc, octave)
	if err != nil {
		return ChordAST{}, newError(s.input, 0, err, "invalid root")
	}
	ast.Root = root
	return ast, nil
}

func (s *scanner) chordBody(ast *ChordAST) error {
	for !s.eof() {
		switch s.peek() {
		case '/', '@', '^':
			return nil
		case '(':
			if err := s.chordGroup(ast); err != nil {
				return err
			}
		default:
			if !s.chordToken(ast) {
				return s.errorf(nil, "unrecognized chord token %q", s.rest())
			}
		}
	}
	return nil
}

// chordGroup parses "(tok[, tok]...)".
func (s *scanner) chordGroup(ast *ChordAST) error {
	open := s.pos
	s.pos++
	count := 0
	for {
		for s.peek() == ',' || s.peek() == ' ' {
			s.pos++
		}
		if s.eof() {
			return newError(s.input, open, nil, "unclosed parenthesis")
		}
		if s.consume(")") {
			break
		}
		if !s.chordToken(ast) {
			return s.errorf(nil, "unrecognized chord token %q", s.rest())
		}
		count++
	}
	if count == 0 {
		return newError(s.input, open, nil, "empty parenthesis")
	}
	return nil
}

func (s *scanner) chordToken(ast *ChordAST) bool {
	for _, tok := range chordTokens() {
		if s.consume(tok.text) {
			ast.Modifiers = append(ast.Modifiers, tok.mods...)
			ast.Extensions = append(ast.Extensions, tok.exts...)
			return true
		}
	}
	return false
}
