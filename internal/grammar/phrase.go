package grammar

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kord/internal/pitch"
	"kord/internal/scale"
)

// ScaleAST is a parsed scale phrase such as "A harmonic minor".
type ScaleAST struct {
	Root pitch.Note
	Kind scale.Kind
}

// ModeAST is a parsed mode phrase such as "D dorian".
type ModeAST struct {
	Root pitch.Note
	Kind scale.ModeKind
}

// Aliases are keyed by their normalized, space-free spelling.
var scaleAliases = map[string]scale.Kind{
	"major":                  scale.Major,
	"naturalminor":           scale.NaturalMinor,
	"minor":                  scale.NaturalMinor,
	"harmonicminor":          scale.HarmonicMinor,
	"melodicminor":           scale.MelodicMinor,
	"wholetone":              scale.WholeTone,
	"chromatic":              scale.Chromatic,
	"diminishedwhole-half":   scale.DiminishedWholeHalf,
	"diminished(whole-half)": scale.DiminishedWholeHalf,
	"whole-halfdiminished":   scale.DiminishedWholeHalf,
	"diminishedhalf-whole":   scale.DiminishedHalfWhole,
	"diminished(half-whole)": scale.DiminishedHalfWhole,
	"half-wholediminished":   scale.DiminishedHalfWhole,
	"majorpentatonic":        scale.MajorPentatonic,
	"minorpentatonic":        scale.MinorPentatonic,
	"blues":                  scale.Blues,
	"bluesscale":             scale.Blues,
}

var modeAliases = map[string]scale.ModeKind{
	"ionian":     scale.Ionian,
	"dorian":     scale.Dorian,
	"phrygian":   scale.Phrygian,
	"lydian":     scale.Lydian,
	"mixolydian": scale.Mixolydian,
	"aeolian":    scale.Aeolian,
	"locrian":    scale.Locrian,

	"locriannatural6":  scale.LocrianNatural6,
	"ioniansharp5":     scale.IonianSharp5,
	"ionianaugmented":  scale.IonianSharp5,
	"majorsharp5":      scale.IonianSharp5,
	"augmentedmajor":   scale.IonianSharp5,
	"doriansharp4":     scale.DorianSharp4,
	"phrygiandominant": scale.PhrygianDominant,
	"spanishphrygian":  scale.PhrygianDominant,
	"phrygianmajor":    scale.PhrygianDominant,
	"lydiansharp2":     scale.LydianSharp2,
	"ultralocrian":     scale.Ultralocrian,

	"dorianflat2":             scale.DorianFlat2,
	"phrygiannatural6":        scale.DorianFlat2,
	"lydianaugmented":         scale.LydianAugmented,
	"lydiansharp5":            scale.LydianAugmented,
	"lydiandominant":          scale.LydianDominant,
	"lydianflat7":             scale.LydianDominant,
	"mixolydiansharp4":        scale.LydianDominant,
	"acoustic":                scale.LydianDominant,
	"acousticscale":           scale.LydianDominant,
	"mixolydianflat6":         scale.MixolydianFlat6,
	"aeoliandominant":         scale.MixolydianFlat6,
	"locriannatural2":         scale.LocrianNatural2,
	"locriansharp2":           scale.LocrianNatural2,
	"half-diminished":         scale.LocrianNatural2,
	"half-diminishednatural2": scale.LocrianNatural2,
	"altered":                 scale.Altered,
	"alteredscale":            scale.Altered,
	"superlocrian":            scale.Altered,
}

// ParseScale parses "<root>[octave] <scale name>".
func ParseScale(text string) (ScaleAST, error) {
	root, kind, err := parsePhrase(text, "scale", scaleAliases)
	if err != nil {
		return ScaleAST{}, err
	}
	return ScaleAST{Root: root, Kind: kind}, nil
}

// ParseMode parses "<root>[octave] <mode name>".
func ParseMode(text string) (ModeAST, error) {
	root, kind, err := parsePhrase(text, "mode", modeAliases)
	if err != nil {
		return ModeAST{}, err
	}
	return ModeAST{Root: root, Kind: kind}, nil
}

func parsePhrase[K any](text, what string, aliases map[string]K) (pitch.Note, K, error) {
	var zero K
	s := newScanner(text)
	if s.eof() {
		return pitch.Note{}, zero, &ParseError{Msg: "empty " + what, Err: ErrEmptyInput}
	}
	letter, acc, err := s.noteName()
	if err != nil {
		return pitch.Note{}, zero, err
	}
	octave := pitch.DefaultOctave
	if !s.eof() && unicode.IsDigit(s.peek()) {
		if octave, err = s.octave(); err != nil {
			return pitch.Note{}, zero, err
		}
	}
	if s.eof() {
		return pitch.Note{}, zero, s.errorf(nil, "expected %s name", what)
	}
	if !unicode.IsSpace(s.peek()) {
		return pitch.Note{}, zero, s.errorf(nil, "expected space before %s name", what)
	}
	for unicode.IsSpace(s.peek()) {
		s.pos++
	}
	nameStart := s.pos
	root, err := pitch.NewNote(letter, acc, octave)
	if err != nil {
		return pitch.Note{}, zero, newError(s.input, 0, err, "invalid root")
	}

	words := normalizeWords(s.rest())
	for k := len(words); k > 0; k-- {
		kind, ok := aliases[strings.Join(words[:k], "")]
		if !ok {
			continue
		}
		if k < len(words) {
			return pitch.Note{}, zero, newError(s.input, nameStart, nil,
				"unexpected trailing words %q", strings.Join(words[k:], " "))
		}
		return root, kind, nil
	}
	return pitch.Note{}, zero, newError(s.input, nameStart, ErrUnknownName, "unknown %s name %q", what, s.rest())
}

// normalizeWords lower-cases the phrase and spells accidental glyphs as words
// so "locrian ♮6", "Locrian nat6" and "locrian natural 6" compare equal.
func normalizeWords(phrase string) []string {
	lower := cases.Lower(language.Und).String(phrase)
	fields := strings.Fields(lower)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, normalizeWord(f))
	}
	return out
}

func normalizeWord(word string) string {
	word = strings.NewReplacer("♮", "natural", "♯", "sharp", "#", "sharp", "♭", "flat").Replace(word)
	runes := []rune(word)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		nextDigit := func(at int) bool { return at < len(runes) && unicode.IsDigit(runes[at]) }
		switch {
		case runes[i] == 'b' && nextDigit(i+1):
			b.WriteString("flat")
		case strings.HasPrefix(string(runes[i:]), "nat") && nextDigit(i+3):
			b.WriteString("natural")
			i += 2
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
