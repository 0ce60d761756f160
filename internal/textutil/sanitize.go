package textutil

import "strings"

// symbolReplacer spells musical glyphs and chord symbols in ASCII.
var symbolReplacer = strings.NewReplacer(
	"𝄪", "x",
	"𝄫", "bb",
	"♯", "s",
	"#", "s",
	"♭", "b",
	"♮", "n",
	"ø", "hdim",
	"°", "dim",
	"Δ", "maj",
	"+", "aug",
)

// SanitizeToken converts a string to a lowercase filesystem-safe token.
// Musical glyphs are spelled out first; letters are lowercased, digits and
// hyphens are kept, and every other run of characters becomes a single
// underscore. Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = symbolReplacer.Replace(strings.TrimSpace(value))
	var b strings.Builder
	pending := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('_')
		}
		pending = false
		b.WriteRune(r)
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "unknown"
	}
	return out
}

// FileName returns SanitizeToken(value) with ext appended.
func FileName(value, ext string) string {
	return SanitizeToken(value) + ext
}
