package rendering

import (
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Gap records a rune the core PDF fonts cannot show and what was drawn instead
type Gap struct {
	Rune        rune   `json:"rune"`
	Replacement string `json:"replacement"`
}

// unknownGlyph is drawn for runes with no cp1252 equivalent, even after folding
const unknownGlyph = "?"

// encodeCP1252 converts UTF-8 text into the single-byte Windows-1252 string the
// core fonts expect. Runes outside the code page are folded with NFKD (marks
// stripped) when that yields representable text, otherwise replaced with "?".
// Every rune that was not directly representable is returned as a Gap.
func encodeCP1252(text string) (string, []Gap) {
	out := make([]byte, 0, len(text))
	var gaps []Gap

	for _, r := range text {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}

		replacement := unknownGlyph
		if folded, ok := foldRune(r); ok {
			replacement = folded
		}
		for _, fr := range replacement {
			b, _ := charmap.Windows1252.EncodeRune(fr)
			out = append(out, b)
		}
		gaps = append(gaps, Gap{Rune: r, Replacement: replacement})
	}

	return string(out), gaps
}

// foldRune decomposes r and drops combining marks, e.g. 'ł' stays unfoldable
// but 'ǹ' becomes "n". ok is false when the result is empty or still contains
// runes outside cp1252.
func foldRune(r rune) (string, bool) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, string(r))
	if err != nil || folded == "" || folded == string(r) {
		return "", false
	}
	for _, fr := range folded {
		if _, ok := charmap.Windows1252.EncodeRune(fr); !ok {
			return "", false
		}
	}
	return folded, true
}
