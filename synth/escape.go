package synth

import (
	"fmt"
	"strings"

	"github.com/coregx/regexgen/literal"
)

// patternSpecials are the metacharacters escaped in pattern context. The
// forward slash is included because the consuming grammar files embed
// patterns between / delimiters.
const patternSpecials = `.*+?^${}()|[]\/`

// classSpecials are the characters that additionally need escaping inside
// a character class.
const classSpecials = `\[]^-`

// controlShorthand maps the control characters that keep their single-letter
// escapes instead of being rendered as hex.
var controlShorthand = map[rune]string{
	'\t': `\t`,
	'\n': `\n`,
	'\v': `\v`,
	'\f': `\f`,
	'\r': `\r`,
}

// EscapeCodePoint renders one code point for inclusion in a pattern
// (inClass=false) or a character class (inClass=true).
//
// Printable ASCII stays literal unless it is a metacharacter for the given
// context. Control and high-byte code points become \xNN, BMP code points
// above 0xFF become \uNNNN, and astral code points become either a
// \uNNNN\uNNNN surrogate escape pair (default) or \u{N...} (Unicode mode).
func EscapeCodePoint(r rune, unicode, inClass bool) string {
	if sh, ok := controlShorthand[r]; ok {
		return sh
	}
	if r >= 0x20 && r <= 0x7E {
		specials := patternSpecials
		if inClass {
			specials = classSpecials
		}
		if strings.ContainsRune(specials, r) {
			return `\` + string(r)
		}
		return string(r)
	}
	switch {
	case r <= 0xFF:
		return fmt.Sprintf(`\x%02X`, r)
	case r <= 0xFFFF:
		return fmt.Sprintf(`\u%04X`, r)
	case unicode:
		return fmt.Sprintf(`\u{%X}`, r)
	default:
		hi, lo := literal.SplitSurrogates(r)
		return fmt.Sprintf(`\u%04X\u%04X`, hi, lo)
	}
}

// EscapeLit renders a whole literal for pattern context, consuming surrogate
// pairs as single code points.
func EscapeLit(l literal.Lit, unicode bool) string {
	var b strings.Builder
	for i := 0; i < l.Len(); {
		r, size := l.DecodePoint(i)
		b.WriteString(EscapeCodePoint(r, unicode, false))
		i += size
	}
	return b.String()
}

// EscapeString is EscapeLit for callers holding a Go string.
func EscapeString(s string, unicode bool) string {
	return EscapeLit(literal.FromString(s), unicode)
}
