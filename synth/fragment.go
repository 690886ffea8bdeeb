package synth

import "strings"

// Kind classifies a rendered pattern fragment. The classification is computed
// once per fragment by a single scan; composition decisions (quantifier
// wrapping, alternation wrapping) derive from it instead of re-parsing the
// fragment text at every use site.
type Kind int

const (
	// KindEmpty is the empty fragment.
	KindEmpty Kind = iota
	// KindLiteral is a single non-special literal character.
	KindLiteral
	// KindEscape is a single backslash escape: a 2-character escape,
	// \xNN, \uNNNN, or \u{...}.
	KindEscape
	// KindClass is a single balanced character class [...].
	KindClass
	// KindGroup is a single balanced parenthesized group, optionally
	// followed by one trailing ?.
	KindGroup
	// KindAlternation is a fragment with a top-level | branch.
	KindAlternation
	// KindCompound is any other composition (concatenations, quantified
	// atoms, unbalanced text).
	KindCompound
)

// Classify scans frag and returns its Kind.
func Classify(frag string) Kind {
	if frag == "" {
		return KindEmpty
	}
	i := 0
	tokens := 0
	firstEnd := 0
	firstKind := KindCompound
	for i < len(frag) {
		if frag[i] == '|' {
			return KindAlternation
		}
		n, k := token(frag, i)
		if n <= 0 {
			return KindCompound
		}
		tokens++
		if tokens == 1 {
			firstKind, firstEnd = k, i+n
		}
		i += n
	}
	if tokens == 1 {
		return firstKind
	}
	if firstKind == KindGroup && frag[firstEnd:] == "?" {
		return KindGroup
	}
	return KindCompound
}

// IsAtomic reports whether frag can be directly suffixed with a quantifier.
// Atomic forms: a single non-special literal character, a 2-character
// backslash escape, \uNNNN, \u{...} without embedded alternation, one
// character class, or one group optionally followed by a trailing ?.
// \xNN escapes are deliberately excluded and get wrapped.
func IsAtomic(frag string) bool {
	switch Classify(frag) {
	case KindLiteral, KindClass, KindGroup:
		return true
	case KindEscape:
		return len(frag) == 2 || strings.HasPrefix(frag, `\u`)
	}
	return false
}

// group wraps frag in a non-capturing group.
func group(frag string) string {
	return "(?:" + frag + ")"
}

// atomic returns frag unchanged when it is safe to quantify, and wrapped in
// a non-capturing group otherwise.
func atomic(frag string) string {
	if IsAtomic(frag) {
		return frag
	}
	return group(frag)
}

// wrapAlternation wraps frag for concatenation: only top-level alternation
// changes meaning when concatenated, everything else composes as-is.
func wrapAlternation(frag string) string {
	if Classify(frag) == KindAlternation {
		return group(frag)
	}
	return frag
}

// token measures the single pattern token starting at byte i of s and
// reports its kind. Returns 0 for unbalanced or truncated input.
func token(s string, i int) (int, Kind) {
	switch s[i] {
	case '\\':
		return escapeToken(s, i)
	case '[':
		return classToken(s, i)
	case '(':
		return groupToken(s, i)
	case ')', ']':
		return 0, KindCompound
	default:
		if strings.IndexByte(patternSpecials, s[i]) >= 0 {
			return 1, KindCompound
		}
		return 1, KindLiteral
	}
}

func escapeToken(s string, i int) (int, Kind) {
	if i+1 >= len(s) {
		return 0, KindCompound
	}
	switch s[i+1] {
	case 'u':
		if i+2 < len(s) && s[i+2] == '{' {
			j := strings.IndexByte(s[i+3:], '}')
			if j < 0 {
				return 0, KindCompound
			}
			if strings.ContainsRune(s[i+3:i+3+j], '|') {
				return j + 4, KindCompound
			}
			return j + 4, KindEscape
		}
		if i+6 <= len(s) && isHexString(s[i+2:i+6]) {
			return 6, KindEscape
		}
		return 2, KindEscape
	case 'x':
		if i+4 <= len(s) && isHexString(s[i+2:i+4]) {
			return 4, KindEscape
		}
		return 2, KindEscape
	default:
		return 2, KindEscape
	}
}

func classToken(s string, i int) (int, Kind) {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case ']':
			return j - i + 1, KindClass
		}
	}
	return 0, KindCompound
}

func groupToken(s string, i int) (int, Kind) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '[':
			n, k := classToken(s, j)
			if k != KindClass {
				return 0, KindCompound
			}
			j += n - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j - i + 1, KindGroup
			}
		}
	}
	return 0, KindCompound
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
