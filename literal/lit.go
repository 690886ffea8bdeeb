// Package literal provides the string-set model for pattern generation.
//
// Generated patterns target the ECMAScript regex dialect, whose semantics
// (lexicographic ordering, affix boundaries, character counting) are defined
// over UTF-16 code units rather than bytes or runes. The package therefore
// represents every input literal as a []uint16 code-unit sequence and exposes
// the operations the synthesizer needs: code-unit ordering, common affix
// computation, affix stripping, and surrogate-pair-aware boundary repair.
//
// Key concepts:
//   - A Lit is one input literal as UTF-16 code units
//   - A Set is an ordered, deduplicated sequence of Lits
//   - Affix operations (LongestCommonPrefix, LongestCommonSuffix, StripAffixes)
//     drive the factoring strategies of the synthesizer
package literal

import (
	"unicode/utf16"
)

// Lit represents a single input literal as a sequence of UTF-16 code units.
//
// Unpaired surrogates are representable (the generator can be asked to emit
// patterns for them in non-Unicode mode), which is why Lit is not simply a
// Go string or []rune.
type Lit []uint16

// FromString converts a Go string to its UTF-16 code-unit representation.
//
// Example:
//
//	lit := literal.FromString("a😀")
//	fmt.Println(lit.Len()) // Output: 3 (one unit + one surrogate pair)
func FromString(s string) Lit {
	return Lit(utf16.Encode([]rune(s)))
}

// String decodes the literal back to a Go string. Unpaired surrogates decode
// to U+FFFD, so String is for display; use Key for identity.
func (l Lit) String() string {
	return string(utf16.Decode(l))
}

// Key returns a binary representation usable as a map key. Unlike String,
// it is injective even for literals containing unpaired surrogates.
func (l Lit) Key() string {
	b := make([]byte, 0, len(l)*2)
	for _, u := range l {
		b = append(b, byte(u>>8), byte(u))
	}
	return string(b)
}

// Len returns the length of the literal in UTF-16 code units.
func (l Lit) Len() int {
	return len(l)
}

// IsEmpty reports whether the literal is the empty string.
func (l Lit) IsEmpty() bool {
	return len(l) == 0
}

// Compare orders two literals lexicographically by code unit. This matches
// the ordering the consuming grammar toolchain applies to symbol lists, and
// differs from rune ordering: an astral code point (whose high surrogate is
// 0xD800-0xDBFF) sorts before U+E000..U+FFFF.
func Compare(a, b Lit) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether two literals contain identical code units.
func Equal(a, b Lit) bool {
	return Compare(a, b) == 0
}

// CodePointCount returns the number of Unicode code points in the literal,
// counting each well-formed surrogate pair as one.
func (l Lit) CodePointCount() int {
	n := 0
	for i := 0; i < len(l); {
		if IsHighSurrogate(l[i]) && i+1 < len(l) && IsLowSurrogate(l[i+1]) {
			i += 2
		} else {
			i++
		}
		n++
	}
	return n
}

// SingleCodePoint returns the literal's sole code point, if it consists of
// exactly one (a lone BMP unit or one surrogate pair).
func (l Lit) SingleCodePoint() (rune, bool) {
	switch len(l) {
	case 1:
		return rune(l[0]), true
	case 2:
		if IsHighSurrogate(l[0]) && IsLowSurrogate(l[1]) {
			return CombineSurrogates(l[0], l[1]), true
		}
	}
	return 0, false
}

// DecodePoint decodes the code point starting at unit index i and returns it
// together with the number of units consumed (1 or 2). An unpaired surrogate
// is returned as-is with size 1.
func (l Lit) DecodePoint(i int) (rune, int) {
	u := l[i]
	if IsHighSurrogate(u) && i+1 < len(l) && IsLowSurrogate(l[i+1]) {
		return CombineSurrogates(u, l[i+1]), 2
	}
	return rune(u), 1
}

// Repeats reports whether the literal is the prefix of length period repeated
// end to end. The period must divide the literal length.
func (l Lit) Repeats(period int) bool {
	if period <= 0 || len(l)%period != 0 {
		return false
	}
	for i := period; i < len(l); i++ {
		if l[i] != l[i-period] {
			return false
		}
	}
	return true
}

// Concat returns the concatenation of the receiver and other as a new Lit.
func (l Lit) Concat(other Lit) Lit {
	out := make(Lit, 0, len(l)+len(other))
	out = append(out, l...)
	out = append(out, other...)
	return out
}

// Slice returns the sub-literal of units [from:to). The result aliases the
// receiver's backing array.
func (l Lit) Slice(from, to int) Lit {
	return l[from:to]
}
