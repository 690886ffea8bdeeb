package synth

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/regexgen/internal/conv"
	"github.com/coregx/regexgen/literal"
)

// codePointClass renders a set whose members are all single code points as
// one character class. In non-Unicode mode astral members decline the class
// (a surrogate escape pair inside a class would match either half, not the
// pair), falling through to the alternation strategy where the pair escapes
// concatenate correctly.
func codePointClass(set *literal.Set, opts Options) (string, bool) {
	points := make([]rune, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		r, ok := set.Get(i).SingleCodePoint()
		if !ok || !opts.Unicode && r > 0xFFFF {
			return "", false
		}
		points = append(points, r)
	}
	return buildClass(points, opts), true
}

// buildClass renders sorted code points as a character class, merging runs of
// three or more consecutive points into a-z ranges. Two-point runs stay
// unranged: a-b is no shorter than ab.
func buildClass(points []rune, opts Options) string {
	sorted := make([]rune, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if j-i >= 2 {
			b.WriteString(EscapeCodePoint(sorted[i], opts.Unicode, true))
			b.WriteByte('-')
			b.WriteString(EscapeCodePoint(sorted[j], opts.Unicode, true))
			i = j + 1
		} else {
			for ; i <= j; i++ {
				b.WriteString(EscapeCodePoint(sorted[i], opts.Unicode, true))
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// condenseClass merges rendered fragments into one character class when every
// fragment denotes exactly one code point. Used by the second-order factoring
// pass, which holds rendered text rather than the original literals.
func condenseClass(frags []string, opts Options) (string, bool) {
	points := make([]rune, 0, len(frags))
	for _, f := range frags {
		r, ok := pointOfFragment(f)
		if !ok || !opts.Unicode && r > 0xFFFF {
			return "", false
		}
		points = append(points, r)
	}
	return buildClass(points, opts), true
}

// pointOfFragment recovers the code point a single-token rendered fragment
// denotes: a bare literal character, a control shorthand, an escaped
// metacharacter, or a \xNN, \uNNNN, or \u{...} escape. Multi-token fragments
// (including surrogate escape pairs) report false.
func pointOfFragment(frag string) (rune, bool) {
	switch {
	case frag == "":
		return 0, false
	case len(frag) == 1:
		if strings.IndexByte(patternSpecials, frag[0]) >= 0 {
			return 0, false
		}
		return rune(frag[0]), true
	case frag[0] != '\\':
		return 0, false
	}

	body := frag[1:]
	switch {
	case len(body) == 1:
		switch body[0] {
		case 't':
			return '\t', true
		case 'n':
			return '\n', true
		case 'v':
			return '\v', true
		case 'f':
			return '\f', true
		case 'r':
			return '\r', true
		}
		if isHexDigit(body[0]) || body[0] >= 'a' && body[0] <= 'z' || body[0] >= 'A' && body[0] <= 'Z' {
			// Unknown letter escapes (\d, \w, ...) are not single points.
			return 0, false
		}
		return rune(body[0]), true
	case body[0] == 'x' && len(body) == 3 && isHexString(body[1:]):
		v, err := strconv.ParseUint(body[1:], 16, 16)
		if err != nil {
			return 0, false
		}
		return rune(conv.Uint64ToUint16(v)), true
	case body[0] == 'u' && len(body) == 5 && isHexString(body[1:]):
		v, err := strconv.ParseUint(body[1:], 16, 16)
		if err != nil {
			return 0, false
		}
		return rune(conv.Uint64ToUint16(v)), true
	case body[0] == 'u' && len(body) > 3 && body[1] == '{' && body[len(body)-1] == '}':
		hex := body[2 : len(body)-1]
		if !isHexString(hex) || len(hex) > 6 {
			return 0, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || v > 0x10FFFF {
			return 0, false
		}
		return conv.Uint64ToRune(v), true
	}
	return 0, false
}
