package synth

import (
	"strings"

	"github.com/coregx/regexgen/literal"
)

// alternation is the terminal fallback: escape every member and join with |.
// Two condensation passes compete with the plain join and the shortest
// rendering wins: single-character branches collapse into a class (optionally
// followed by factoring a common atomic suffix off all remaining branches),
// and sets whose members differ in exactly one character condense into
// prefix[class]suffix.
func alternation(set *literal.Set, opts Options) string {
	branches := make([]string, set.Len())
	for i := range branches {
		branches[i] = EscapeLit(set.Get(i), opts.Unicode)
	}
	best := strings.Join(branches, "|")

	if cond, ok := condenseSingles(set, opts); ok && len(cond) < len(best) {
		best = cond
	}
	if cond, ok := condenseSandwich(set, opts); ok && len(cond) < len(best) {
		best = cond
	}
	return best
}

// condenseSingles groups the branches that are single code points into one
// character class, then factors a common atomic suffix across the resulting
// branches when every branch keeps a non-empty head.
func condenseSingles(set *literal.Set, opts Options) (string, bool) {
	var points []rune
	var multi []string
	for i := 0; i < set.Len(); i++ {
		l := set.Get(i)
		if r, ok := l.SingleCodePoint(); ok && (opts.Unicode || r <= 0xFFFF) {
			points = append(points, r)
			continue
		}
		multi = append(multi, EscapeLit(l, opts.Unicode))
	}
	if len(points) < 2 || len(multi) == 0 {
		return "", false
	}

	branches := append(multi, buildClass(points, opts))
	if factored, ok := factorAtomicSuffix(branches); ok {
		return factored, true
	}
	return strings.Join(branches, "|"), true
}

// factorAtomicSuffix factors a shared trailing atomic token off every branch:
// (?:ab|cd)z style. Applies only when the token is identical across branches,
// atomic, and leaves every head non-empty.
func factorAtomicSuffix(branches []string) (string, bool) {
	if len(branches) < 2 {
		return "", false
	}
	tail := trailingToken(branches[0])
	if tail == "" || !IsAtomic(tail) {
		return "", false
	}
	heads := make([]string, len(branches))
	for i, b := range branches {
		if len(b) <= len(tail) || trailingToken(b) != tail {
			return "", false
		}
		heads[i] = b[:len(b)-len(tail)]
	}
	return group(strings.Join(heads, "|")) + tail, true
}

// trailingToken returns the final whole token of a fragment, or "" when the
// fragment does not tokenize cleanly.
func trailingToken(frag string) string {
	start, pos := 0, 0
	for pos < len(frag) {
		if frag[pos] == '|' {
			return ""
		}
		n, _ := token(frag, pos)
		if n <= 0 {
			return ""
		}
		start = pos
		pos += n
	}
	return frag[start:]
}

// condenseSandwich renders the whole set as prefix[class]suffix when every
// member is its common prefix, one code point, then its common suffix.
func condenseSandwich(set *literal.Set, opts Options) (string, bool) {
	lcp := set.LongestCommonPrefix()
	lcs := set.LongestCommonSuffix()
	if opts.Unicode {
		lcp = literal.SafePrefixLen(set.Get(0), lcp)
		lcs = literal.SafeSuffixLen(set.Get(0), lcs)
	}
	if lcp == 0 && lcs == 0 || lcp+lcs > set.MinLen() {
		return "", false
	}

	points := make([]rune, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		l := set.Get(i)
		r, ok := l.Slice(lcp, l.Len()-lcs).SingleCodePoint()
		if !ok || !opts.Unicode && r > 0xFFFF {
			return "", false
		}
		points = append(points, r)
	}

	sample := set.Get(0)
	prefix := EscapeLit(sample.Slice(0, lcp), opts.Unicode)
	suffix := EscapeLit(sample.Slice(sample.Len()-lcs, sample.Len()), opts.Unicode)
	return prefix + buildClass(points, opts) + suffix, true
}
