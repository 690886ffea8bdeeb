package synth

import (
	"sort"
	"strings"

	"github.com/coregx/regexgen/literal"
)

// groupedAlternation partitions a set with no common affix by boundary
// character, synthesizes each partition, and factors a common textual prefix
// across the rendered per-partition patterns (a second-order factoring pass
// over synthesized sub-patterns, not over the original strings).
//
// Both first-character and last-character partitionings are computed; the one
// with fewer partitions wins, ties favoring the shorter rendered result.
// Last-character partitions are re-ordered by descending size so larger
// groups factor first. Declines when every partition is a singleton either
// way, leaving the set to the class and alternation fallbacks.
func groupedAlternation(set *literal.Set, opts Options) (string, bool) {
	byFirst := partitionByFirst(set)
	byLast := partitionByLast(set)

	nf, nl := len(byFirst), len(byLast)
	if min(nf, nl) >= set.Len() {
		return "", false
	}
	switch {
	case nf < nl:
		return renderPartitions(byFirst, opts), true
	case nl < nf:
		return renderPartitions(byLast, opts), true
	default:
		a := renderPartitions(byFirst, opts)
		b := renderPartitions(byLast, opts)
		if len(b) < len(a) {
			return b, true
		}
		return a, true
	}
}

// partitionByFirst splits the sorted set into runs sharing the same leading
// code point. Sorted order keeps such runs adjacent, so partitions come out
// in set order.
func partitionByFirst(set *literal.Set) []*literal.Set {
	var parts []*literal.Set
	var run []literal.Lit
	var prev rune = -1
	for i := 0; i < set.Len(); i++ {
		l := set.Get(i)
		r, _ := l.DecodePoint(0)
		if i > 0 && r != prev {
			parts = append(parts, literal.FromLits(run))
			run = run[:0:0]
		}
		run = append(run, l)
		prev = r
	}
	return append(parts, literal.FromLits(run))
}

// partitionByLast groups members by trailing code point, preserving first
// appearance order, then re-orders partitions by descending size.
func partitionByLast(set *literal.Set) []*literal.Set {
	var order []rune
	groups := make(map[rune][]literal.Lit)
	for i := 0; i < set.Len(); i++ {
		l := set.Get(i)
		r := lastCodePoint(l)
		if _, seen := groups[r]; !seen {
			order = append(order, r)
		}
		groups[r] = append(groups[r], l)
	}

	parts := make([]*literal.Set, len(order))
	for i, r := range order {
		parts[i] = literal.FromLits(groups[r])
	}
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].Len() > parts[j].Len()
	})
	return parts
}

func lastCodePoint(l literal.Lit) rune {
	n := l.Len()
	if n >= 2 && literal.IsLowSurrogate(l[n-1]) && literal.IsHighSurrogate(l[n-2]) {
		return literal.CombineSurrogates(l[n-2], l[n-1])
	}
	return rune(l[n-1])
}

// renderPartitions synthesizes each partition and joins them, preferring the
// prefix-factored form when it is shorter than the plain join.
func renderPartitions(parts []*literal.Set, opts Options) string {
	pats := make([]string, len(parts))
	for i, p := range parts {
		pats[i] = compile(p, opts)
	}
	plain := strings.Join(pats, "|")
	if factored, ok := factorRenderedPrefix(pats, opts); ok && len(factored) < len(plain) {
		return factored
	}
	return plain
}

// factorRenderedPrefix pulls the longest syntactically safe common prefix
// out of the rendered patterns and classifies the remainders:
//
//	all empty                  -> prefix
//	all non-empty              -> prefix(?:a|b)
//	one empty, one non-empty   -> prefix + optional remainder
//	one empty, several         -> prefix[ab]? or prefix(?:a|b)?
func factorRenderedPrefix(pats []string, opts Options) (string, bool) {
	if len(pats) < 2 {
		return "", false
	}
	cp := pats[0]
	for _, p := range pats[1:] {
		cp = commonStringPrefix(cp, p)
	}
	cp = cp[:safePrefixBoundary(cp, pats)]
	if cp == "" {
		return "", false
	}

	var nonEmpty []string
	empties := 0
	for _, p := range pats {
		if rem := p[len(cp):]; rem == "" {
			empties++
		} else {
			nonEmpty = append(nonEmpty, rem)
		}
	}
	switch {
	case len(nonEmpty) == 0:
		return cp, true
	case empties == 0:
		return cp + group(strings.Join(nonEmpty, "|")), true
	case len(nonEmpty) == 1:
		return cp + optional(nonEmpty[0]), true
	default:
		if cls, ok := condenseClass(nonEmpty, opts); ok {
			return cp + cls + "?", true
		}
		return cp + group(strings.Join(nonEmpty, "|")) + "?", true
	}
}

func commonStringPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

// safePrefixBoundary returns the longest cut position of cp that ends on a
// whole token (never mid-escape, never inside an open class or group) and
// detaches no quantifier in any pattern. Boundaries are computed on the
// first full pattern, not on cp itself: cp is a truncation and could end in
// the middle of a token that only the full pattern reveals.
func safePrefixBoundary(cp string, pats []string) int {
	full := pats[0]
	safe := 0
	pos := 0
	for pos < len(cp) {
		n, _ := token(full, pos)
		if n <= 0 || pos+n > len(cp) {
			break
		}
		pos += n
		if !quantifierFollows(pats, pos) {
			safe = pos
		}
	}
	return safe
}

func quantifierFollows(pats []string, pos int) bool {
	for _, p := range pats {
		if len(p) > pos {
			switch p[pos] {
			case '?', '*', '+', '{':
				return true
			}
		}
	}
	return false
}
