// Package synth implements the recursive pattern synthesizer: given a
// normalized set of literal strings it renders a single regular expression
// fragment matching exactly that set, choosing among competing strategies
// and recursing on sub-problems.
//
// Strategy order (first applicable wins):
//  1. singleton repetition fold            ab ab ab        -> (?:ab){3}
//  2. cartesian-product factoring          "",x,y,xy       -> (?:x)?(?:y)?
//  3. global repetition fold               ab,abab,ababab  -> (?:ab){1,3}
//  4. empty-string absorption              "",foo          -> (?:foo)?
//  5. common affix factoring               color,colour    -> colou?r
//  6. grouped alternation by boundary char
//  7. single-code-point character class    a,b,c           -> [a-c]
//  8. escaped alternation with condensation
//
// Whenever two renderings compete, the shorter one wins; the explicit
// evaluation points are the affix split candidates of step 5 and the
// first-versus-last-character partitioning of step 6.
//
// The synthesizer is pure: no caches, no shared state, deterministic output
// for a given normalized set.
package synth

import (
	"strconv"

	"github.com/coregx/regexgen/literal"
)

// EmptyMatch is the always-matching empty group emitted for the empty set
// and for the set containing only the empty string.
const EmptyMatch = "(?:)"

// Options control rendering.
type Options struct {
	// Unicode selects the ECMAScript u-flag dialect: astral code points
	// render as \u{...} instead of surrogate escape pairs, and affix or
	// repetition boundaries never split a surrogate pair.
	Unicode bool

	// Relax permits over-generalizing condensations (such as a sparse
	// repetition range collapsing to {min,max}). Off by default:
	// exactness is the contract, superset matching is opt-in.
	Relax bool
}

// Compile renders the pattern fragment for a normalized set. The fragment
// matches exactly the members of the set when externally anchored; callers
// add their own boundary assertions.
func Compile(set *literal.Set, opts Options) string {
	if set.Len() == 0 || set.Len() == 1 && set.Get(0).IsEmpty() {
		return EmptyMatch
	}
	return compile(set, opts)
}

// compile dispatches the strategy chain. The set is non-empty and contains
// at least one non-empty member.
func compile(set *literal.Set, opts Options) string {
	if set.Len() == 1 {
		return singleton(set.Get(0), opts)
	}
	if set.HasEmpty() {
		if p, ok := cartesian(set, opts); ok {
			// Both factorings can apply to sets like "",a,aa,aaa;
			// shortest rendering wins.
			if q, ok := repetitionFold(set, opts); ok && len(q) < len(p) {
				return q
			}
			return p
		}
	}
	if p, ok := repetitionFold(set, opts); ok {
		return p
	}
	if set.HasEmpty() {
		return optional(compile(set.WithoutEmpty(), opts))
	}
	if p, ok := affixFactor(set, opts); ok {
		return p
	}
	if p, ok := groupedAlternation(set, opts); ok {
		return p
	}
	if p, ok := codePointClass(set, opts); ok {
		return p
	}
	return alternation(set, opts)
}

// singleton renders a one-member set, folding exact repetitions of a shorter
// period into period{N} when that is actually shorter.
func singleton(l literal.Lit, opts Options) string {
	plain := EscapeLit(l, opts.Unicode)
	n := l.Len()
	for p := 1; p <= n/2; p++ {
		if n%p != 0 || !l.Repeats(p) {
			continue
		}
		if opts.Unicode && splitsPair(l, p) {
			continue
		}
		folded := atomic(EscapeLit(l.Slice(0, p), opts.Unicode)) + "{" + strconv.Itoa(n/p) + "}"
		if len(folded) < len(plain) {
			return folded
		}
		break
	}
	return plain
}

// splitsPair reports whether a repetition period boundary would bisect a
// surrogate pair anywhere in the literal.
func splitsPair(l literal.Lit, period int) bool {
	for i := period; i < l.Len(); i += period {
		if literal.IsHighSurrogate(l[i-1]) && literal.IsLowSurrogate(l[i]) {
			return true
		}
	}
	return false
}

// repetitionFold collapses a set whose members are all repetitions of one
// fixed unit into unit{min,max}. The unit length is the gcd of the member
// lengths; the count range must be contiguous (every count between min and
// max present) unless Relax is set.
func repetitionFold(set *literal.Set, opts Options) (string, bool) {
	g := 0
	for i := 0; i < set.Len(); i++ {
		g = gcd(g, set.Get(i).Len())
	}
	if g == 0 {
		return "", false
	}

	var unit literal.Lit
	for i := 0; i < set.Len(); i++ {
		if !set.Get(i).IsEmpty() {
			unit = set.Get(i).Slice(0, g)
			break
		}
	}
	for i := 0; i < set.Len(); i++ {
		l := set.Get(i)
		if !l.Repeats(g) || !l.IsEmpty() && !literal.Equal(l.Slice(0, g), unit) {
			return "", false
		}
	}
	if opts.Unicode {
		for i := 0; i < set.Len(); i++ {
			if splitsPair(set.Get(i), g) {
				return "", false
			}
		}
	}

	min, max := set.MinLen()/g, set.MaxLen()/g
	if !opts.Relax && set.Len() != max-min+1 {
		// Sparse count range: {min,max} would match absent members.
		return "", false
	}

	q := atomic(EscapeLit(unit, opts.Unicode))
	switch {
	case min == 0 && max == 1:
		return q + "?", true
	case min == max:
		return q + "{" + strconv.Itoa(min) + "}", true
	default:
		return q + "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}", true
	}
}

// optional suffixes a fragment with ?, grouping first when the fragment is
// not atomic.
func optional(frag string) string {
	return atomic(frag) + "?"
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
