package synth

import (
	"strconv"
	"strings"

	"github.com/coregx/regexgen/literal"
)

// affixSplit is one allocation of common prefix/suffix lengths.
type affixSplit struct {
	p, s int
}

// affixFactor extracts the longest common prefix and suffix, recurses on the
// stripped middles, and concatenates prefix + middle + suffix.
//
// When prefix and suffix overlap on the shortest member, the overlap is
// allocated three ways: proportionally to the affix lengths, prefix-biased,
// and suffix-biased. All allocations are rendered and the shortest result
// wins; ties favor the proportional split.
func affixFactor(set *literal.Set, opts Options) (string, bool) {
	lcp := set.LongestCommonPrefix()
	lcs := set.LongestCommonSuffix()
	if lcp == 0 && lcs == 0 {
		return "", false
	}

	minLen := set.MinLen()
	var splits []affixSplit
	if lcp+lcs <= minLen {
		splits = []affixSplit{{lcp, lcs}}
	} else {
		b := minLen
		p := lcp * b / (lcp + lcs)
		splits = appendSplit(splits, affixSplit{p, b - p})
		p = min(lcp, b)
		splits = appendSplit(splits, affixSplit{p, min(lcs, b-p)})
		s := min(lcs, b)
		splits = appendSplit(splits, affixSplit{min(lcp, b-s), s})
	}

	sample := set.Get(0)
	best := ""
	for _, sp := range splits {
		p, s := sp.p, sp.s
		if opts.Unicode {
			p = literal.SafePrefixLen(sample, p)
			s = literal.SafeSuffixLen(sample, s)
		}
		if p == 0 && s == 0 {
			continue
		}
		r := renderAffix(set, p, s, opts)
		if best == "" || len(r) < len(best) {
			best = r
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func appendSplit(splits []affixSplit, sp affixSplit) []affixSplit {
	for _, have := range splits {
		if have == sp {
			return splits
		}
	}
	return append(splits, sp)
}

// renderAffix renders one prefix/suffix allocation: the middles are
// synthesized recursively, wrapped when they carry a top-level alternation,
// and sandwiched between the escaped affixes. When the middle is itself a
// repetition of the prefix, the two merge into one repetition with an
// incremented count.
func renderAffix(set *literal.Set, p, s int, opts Options) string {
	sample := set.Get(0)
	prefix := EscapeLit(sample.Slice(0, p), opts.Unicode)
	suffix := EscapeLit(sample.Slice(sample.Len()-s, sample.Len()), opts.Unicode)

	mid := compile(set.StripAffixes(p, s), opts)
	out := prefix + wrapAlternation(mid) + suffix

	if p > 0 {
		if merged, ok := mergePrefixRepetition(prefix, mid); ok && len(merged)+len(suffix) < len(out) {
			out = merged + suffix
		}
	}
	return out
}

// mergePrefixRepetition merges prefix + prefix-repetition middles:
// ab + (?:ab){1,2} becomes (?:ab){2,3}, ab + (?:ab)? becomes (?:ab){1,2}.
func mergePrefixRepetition(prefix, mid string) (string, bool) {
	unit := atomic(prefix)
	rest, found := strings.CutPrefix(mid, unit)
	if !found {
		return "", false
	}
	switch {
	case rest == "?":
		return unit + "{1,2}", true
	case strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}"):
		lo, hi, ok := parseCounts(rest[1 : len(rest)-1])
		if !ok {
			return "", false
		}
		if hi < 0 {
			return unit + "{" + strconv.Itoa(lo+1) + "}", true
		}
		return unit + "{" + strconv.Itoa(lo+1) + "," + strconv.Itoa(hi+1) + "}", true
	}
	return "", false
}

// parseCounts parses "n" or "min,max" from a rendered {..} quantifier.
// hi is -1 for the exact-count form.
func parseCounts(body string) (lo, hi int, ok bool) {
	lo, hi = 0, -1
	head, tail, comma := strings.Cut(body, ",")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, 0, false
	}
	lo = n
	if comma {
		m, err := strconv.Atoi(tail)
		if err != nil {
			return 0, 0, false
		}
		hi = m
	}
	return lo, hi, true
}
