package synth

import (
	"math/bits"
	"strings"

	"github.com/coregx/regexgen/literal"
)

// maxCartesianAtoms bounds the power-set membership check: 2^20 generated
// concatenations is the most the exactness test will enumerate. Beyond that
// the detector declines rather than exploring partial subsets.
const maxCartesianAtoms = 20

// cartesian factors a set containing the empty string into a sequence of
// independently optional atoms: (?:a)?(?:b)?... It applies only when the
// atoms generate the input set exactly (every subset concatenation is a
// member, every member is a subset concatenation), so the rendering never
// over-generalizes.
//
// The atoms are an ordered partition of the longest member, each atom being
// itself a member of the set; atom order is their order of appearance. A
// single-atom factoring is left to the repetition fold, which renders it
// more compactly.
func cartesian(set *literal.Set, opts Options) (string, bool) {
	n := set.Len()
	// Power-set cardinality: need 2^k members with k >= 2 atoms.
	if n < 4 || n&(n-1) != 0 {
		return "", false
	}
	k := bits.TrailingZeros(uint(n))
	if k > maxCartesianAtoms {
		return "", false
	}

	// The all-atoms concatenation is the unique longest member.
	longest, second := literal.Lit(nil), 0
	for i := 0; i < n; i++ {
		l := set.Get(i)
		if longest == nil || l.Len() > longest.Len() {
			if longest != nil && longest.Len() > second {
				second = longest.Len()
			}
			longest = l
		} else if l.Len() > second {
			second = l.Len()
		}
	}
	if longest.Len() == second {
		return "", false
	}

	atoms := partitionAtoms(longest, set, k, nil)
	if atoms == nil || !powerSetEquals(atoms, set) {
		return "", false
	}

	var b strings.Builder
	for _, a := range atoms {
		b.WriteString(group(EscapeLit(a, opts.Unicode)))
		b.WriteByte('?')
	}
	return b.String(), true
}

// partitionAtoms searches for an ordered partition of rest into exactly k
// pieces, each piece a non-empty member of the set. Depth-first over piece
// lengths; the first complete partition is returned.
func partitionAtoms(rest literal.Lit, set *literal.Set, k int, acc []literal.Lit) []literal.Lit {
	if rest.IsEmpty() {
		if k == 0 {
			out := make([]literal.Lit, len(acc))
			copy(out, acc)
			return out
		}
		return nil
	}
	if k == 0 {
		return nil
	}
	for end := 1; end <= rest.Len()-(k-1); end++ {
		piece := rest.Slice(0, end)
		if !set.Contains(piece) {
			continue
		}
		if found := partitionAtoms(rest.Slice(end, rest.Len()), set, k-1, append(acc, piece)); found != nil {
			return found
		}
	}
	return nil
}

// powerSetEquals checks that the 2^k subset concatenations of atoms are
// pairwise distinct and coincide with the set.
func powerSetEquals(atoms []literal.Lit, set *literal.Set) bool {
	seen := make(map[string]struct{}, 1<<len(atoms))
	for mask := 0; mask < 1<<len(atoms); mask++ {
		var cat literal.Lit
		for i, a := range atoms {
			if mask&(1<<i) != 0 {
				cat = cat.Concat(a)
			}
		}
		if !set.Contains(cat) {
			return false
		}
		key := cat.Key()
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return len(seen) == set.Len()
}
