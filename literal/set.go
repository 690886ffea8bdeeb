package literal

import (
	"sort"
)

// Set is an ordered, deduplicated sequence of literals.
//
// Construction sorts by code-unit order and removes duplicates, which makes
// every downstream computation deterministic regardless of the order the
// caller supplied the words in.
//
// Invariants:
//   - no two entries are equal
//   - entries are in ascending code-unit order
//
// Example:
//
//	set := literal.NewSet("b", "a", "b")
//	fmt.Println(set.Len()) // Output: 2
type Set struct {
	lits []Lit
}

// NewSet builds a normalized set from Go strings.
func NewSet(words ...string) *Set {
	lits := make([]Lit, 0, len(words))
	for _, w := range words {
		lits = append(lits, FromString(w))
	}
	return FromLits(lits)
}

// FromLits builds a normalized set from literals, sorting and deduplicating.
// The input slice is not retained.
func FromLits(lits []Lit) *Set {
	sorted := make([]Lit, len(lits))
	copy(sorted, lits)
	sort.Slice(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})

	out := sorted[:0]
	for i, l := range sorted {
		if i == 0 || !Equal(sorted[i-1], l) {
			out = append(out, l)
		}
	}
	return &Set{lits: out}
}

// Len returns the number of literals in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lits)
}

// Get returns the literal at index i.
func (s *Set) Get(i int) Lit {
	return s.lits[i]
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// HasEmpty reports whether the set contains the empty literal. Because the
// set is sorted by code-unit order, the empty literal is always first.
func (s *Set) HasEmpty() bool {
	return s.Len() > 0 && s.lits[0].IsEmpty()
}

// WithoutEmpty returns the set minus the empty literal. Returns the receiver
// unchanged when the empty literal is absent.
func (s *Set) WithoutEmpty() *Set {
	if !s.HasEmpty() {
		return s
	}
	return &Set{lits: s.lits[1:]}
}

// Contains reports whether the set holds a literal equal to l.
func (s *Set) Contains(l Lit) bool {
	i := sort.Search(len(s.lits), func(i int) bool {
		return Compare(s.lits[i], l) >= 0
	})
	return i < len(s.lits) && Equal(s.lits[i], l)
}

// Strings decodes every member for display and debugging.
func (s *Set) Strings() []string {
	out := make([]string, s.Len())
	for i, l := range s.lits {
		out[i] = l.String()
	}
	return out
}

// MinLen returns the length in code units of the shortest member.
// Returns 0 for the empty set.
func (s *Set) MinLen() int {
	if s.Len() == 0 {
		return 0
	}
	min := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}

// MaxLen returns the length in code units of the longest member.
func (s *Set) MaxLen() int {
	max := 0
	for _, l := range s.lits {
		if l.Len() > max {
			max = l.Len()
		}
	}
	return max
}

// LongestCommonPrefix returns the length in code units of the longest prefix
// shared by every member. Zero for sets with fewer than one member.
func (s *Set) LongestCommonPrefix() int {
	if s.Len() == 0 {
		return 0
	}
	// The set is sorted, so the first and last members bound the prefix.
	first, last := s.lits[0], s.lits[len(s.lits)-1]
	n := first.Len()
	if last.Len() < n {
		n = last.Len()
	}
	p := 0
	for p < n && first[p] == last[p] {
		p++
	}
	return p
}

// LongestCommonSuffix returns the length in code units of the longest suffix
// shared by every member.
func (s *Set) LongestCommonSuffix() int {
	if s.Len() == 0 {
		return 0
	}
	n := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < n {
			n = l.Len()
		}
	}
	for k := 0; k < n; k++ {
		u := s.lits[0][s.lits[0].Len()-1-k]
		for _, l := range s.lits[1:] {
			if l[l.Len()-1-k] != u {
				return k
			}
		}
	}
	return n
}

// StripAffixes removes p leading and q trailing code units from every member
// and returns the resulting normalized set. The caller must guarantee
// p+q <= MinLen().
func (s *Set) StripAffixes(p, q int) *Set {
	mids := make([]Lit, 0, s.Len())
	for _, l := range s.lits {
		mids = append(mids, l.Slice(p, l.Len()-q))
	}
	return FromLits(mids)
}
