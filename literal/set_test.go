package literal

import (
	"reflect"
	"testing"
)

// =============================================================================
// Construction: sorting and deduplication
// =============================================================================

func TestNewSetNormalizes(t *testing.T) {
	set := NewSet("b", "a", "b", "", "ab", "a")
	want := []string{"", "a", "ab", "b"}
	if got := set.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("NewSet = %q, want %q", got, want)
	}
}

func TestNewSetOrderIndependent(t *testing.T) {
	a := NewSet("gamma", "alpha", "beta")
	b := NewSet("beta", "gamma", "alpha")
	if !reflect.DeepEqual(a.Strings(), b.Strings()) {
		t.Errorf("input order leaked into set order: %q vs %q", a.Strings(), b.Strings())
	}
}

func TestSetEmptyHandling(t *testing.T) {
	set := NewSet("", "x")
	if !set.HasEmpty() {
		t.Fatalf("HasEmpty = false")
	}
	rest := set.WithoutEmpty()
	if rest.HasEmpty() || rest.Len() != 1 {
		t.Errorf("WithoutEmpty = %q", rest.Strings())
	}
	// Absent empty returns the receiver unchanged.
	if got := rest.WithoutEmpty(); got != rest {
		t.Errorf("WithoutEmpty allocated for a set without the empty literal")
	}

	var nilSet *Set
	if nilSet.Len() != 0 {
		t.Errorf("nil set Len = %d", nilSet.Len())
	}
}

func TestSetContains(t *testing.T) {
	set := NewSet("cat", "bat", "rat")
	for _, w := range []string{"cat", "bat", "rat"} {
		if !set.Contains(FromString(w)) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	for _, w := range []string{"", "at", "mat", "cats"} {
		if set.Contains(FromString(w)) {
			t.Errorf("Contains(%q) = true", w)
		}
	}
}

// =============================================================================
// Length bounds
// =============================================================================

func TestSetLenBounds(t *testing.T) {
	set := NewSet("a", "abc", "ab")
	if got := set.MinLen(); got != 1 {
		t.Errorf("MinLen = %d", got)
	}
	if got := set.MaxLen(); got != 3 {
		t.Errorf("MaxLen = %d", got)
	}
	if got := NewSet().MinLen(); got != 0 {
		t.Errorf("MinLen of empty set = %d", got)
	}
}

// =============================================================================
// Common affixes
// =============================================================================

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		words []string
		want  int
	}{
		{[]string{"color", "colour"}, 4},
		{[]string{"cat", "bat"}, 0},
		{[]string{"foo", "foobar"}, 3},
		{[]string{"foo"}, 3},
		{[]string{"", "foo"}, 0},
		{nil, 0},
	}
	for _, tt := range tests {
		if got := NewSet(tt.words...).LongestCommonPrefix(); got != tt.want {
			t.Errorf("LongestCommonPrefix(%q) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestLongestCommonSuffix(t *testing.T) {
	tests := []struct {
		words []string
		want  int
	}{
		{[]string{"cat", "bat", "rat"}, 2},
		{[]string{"this", "that"}, 0},
		{[]string{"abc", "abcabc"}, 3},
		{[]string{"foo"}, 3},
		{[]string{"", "foo"}, 0},
	}
	for _, tt := range tests {
		if got := NewSet(tt.words...).LongestCommonSuffix(); got != tt.want {
			t.Errorf("LongestCommonSuffix(%q) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestStripAffixes(t *testing.T) {
	set := NewSet("colors", "colours")
	mids := set.StripAffixes(4, 2)
	want := []string{"", "u"}
	if got := mids.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("StripAffixes = %q, want %q", got, want)
	}
}

// Stripping can merge members; the result is re-normalized.
func TestStripAffixesDedupes(t *testing.T) {
	set := NewSet("xa", "ya")
	mids := set.StripAffixes(0, 1)
	if mids.Len() != 2 {
		t.Errorf("unexpected merge: %q", mids.Strings())
	}
	same := NewSet("ax", "ay").StripAffixes(1, 1)
	if same.Len() != 1 || !same.Get(0).IsEmpty() {
		t.Errorf("expected single empty member, got %q", same.Strings())
	}
}

// =============================================================================
// Surrogate-aware members
// =============================================================================

func TestSetWithAstralMembers(t *testing.T) {
	set := NewSet("😀", "😁")
	// Both share the high surrogate unit.
	if got := set.LongestCommonPrefix(); got != 1 {
		t.Errorf("LongestCommonPrefix = %d, want 1", got)
	}
	if got := set.LongestCommonSuffix(); got != 0 {
		t.Errorf("LongestCommonSuffix = %d, want 0", got)
	}
	if got := set.MinLen(); got != 2 {
		t.Errorf("MinLen = %d, want 2", got)
	}
}
