package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regexgen"
)

func mustGenerate(t *testing.T, words []string) *regexgen.Pattern {
	t.Helper()
	p, err := regexgen.Generate(words)
	require.NoError(t, err)
	return p
}

// =============================================================================
// Round-trip membership
// =============================================================================

func TestCheck(t *testing.T) {
	words := []string{"cat", "bat", "rat"}
	report, err := Check(words, mustGenerate(t, words))
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, len(words), report.Total)
	assert.Empty(t, report.Missed)
}

func TestCheckDetectsMismatch(t *testing.T) {
	// A pattern generated for a different word list must miss.
	words := []string{"foo", "bar"}
	report, err := Check([]string{"foo", "baz"}, mustGenerate(t, words))
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, []string{"baz"}, report.Missed)
	assert.Contains(t, report.String(), "missed")
}

func TestCheckAnchoring(t *testing.T) {
	// Membership is whole-string: substrings and superstrings must not pass.
	words := []string{"foo"}
	report, err := Check([]string{"foobar", "ofoo", "fo"}, mustGenerate(t, words))
	require.NoError(t, err)
	assert.Len(t, report.Missed, 3)
}

func TestCheckUntranslatablePattern(t *testing.T) {
	// A flag-less astral set renders lone surrogate escapes, which have no
	// RE2 form. Check must surface that as an error, not a miss.
	words := []string{"😀", "😁"}
	p, err := regexgen.Generate(words)
	require.NoError(t, err)

	_, err = Check(words, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoneSurrogate)
}

func TestCheckUnicodeMode(t *testing.T) {
	words := []string{"😀", "😁"}
	p, err := regexgen.GenerateWithConfig(words, regexgen.Config{Unicode: true})
	require.NoError(t, err)

	report, err := Check(words, p)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

// =============================================================================
// Corpus scanning
// =============================================================================

func TestScanCorpus(t *testing.T) {
	words := []string{"for", "if", "return"}
	corpus := []byte("if x { return } for y { if z }")

	hits, err := ScanCorpus(words, mustGenerate(t, words), corpus)
	require.NoError(t, err)

	var found []string
	for _, h := range hits {
		assert.True(t, h.PatternOK, "pattern rejected corpus hit %q", h.Word)
		assert.Equal(t, h.Word, string(corpus[h.Offset:h.Offset+len(h.Word)]))
		found = append(found, h.Word)
	}
	assert.Equal(t, []string{"if", "return", "for", "if"}, found)
}

func TestScanCorpusEmptyInputs(t *testing.T) {
	hits, err := ScanCorpus(nil, mustGenerate(t, nil), []byte("anything"))
	require.NoError(t, err)
	assert.Empty(t, hits)

	words := []string{"foo"}
	hits, err = ScanCorpus(words, mustGenerate(t, words), nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
