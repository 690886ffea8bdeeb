// Package verify validates generated patterns against real engines.
//
// regexgen emits ECMAScript-dialect patterns; Go engines speak RE2. This
// package bridges the two: Translate rewrites the escape forms RE2 does not
// understand, Check compiles the translated pattern with the coregex engine
// and proves round-trip membership for every input word, and ScanCorpus
// cross-checks the word set against a sample corpus with an Aho-Corasick
// automaton.
package verify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/regexgen/internal/conv"
	"github.com/coregx/regexgen/literal"
)

// Translation errors.
var (
	// ErrLoneSurrogate indicates a \uNNNN escape for an unpaired
	// surrogate, which has no RE2 equivalent: RE2 matches code points,
	// and half a surrogate pair is not one.
	ErrLoneSurrogate = errors.New("lone surrogate has no RE2 equivalent")

	// ErrBadEscape indicates a truncated or malformed escape sequence.
	ErrBadEscape = errors.New("malformed escape sequence")
)

// TranslateError wraps a translation failure with the offset it occurred at.
type TranslateError struct {
	Offset int
	Err    error
}

// Error implements the error interface.
func (e *TranslateError) Error() string {
	return fmt.Sprintf("verify: translate at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *TranslateError) Unwrap() error {
	return e.Err
}

// Translate rewrites an ECMAScript-dialect pattern into RE2 syntax:
//
//	\uNNNN        -> \x{NNNN}
//	\uHHHH\uLLLL  -> \x{...} (surrogate escape pairs combine into one
//	                 astral code point)
//	\u{N...}      -> \x{N...}
//
// All other escapes (\xNN, \t, escaped metacharacters) are valid RE2 and
// pass through unchanged. A \uNNNN escape for an unpaired surrogate fails
// with ErrLoneSurrogate.
func Translate(source string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(source); {
		if source[i] != '\\' {
			b.WriteByte(source[i])
			i++
			continue
		}
		if i+1 >= len(source) {
			return "", &TranslateError{Offset: i, Err: ErrBadEscape}
		}
		if source[i+1] != 'u' {
			// \xNN and 2-character escapes are RE2-compatible.
			b.WriteByte('\\')
			b.WriteByte(source[i+1])
			i += 2
			continue
		}
		n, err := translateUnicodeEscape(&b, source, i)
		if err != nil {
			return "", err
		}
		i += n
	}
	return b.String(), nil
}

// translateUnicodeEscape consumes the \u escape starting at offset i and
// writes its RE2 form. Returns the number of bytes consumed.
func translateUnicodeEscape(b *strings.Builder, source string, i int) (int, error) {
	if i+2 < len(source) && source[i+2] == '{' {
		end := strings.IndexByte(source[i+3:], '}')
		if end < 0 {
			return 0, &TranslateError{Offset: i, Err: ErrBadEscape}
		}
		hex := source[i+3 : i+3+end]
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return 0, &TranslateError{Offset: i, Err: ErrBadEscape}
		}
		fmt.Fprintf(b, `\x{%s}`, hex)
		return end + 4, nil
	}

	u, ok := parseHex4(source, i+2)
	if !ok {
		return 0, &TranslateError{Offset: i, Err: ErrBadEscape}
	}
	switch {
	case literal.IsHighSurrogate(u):
		// A high surrogate must pair with an immediately following
		// \uNNNN low surrogate; the pair becomes one astral escape.
		if i+12 <= len(source) && source[i+6] == '\\' && source[i+7] == 'u' {
			if lo, ok := parseHex4(source, i+8); ok && literal.IsLowSurrogate(lo) {
				fmt.Fprintf(b, `\x{%X}`, literal.CombineSurrogates(u, lo))
				return 12, nil
			}
		}
		return 0, &TranslateError{Offset: i, Err: ErrLoneSurrogate}
	case literal.IsLowSurrogate(u):
		return 0, &TranslateError{Offset: i, Err: ErrLoneSurrogate}
	default:
		fmt.Fprintf(b, `\x{%X}`, u)
		return 6, nil
	}
}

func parseHex4(s string, i int) (uint16, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[i:i+4], 16, 16)
	if err != nil {
		return 0, false
	}
	return conv.Uint64ToUint16(v), true
}
