// Package regexgen synthesizes a single regular expression pattern that
// matches exactly a finite set of literal strings.
//
// The generator is the core of a grammar-build toolchain: callers scrape
// symbol lists (keywords, builtins, operators) and need one compact,
// backtracking-safe pattern per list. regexgen minimizes pattern length
// through repetition folding, cartesian-product factoring, common affix
// extraction, boundary-character grouping, and character-class condensation,
// recursing on sub-problems.
//
// Output targets the ECMAScript regex dialect (the consuming grammar files
// are JS-regex based): non-capturing (?:...) groups, \xNN and \uNNNN
// escapes, and \u{...} escapes under the Unicode flag. Use the verify
// package to translate a pattern to RE2 syntax for Go engines.
//
// Basic usage:
//
//	p, err := regexgen.Generate([]string{"color", "colour"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Source()) // "colou?r"
//
// The generator emits only the matching sub-pattern; callers add their own
// anchoring (word boundaries, ^...$) around Source().
//
// Guarantees:
//   - Deterministic: the same set yields the same pattern regardless of
//     input order (inputs are deduplicated and sorted before synthesis).
//   - Total: every well-formed input produces a pattern; the empty set and
//     the set containing only "" yield the always-matching empty group.
//   - Exact: the pattern matches the members and nothing else when anchored,
//     unless Config.Relax opts in to over-generalizing condensations.
package regexgen

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/coregx/regexgen/literal"
	"github.com/coregx/regexgen/synth"
)

// Config controls generation.
type Config struct {
	// Unicode sets the ECMAScript u flag: astral code points render as
	// \u{...} escapes and no affix or class boundary ever splits a
	// surrogate pair. Off by default, matching the flag-less dialect the
	// grammar files use.
	Unicode bool

	// NormalizeNFC normalizes input words to NFC before generation.
	// Useful when symbol lists are scraped from sources with mixed
	// normalization forms.
	NormalizeNFC bool

	// Relax permits condensations that match a superset of the input
	// (for example, a sparse repetition range collapsing to {min,max}).
	// Off by default: exactness is the contract.
	Relax bool
}

// DefaultConfig returns the default generation configuration: exact,
// non-Unicode, no normalization.
func DefaultConfig() Config {
	return Config{}
}

// Pattern is a generated pattern: the synthesized source text and the flags
// it was built with.
type Pattern struct {
	source string
	flags  string
}

// Source returns the pattern text. It is a stand-alone sub-pattern without
// anchoring.
func (p *Pattern) Source() string {
	return p.source
}

// Flags returns the flags the pattern was generated for ("u" or "").
func (p *Pattern) Flags() string {
	return p.flags
}

// String renders the pattern in /source/flags form for debugging.
func (p *Pattern) String() string {
	return "/" + p.source + "/" + p.flags
}

// Generate synthesizes a pattern for words with the default configuration.
//
// Words are deduplicated and sorted by UTF-16 code unit before synthesis, so
// input order never affects the output. An empty slice (or one containing
// only "") yields the always-matching empty group, not an error.
//
// Example:
//
//	p, _ := regexgen.Generate([]string{"a", "b", "c"})
//	fmt.Println(p.Source()) // "[a-c]"
func Generate(words []string) (*Pattern, error) {
	return GenerateWithConfig(words, DefaultConfig())
}

// GenerateWithConfig synthesizes a pattern for words under config.
//
// The only error condition is malformed input: a word that is not valid
// UTF-8. Everything else succeeds.
func GenerateWithConfig(words []string, config Config) (*Pattern, error) {
	prepared := make([]string, len(words))
	for i, w := range words {
		if !utf8.ValidString(w) {
			return nil, &InputError{Index: i, Err: ErrInvalidInput}
		}
		if config.NormalizeNFC {
			w = norm.NFC.String(w)
		}
		prepared[i] = w
	}

	set := literal.NewSet(prepared...)
	source := synth.Compile(set, synth.Options{
		Unicode: config.Unicode,
		Relax:   config.Relax,
	})

	flags := ""
	if config.Unicode {
		flags = "u"
	}
	return &Pattern{source: source, flags: flags}, nil
}

// MustGenerate is Generate that panics on error. Useful for word lists known
// to be well-formed at compile time.
//
// Example:
//
//	var keywordPattern = regexgen.MustGenerate([]string{"if", "else", "for"})
func MustGenerate(words []string) *Pattern {
	p, err := Generate(words)
	if err != nil {
		panic(fmt.Sprintf("regexgen: Generate: %v", err))
	}
	return p
}
