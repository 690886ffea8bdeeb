package verify

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexgen"
)

// Hit is one occurrence of an input word in a scanned corpus.
type Hit struct {
	// Word is the matched input word.
	Word string

	// Offset is the byte offset of the occurrence in the corpus.
	Offset int

	// PatternOK reports whether the generated pattern, fully anchored,
	// also matches the word. False indicates a generator bug.
	PatternOK bool
}

// ScanCorpus finds non-overlapping occurrences of the input words in a
// sample corpus using an Aho-Corasick automaton and cross-checks every hit
// against the generated pattern. Grammar authors use this to confirm a
// symbol list is actually exercised by representative source text.
//
// Example:
//
//	p, _ := regexgen.Generate(words)
//	hits, err := verify.ScanCorpus(words, p, sample)
//	for _, h := range hits {
//	    fmt.Printf("%q at %d (pattern ok: %v)\n", h.Word, h.Offset, h.PatternOK)
//	}
func ScanCorpus(words []string, p *regexgen.Pattern, corpus []byte) ([]Hit, error) {
	if len(words) == 0 {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("verify: build corpus automaton: %w", err)
	}

	re, err := compileAnchored(p)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	at := 0
	for at < len(corpus) {
		m := auto.Find(corpus, at)
		if m == nil {
			break
		}
		word := string(corpus[m.Start:m.End])
		hits = append(hits, Hit{
			Word:      word,
			Offset:    m.Start,
			PatternOK: re.MatchString(word),
		})
		if m.End > at {
			at = m.End
		} else {
			at++
		}
	}
	return hits, nil
}
