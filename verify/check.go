package verify

import (
	"fmt"

	"github.com/coregx/coregex"

	"github.com/coregx/regexgen"
)

// Report holds the result of a round-trip membership check.
type Report struct {
	// Total is the number of words checked.
	Total int

	// Missed lists the words the anchored pattern failed to match.
	// Empty for a correct pattern.
	Missed []string
}

// OK reports whether every word matched.
func (r *Report) OK() bool {
	return len(r.Missed) == 0
}

// String summarizes the report.
func (r *Report) String() string {
	if r.OK() {
		return fmt.Sprintf("verify: %d/%d words matched", r.Total, r.Total)
	}
	return fmt.Sprintf("verify: %d/%d words matched, missed %v",
		r.Total-len(r.Missed), r.Total, r.Missed)
}

// Check translates the pattern to RE2 syntax, compiles it with the coregex
// engine anchored as ^(?:...)$, and tests every word against it. A non-nil
// error means the pattern could not be translated or compiled; membership
// failures are reported through the Report instead.
//
// Example:
//
//	p, _ := regexgen.Generate(words)
//	report, err := verify.Check(words, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !report.OK() {
//	    log.Fatalf("pattern misses: %v", report.Missed)
//	}
func Check(words []string, p *regexgen.Pattern) (*Report, error) {
	re, err := compileAnchored(p)
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(words)}
	for _, w := range words {
		if !re.MatchString(w) {
			report.Missed = append(report.Missed, w)
		}
	}
	return report, nil
}

// compileAnchored translates and compiles a generated pattern with full
// anchoring.
func compileAnchored(p *regexgen.Pattern) (*coregex.Regex, error) {
	translated, err := Translate(p.Source())
	if err != nil {
		return nil, err
	}
	re, err := coregex.Compile("^(?:" + translated + ")$")
	if err != nil {
		return nil, fmt.Errorf("verify: compile translated pattern: %w", err)
	}
	return re, nil
}
