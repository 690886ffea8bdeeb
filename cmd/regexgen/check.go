package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/regexgen"
	"github.com/coregx/regexgen/verify"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] words.txt corpus.txt",
	Short: "Verify a generated pattern against its word list and a corpus",
	Long: `Check generates the pattern for the word list, proves that every word
round-trips through the compiled pattern, and scans the corpus for word
occurrences to show which symbols are actually exercised.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("unicode", false, "generate for the ECMAScript u flag")
	checkCmd.Flags().Bool("nfc", false, "normalize input words to NFC")
	checkCmd.Flags().Bool("relax", false, "permit over-generalizing condensations")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	words, err := readWords(args[:1], false)
	if err != nil {
		return err
	}
	corpus, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	p, err := regexgen.GenerateWithConfig(words, cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pattern: %s\n", p.Source())

	report, err := verify.Check(words, p)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	printReport(cmd, report)

	hits, err := verify.ScanCorpus(words, p, corpus)
	if err != nil {
		return fmt.Errorf("scan corpus: %w", err)
	}
	printHits(cmd, words, hits)

	if !report.OK() {
		return fmt.Errorf("pattern misses %d of %d words", len(report.Missed), report.Total)
	}
	return nil
}

func printReport(cmd *cobra.Command, report *verify.Report) {
	out := cmd.OutOrStdout()
	if report.OK() {
		color.New(color.FgGreen).Fprintf(out, "ok: %d/%d words match\n", report.Total, report.Total)
		return
	}
	color.New(color.FgRed).Fprintf(out, "FAIL: missed %d of %d words\n", len(report.Missed), report.Total)
	for _, w := range report.Missed {
		fmt.Fprintf(out, "  missed %q\n", w)
	}
}

func printHits(cmd *cobra.Command, words []string, hits []verify.Hit) {
	out := cmd.OutOrStdout()
	seen := make(map[string]int, len(words))
	for _, h := range hits {
		seen[h.Word]++
		if !h.PatternOK {
			color.New(color.FgRed).Fprintf(out, "  pattern rejects corpus hit %q at %d\n", h.Word, h.Offset)
		}
	}
	unused := 0
	for _, w := range words {
		if seen[w] == 0 {
			unused++
		}
	}
	fmt.Fprintf(out, "corpus: %d occurrences, %d of %d words unused\n", len(hits), unused, len(words))
	if unused > 0 {
		yellow := color.New(color.FgYellow)
		for _, w := range words {
			if seen[w] == 0 {
				yellow.Fprintf(out, "  unused %q\n", w)
			}
		}
	}
}
