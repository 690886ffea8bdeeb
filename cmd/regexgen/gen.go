package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/regexgen"
	"github.com/coregx/regexgen/verify"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] [words.txt]",
	Short: "Generate a pattern from a newline-delimited word list",
	Long: `Gen reads one word per line from the given file (or stdin when no file
is given) and prints the generated pattern to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().Bool("unicode", false, "generate for the ECMAScript u flag")
	genCmd.Flags().Bool("nfc", false, "normalize input words to NFC")
	genCmd.Flags().Bool("relax", false, "permit over-generalizing condensations")
	genCmd.Flags().Bool("allow-empty", false, "treat blank lines as the empty string member")
	genCmd.Flags().Bool("verify", false, "round-trip the word list through the compiled pattern before printing")
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	allowEmpty, _ := cmd.Flags().GetBool("allow-empty")
	words, err := readWords(args, allowEmpty)
	if err != nil {
		return err
	}

	p, err := regexgen.GenerateWithConfig(words, cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if doVerify, _ := cmd.Flags().GetBool("verify"); doVerify {
		report, err := verify.Check(words, p)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !report.OK() {
			return fmt.Errorf("verify: pattern misses %d words: %v",
				len(report.Missed), report.Missed)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), p.Source())
	return nil
}

// readWords loads one word per line from the named file or stdin. Blank
// lines are skipped unless allowEmpty is set, in which case a single empty
// member is recorded.
func readWords(args []string, allowEmpty bool) ([]string, error) {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var words []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" && !allowEmpty {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}
