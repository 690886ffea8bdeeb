// Command regexgen generates a regular expression matching a word list.
//
// It is the build-script entry point of the generator: grammar assembly
// scripts pipe symbol lists in and embed the printed pattern.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "regexgen",
	Short: "Generate a regex matching a set of literal strings",
	Long: `regexgen compiles a word list into a single compact regular expression
that matches exactly those words. Patterns target the ECMAScript dialect
used by syntax-highlighting grammar files.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "TOML profile with default generation flags")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	cobra.OnInitialize(applyColorMode)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorMode maps the --color flag onto the color package's global
// switch; "auto" keeps its terminal detection.
func applyColorMode() {
	switch mode, _ := rootCmd.PersistentFlags().GetString("color"); mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
