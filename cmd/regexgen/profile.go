package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/coregx/regexgen"
)

// Profile is the optional TOML configuration a project keeps next to its
// grammar sources:
//
//	[generate]
//	unicode = true
//	nfc = false
//	relax = false
type Profile struct {
	Generate struct {
		Unicode bool `toml:"unicode"`
		NFC     bool `toml:"nfc"`
		Relax   bool `toml:"relax"`
	} `toml:"generate"`
}

// loadProfile parses the [generate] section of a profile file. A file
// without the section yields the zero profile.
func loadProfile(path string) (Profile, error) {
	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("generate") {
		return Profile{}, nil
	}
	return p, nil
}

// resolveConfig layers the profile (if any) under the command's flags:
// explicitly set flags always win.
func resolveConfig(cmd *cobra.Command) (regexgen.Config, error) {
	var cfg regexgen.Config

	if path, _ := cmd.Root().PersistentFlags().GetString("config"); path != "" {
		profile, err := loadProfile(path)
		if err != nil {
			return regexgen.Config{}, err
		}
		cfg.Unicode = profile.Generate.Unicode
		cfg.NormalizeNFC = profile.Generate.NFC
		cfg.Relax = profile.Generate.Relax
	}

	flags := cmd.Flags()
	if flags.Changed("unicode") {
		cfg.Unicode, _ = flags.GetBool("unicode")
	}
	if flags.Changed("nfc") {
		cfg.NormalizeNFC, _ = flags.GetBool("nfc")
	}
	if flags.Changed("relax") {
		cfg.Relax, _ = flags.GetBool("relax")
	}
	return cfg, nil
}
