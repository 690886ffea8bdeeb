package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeFile(t, "regexgen.toml", `
[generate]
unicode = true
nfc = true
relax = false
`)
	p, err := loadProfile(path)
	require.NoError(t, err)
	assert.True(t, p.Generate.Unicode)
	assert.True(t, p.Generate.NFC)
	assert.False(t, p.Generate.Relax)
}

func TestLoadProfileMissingSection(t *testing.T) {
	path := writeFile(t, "other.toml", `
[build]
target = "x"
`)
	p, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, Profile{}, p)
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)

	bad := writeFile(t, "bad.toml", "[generate\nunicode = true")
	_, err = loadProfile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestReadWords(t *testing.T) {
	path := writeFile(t, "words.txt", "foo\n\nbar\nbaz\n")

	words, err := readWords([]string{path}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, words)

	words, err = readWords([]string{path}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "", "bar", "baz"}, words)
}

func TestReadWordsMissingFile(t *testing.T) {
	_, err := readWords([]string{filepath.Join(t.TempDir(), "absent.txt")}, false)
	require.Error(t, err)
}
