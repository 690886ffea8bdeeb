package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGen(t *testing.T) {
	path := writeFile(t, "words.txt", "color\ncolour\n")

	var out bytes.Buffer
	genCmd.SetOut(&out)
	defer genCmd.SetOut(nil)

	require.NoError(t, runGen(genCmd, []string{path}))
	assert.Equal(t, "colou?r\n", out.String())
}

func TestRunGenVerify(t *testing.T) {
	path := writeFile(t, "words.txt", "cat\nbat\nrat\n")

	var out bytes.Buffer
	genCmd.SetOut(&out)
	defer genCmd.SetOut(nil)

	require.NoError(t, genCmd.Flags().Set("verify", "true"))
	defer genCmd.Flags().Set("verify", "false")

	require.NoError(t, runGen(genCmd, []string{path}))
	assert.Equal(t, "[bcr]at\n", out.String())
}
