package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdWiring(t *testing.T) {
	cmd := rootCmd()
	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "build")
	assert.Contains(t, names, "export-csv")
	assert.Contains(t, names, "vocab")
}

func TestBuildCmdRequiresFlags(t *testing.T) {
	cmd := buildCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestBuildCmdMissingInput(t *testing.T) {
	cmd := buildCmd()
	cmd.SetArgs([]string{
		"--input", t.TempDir() + "/does-not-exist",
		"--output", t.TempDir(),
		"--lang", "en",
		"--tokenizer", "whitespace",
	})
	err := cmd.Execute()
	require.Error(t, err)
}
