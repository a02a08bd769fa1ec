package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "hxui 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestVersionCommandRejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "version", "extra")
	require.Error(t, err)
}
