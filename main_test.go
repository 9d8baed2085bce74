package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	for _, name := range []string{"version", "reset", "debug", "audit", "check"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.NotNil(t, sub)
		require.Equal(t, name, sub.Name())
	}
}

func TestDefaultProjectName(t *testing.T) {
	require.NotEmpty(t, defaultProjectName())
}
