package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "theme", "log-file", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"add", "Buy milk"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootRejectsBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TADA_CONFIG", "")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "loud"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
