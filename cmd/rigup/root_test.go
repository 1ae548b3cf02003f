package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_SubcommandsRegistered(t *testing.T) {
	want := []string{"apply", "plan", "list", "doctor", "version"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, registered[name], "subcommand %s not registered", name)
	}
}

func TestRootCommand_SilencesCobraNoise(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestPrintErrorTo(t *testing.T) {
	var sb strings.Builder
	printErrorTo(&sb, assert.AnError)

	require.Contains(t, sb.String(), "Error:")
	require.Contains(t, sb.String(), assert.AnError.Error())
}
