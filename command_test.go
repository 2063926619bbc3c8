package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd("stimeout", &bytes.Buffer{}, zap.NewNop(), func(time.Duration) {})

	assert.Equal(t, "stimeout", cmd.Name())
	assert.True(t, cmd.DisableFlagParsing)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
	assert.False(t, cmd.HasSubCommands())
}

func TestRootCommandArgs(t *testing.T) {
	cmd := newRootCmd("stimeout", &bytes.Buffer{}, zap.NewNop(), func(time.Duration) {})

	assert.NoError(t, cmd.Args(cmd, []string{"1"}))
	assert.ErrorIs(t, cmd.Args(cmd, nil), ErrWrongArgumentCount)
	assert.ErrorIs(t, cmd.Args(cmd, []string{"1", "2"}), ErrWrongArgumentCount)
}

func TestRootCommandExecute(t *testing.T) {
	var out bytes.Buffer
	var got time.Duration
	cmd := newRootCmd("stimeout", &out, zap.NewNop(), func(d time.Duration) { got = d })
	cmd.SetArgs([]string{"-2"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Sleeping for -2 seconds\n", out.String())
	assert.Equal(t, -2*time.Second, got)
}

func TestRootCommandExecuteInvalid(t *testing.T) {
	var out bytes.Buffer
	called := false
	cmd := newRootCmd("stimeout", &out, zap.NewNop(), func(time.Duration) { called = true })
	cmd.SetArgs([]string{"ten"})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrInvalidNumber)
	assert.Empty(t, out.String())
	assert.False(t, called)
}

func TestCheckInvocation(t *testing.T) {
	assert.NoError(t, checkInvocation("stimeout", []string{"5"}))
	assert.NoError(t, checkInvocation("stimeout", []string{"abc"}))
	assert.ErrorIs(t, checkInvocation("stimeout", nil), ErrWrongArgumentCount)
	assert.ErrorIs(t, checkInvocation("stimeout", []string{"__complete", "5"}), ErrWrongArgumentCount)
	assert.ErrorIs(t, checkInvocation("stimeout", []string{"__complete"}), ErrInvalidNumber)
	assert.ErrorIs(t, checkInvocation("stimeout", []string{"__completeNoDesc"}), ErrInvalidNumber)
}
