package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	assert.Equal(t, 0, run(func(context.Context) error { return nil }))
	assert.Equal(t, 1, run(func(context.Context) error { return errors.New("boom") }))
}

func TestRunPassesLiveContext(t *testing.T) {
	run(func(ctx context.Context) error {
		assert.NoError(t, ctx.Err())
		return nil
	})
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range listCmd.Root().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "sync", "mark-read", "tui", "serve", "kinds", "config", "version"} {
		assert.True(t, names[want], want)
	}
}
