package server_test

import (
	"fmt"
	"testing"

	"devserve/core/server"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("StartupErrorPassesThrough", func(t *testing.T) {
		orig := &server.StartupError{Kind: server.FailureAddrInUse, Port: 8000, Err: assert.AnError}
		wrapped := fmt.Errorf("context: %w", orig)
		assert.Same(t, orig, server.Classify(wrapped))
	})

	t.Run("StartupHelper", func(t *testing.T) {
		se := server.Classify(server.Startup(assert.AnError))
		assert.Equal(t, server.FailureStartup, se.Kind)
		assert.ErrorIs(t, se, assert.AnError)
	})

	t.Run("UnknownIsUnexpected", func(t *testing.T) {
		se := server.Classify(assert.AnError)
		assert.Equal(t, server.FailureUnexpected, se.Kind)
		assert.Equal(t, assert.AnError.Error(), se.Error())
	})
}

func TestStartupError_Error(t *testing.T) {
	err := &server.StartupError{Kind: server.FailureAddrInUse, Port: 8000, Err: assert.AnError}
	assert.Equal(t, "port 8000 is already in use", err.Error())
	assert.Equal(t, "addr_in_use", err.Kind.String())
	assert.Equal(t, "serve", server.FailureServe.String())
}
