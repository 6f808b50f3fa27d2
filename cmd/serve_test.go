package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error { return f(ctx) }

func TestServe_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- serve(ctx, runnerFunc(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()

			return nil
		}))
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}

func TestServe_ReturnsServerError(t *testing.T) {
	listenErr := errors.New("listen on :80: permission denied")

	err := serve(t.Context(), runnerFunc(func(context.Context) error {
		return listenErr
	}))

	assert.ErrorIs(t, err, listenErr)
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()

	assert.NotNil(t, cmd.Flags().Lookup(addrFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(tokenFlagName))
}
