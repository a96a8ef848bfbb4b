package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("builds a development logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("builds a production logger with an explicit level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "warn")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		_, err := logger.NewLogger(logger.Development, "chatty")
		require.Error(t, err)
	})
}

func TestContextRoundTrip(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	ctx := logger.NewContext(context.Background(), log)

	got, err := logger.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, log, got)

	_, err = logger.FromContext(context.Background())
	require.ErrorIs(t, err, logger.ErrLoggerNotFound)
}

func TestLogFallback(t *testing.T) {
	// Log never returns nil, even for a bare context.
	assert.NotNil(t, logger.Log(context.Background()))
}

func TestRequestID(t *testing.T) {
	t.Run("keeps a caller-supplied id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("missing id reports not ok", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
