package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsOperationAndError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := WithRequestID(context.Background(), "abc")

	func() {
		var err error
		defer Time(ctx, "ok.op")(&err)
	}()
	func() {
		err := errors.New("boom")
		defer Time(ctx, "bad.op")(&err)
	}()

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "ok.op", entries[0].ContextMap()["op"])
	assert.Equal(t, "abc", entries[0].ContextMap()["req_id"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"dev", "production", ""} {
		logger, err := NewLogger(env)
		require.NoError(t, err)
		require.NotNil(t, logger)
	}
}
