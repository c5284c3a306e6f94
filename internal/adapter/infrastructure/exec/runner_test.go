//go:build unit

package exec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerAdapter(t *testing.T) {
	adapter := NewRunnerAdapter(0)
	assert.NotNil(t, adapter)
	assert.Equal(t, DefaultTimeout, adapter.timeout)
}

func TestRunnerAdapter_Run(t *testing.T) {
	adapter := NewRunnerAdapter(time.Second)
	ctx := context.Background()

	t.Run("CapturesOutput", func(t *testing.T) {
		out, err := adapter.Run(ctx, "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(out))
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		_, err := adapter.Run(ctx, "sh", "-c", "echo boom >&2; exit 3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "command sh failed")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("Timeout", func(t *testing.T) {
		short := NewRunnerAdapter(50 * time.Millisecond)
		_, err := short.Run(ctx, "sleep", "2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out")
	})
}

func TestRunnerAdapter_RunPrivileged(t *testing.T) {
	t.Run("RootRunsDirectly", func(t *testing.T) {
		adapter := NewRunnerAdapter(time.Second)
		adapter.euid = func() int { return 0 }

		out, err := adapter.RunPrivileged(context.Background(), "echo", "direct")
		require.NoError(t, err)
		assert.Equal(t, "direct\n", string(out))
	})
}
