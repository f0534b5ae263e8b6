package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerPassingCommand(t *testing.T) {
	runner := NewLocalTestRunner()

	output, failed, err := runner.Run(context.Background(), t.TempDir(), "echo all tests passed")
	require.NoError(t, err)

	assert.False(t, failed)
	assert.Contains(t, output, "all tests passed")
}

func TestRunnerFailingCommand(t *testing.T) {
	runner := NewLocalTestRunner()

	output, failed, err := runner.Run(context.Background(), t.TempDir(), "echo 1 failed; exit 1")
	require.NoError(t, err, "non-zero exit is a result, not an error")

	assert.True(t, failed)
	assert.Contains(t, output, "1 failed")
}

func TestRunnerCapturesStderr(t *testing.T) {
	runner := NewLocalTestRunner()

	output, failed, err := runner.Run(context.Background(), t.TempDir(), "echo oops >&2; exit 2")
	require.NoError(t, err)

	assert.True(t, failed)
	assert.Contains(t, output, "oops")
}

func TestRunnerRespectsWorkDir(t *testing.T) {
	dir := t.TempDir()
	runner := NewLocalTestRunner()

	output, failed, err := runner.Run(context.Background(), dir, "pwd")
	require.NoError(t, err)
	require.False(t, failed)

	assert.Contains(t, output, dir)
}

func TestRunnerDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	runner := NewLocalTestRunner()

	_, _, _ = runner.Run(ctx, t.TempDir(), "sleep 5")

	require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
