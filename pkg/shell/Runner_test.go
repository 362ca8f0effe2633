package shell

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunnerZeroExit(t *testing.T) {
	runner := NewRunner()

	result := runner.Run(context.Background(), []string{"sh", "-c", "echo out; echo err 1>&2"}, 0)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.ReturnCode)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.GreaterOrEqual(t, result.ExecutionTime, 0.0)
}

func TestRunnerNonZeroExit(t *testing.T) {
	runner := NewRunner()

	result := runner.Run(context.Background(), []string{"sh", "-c", "echo ignored; exit 3"}, 0)

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.ReturnCode)
	assert.Equal(t, "ignored\n", result.Stdout)
}

func TestRunnerSpawnFailure(t *testing.T) {
	runner := NewRunner()

	result := runner.Run(context.Background(), []string{"definitely-not-a-real-binary-42"}, 0)

	assert.False(t, result.Success)
	assert.NotEqual(t, 0, result.ReturnCode)
	assert.NotEmpty(t, result.Stderr)
}

func TestRunnerEmptyCommand(t *testing.T) {
	runner := NewRunner()

	result := runner.Run(context.Background(), nil, 0)

	assert.False(t, result.Success)
	assert.NotEqual(t, 0, result.ReturnCode)
}

func TestRunnerTimeout(t *testing.T) {
	runner := NewRunner()

	started := time.Now()
	result := runner.Run(context.Background(), []string{"sh", "-c", "echo partial; exec sleep 30"}, 500*time.Millisecond)

	assert.False(t, result.Success)
	assert.True(t, strings.Contains(result.Stderr, "timed out"))
	assert.Less(t, time.Since(started), 15*time.Second)

	// Output produced before the kill stays available.
	assert.Equal(t, "partial\n", result.Stdout)
}

func TestRunnerLine(t *testing.T) {
	runner := NewRunner()

	result := runner.RunLine(context.Background(), `sh -c "echo hello world"`, 0)

	assert.True(t, result.Success)
	assert.Equal(t, "hello world\n", result.Stdout)
}

func TestRunnerConcurrent(t *testing.T) {
	runner := NewRunner()

	type out struct {
		tag    string
		result ExecutionResult
	}

	results := make(chan out, 2)

	for _, tag := range []string{"first", "second"} {
		go func(tag string) {
			results <- out{tag, runner.Run(context.Background(), []string{"echo", tag}, 0)}
		}(tag)
	}

	seen := map[string]string{}
	for i := 0; i < 2; i++ {
		o := <-results
		seen[o.tag] = strings.TrimSpace(o.result.Stdout)
	}

	assert.Equal(t, "first", seen["first"])
	assert.Equal(t, "second", seen["second"])
}
