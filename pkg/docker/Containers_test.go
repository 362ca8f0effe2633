package docker

import (
	"context"
	"testing"

	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/static"
	"github.com/stretchr/testify/assert"
)

// failingGateway shells out to /bin/false so every invocation reports a
// non-zero exit without needing a docker daemon.
func failingGateway() *Gateway {
	return New(shell.NewRunner(), "false", 0)
}

// brokenGateway points at a binary that does not exist, exercising the spawn
// failure path.
func brokenGateway() *Gateway {
	return New(shell.NewRunner(), "no-such-docker-binary-42", 0)
}

func TestStartFailureIsDataNotError(t *testing.T) {
	result := failingGateway().Start(context.Background(), "nonexistent_container_12345")

	assert.False(t, result.Success())
	assert.Equal(t, static.OPERATION_START, result.Operation)
	assert.Equal(t, "nonexistent_container_12345", result.ContainerName)
}

func TestLifecycleOperations(t *testing.T) {
	gateway := failingGateway()
	ctx := context.Background()

	tests := []struct {
		operation string
		result    CommandResult
	}{
		{static.OPERATION_START, gateway.Start(ctx, "web")},
		{static.OPERATION_STOP, gateway.Stop(ctx, "web")},
		{static.OPERATION_RESTART, gateway.Restart(ctx, "web")},
		{static.OPERATION_DELETE, gateway.Remove(ctx, "web", false)},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.operation, tc.result.Operation)
		assert.Equal(t, "web", tc.result.ContainerName)
		assert.False(t, tc.result.Success())
	}
}

func TestRemoveForceFlag(t *testing.T) {
	result := failingGateway().Remove(context.Background(), "web", true)

	assert.Equal(t, true, result.ParsedData["force"])
}

func TestListDegradesToEmpty(t *testing.T) {
	containers := failingGateway().List(context.Background(), true)

	assert.NotNil(t, containers)
	assert.Empty(t, containers)
}

func TestListSpawnFailureDegradesToEmpty(t *testing.T) {
	containers := brokenGateway().List(context.Background(), false)

	assert.NotNil(t, containers)
	assert.Empty(t, containers)
}

func TestInspectMissReturnsNil(t *testing.T) {
	container := failingGateway().Container("ghost")

	assert.Nil(t, container.Inspect(context.Background()))
}

func TestExecTokenizesCommand(t *testing.T) {
	result := failingGateway().Container("web").Exec(context.Background(), `sh -c "echo hi"`)

	assert.Equal(t, static.OPERATION_EXEC, result.Operation)
	assert.Equal(t, `sh -c "echo hi"`, result.ParsedData["command"])
}

func TestLogsDefaultsTail(t *testing.T) {
	result := failingGateway().Container("web").Logs(context.Background(), 0)

	assert.Equal(t, static.OPERATION_LOGS, result.Operation)
	assert.Equal(t, static.DEFAULT_TAIL_LINES, result.ParsedData["tail_lines"])
}

func TestConcurrentStartsAreIndependent(t *testing.T) {
	gateway := failingGateway()

	results := make(chan CommandResult, 2)

	for _, name := range []string{"alpha", "beta"} {
		go func(name string) {
			results <- gateway.Start(context.Background(), name)
		}(name)
	}

	seen := map[string]CommandResult{}
	for i := 0; i < 2; i++ {
		r := <-results
		seen[r.ContainerName] = r
	}

	assert.Contains(t, seen, "alpha")
	assert.Contains(t, seen, "beta")
	assert.Equal(t, static.OPERATION_START, seen["alpha"].Operation)
	assert.Equal(t, static.OPERATION_START, seen["beta"].Operation)
}
