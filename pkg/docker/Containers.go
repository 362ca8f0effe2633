package docker

import (
	"context"
	"time"

	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/static"
	"go.uber.org/zap"
)

func New(runner *shell.Runner, binary string, timeout time.Duration) *Gateway {
	if binary == "" {
		binary = static.DOCKER_BINARY
	}

	return &Gateway{
		runner:  runner,
		binary:  binary,
		timeout: timeout,
		log:     logger.Named("docker"),
	}
}

// List returns the containers known to the engine. A failed invocation
// degrades to an empty listing; the failure is logged, never raised.
func (g *Gateway) List(ctx context.Context, allContainers bool) []ContainerInfo {
	args := []string{g.binary, "ps"}

	if allContainers {
		args = append(args, "-a")
	}

	args = append(args, "--format", "json")

	result := g.runner.Run(ctx, args, g.timeout)
	metrics.ContainerOperations.Increment(static.OPERATION_LIST, metrics.Outcome(result.Success))

	if !result.Success {
		g.log.Warn("container listing failed",
			zap.Int("code", result.ReturnCode),
			zap.String("stderr", result.Stderr),
		)

		return []ContainerInfo{}
	}

	return ParseContainerLines(result.Stdout)
}

func (g *Gateway) Start(ctx context.Context, name string) CommandResult {
	return g.lifecycle(ctx, static.OPERATION_START, name, []string{g.binary, "start", name}, nil)
}

func (g *Gateway) Stop(ctx context.Context, name string) CommandResult {
	return g.lifecycle(ctx, static.OPERATION_STOP, name, []string{g.binary, "stop", name}, nil)
}

func (g *Gateway) Restart(ctx context.Context, name string) CommandResult {
	return g.lifecycle(ctx, static.OPERATION_RESTART, name, []string{g.binary, "restart", name}, nil)
}

func (g *Gateway) Remove(ctx context.Context, name string, force bool) CommandResult {
	args := []string{g.binary, "rm"}

	if force {
		args = append(args, "-f")
	}

	args = append(args, name)

	return g.lifecycle(ctx, static.OPERATION_DELETE, name, args, map[string]any{"force": force})
}

func (g *Gateway) lifecycle(ctx context.Context, operation string, name string, args []string, parsedData map[string]any) CommandResult {
	raw := g.runner.Run(ctx, args, g.timeout)
	metrics.ContainerOperations.Increment(operation, metrics.Outcome(raw.Success))

	if !raw.Success {
		g.log.Debug("container operation failed",
			zap.String("operation", operation),
			zap.String("container", name),
			zap.String("stderr", raw.Stderr),
		)
	}

	return NewCommandResult(raw, name, operation, parsedData)
}
