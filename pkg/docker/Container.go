package docker

import (
	"context"
	"strconv"

	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/static"
	"go.uber.org/zap"
)

// Container binds gateway operations to one container name.
func (g *Gateway) Container(name string) *Container {
	return &Container{
		name:    name,
		gateway: g,
	}
}

func (c *Container) Name() string {
	return c.name
}

// Inspect returns the detailed record for the container, or nil when the
// engine reports failure (typically: no such container).
func (c *Container) Inspect(ctx context.Context) *InspectInfo {
	g := c.gateway

	result := g.runner.Run(ctx, []string{g.binary, "inspect", c.name, "--format", "json"}, g.timeout)
	metrics.ContainerOperations.Increment(static.OPERATION_INSPECT, metrics.Outcome(result.Success))

	if !result.Success {
		g.log.Debug("inspect failed",
			zap.String("container", c.name),
			zap.String("stderr", result.Stderr),
		)

		return nil
	}

	return ParseInspect(result.Stdout)
}

func (c *Container) Logs(ctx context.Context, tailLines int) CommandResult {
	if tailLines <= 0 {
		tailLines = static.DEFAULT_TAIL_LINES
	}

	g := c.gateway
	args := []string{g.binary, "logs", "--tail", strconv.Itoa(tailLines), c.name}

	return g.lifecycle(ctx, static.OPERATION_LOGS, c.name, args, map[string]any{"tail_lines": tailLines})
}

// Exec runs command inside the container. The command string is tokenized
// with the shell rules, not passed to a shell.
func (c *Container) Exec(ctx context.Context, command string) CommandResult {
	g := c.gateway
	args := append([]string{g.binary, "exec", c.name}, shell.Tokenize(command)...)

	return g.lifecycle(ctx, static.OPERATION_EXEC, c.name, args, map[string]any{"command": command})
}
