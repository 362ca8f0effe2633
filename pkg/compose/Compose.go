package compose

import (
	"context"
	"time"

	"github.com/deskpilot/deskpilot/pkg/docker"
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
		log:     logger.Named("compose"),
	}
}

// prefix builds `docker compose -f <file> [--project-directory <dir>]`.
// An empty projectDir emits no flag at all; there is no computed default at
// this level.
func (g *Gateway) prefix(composeFile string, projectDir string) []string {
	args := []string{g.binary, static.COMPOSE_PLUGIN, "-f", composeFile}

	if projectDir != "" {
		args = append(args, "--project-directory", projectDir)
	}

	return args
}

func (g *Gateway) Up(ctx context.Context, composeFile string, projectDir string, options UpOptions) docker.CommandResult {
	args := append(g.prefix(composeFile, projectDir), "up")

	if options.Detached {
		args = append(args, "-d")
	}

	if options.Build {
		args = append(args, "--build")
	}

	parsedData := map[string]any{
		"compose_file": composeFile,
		"detached":     options.Detached,
		"build":        options.Build,
	}

	return g.run(ctx, static.OPERATION_UP, composeFile, projectDir, args, parsedData)
}

func (g *Gateway) Down(ctx context.Context, composeFile string, projectDir string) docker.CommandResult {
	return g.verb(ctx, static.OPERATION_DOWN, composeFile, projectDir)
}

func (g *Gateway) Start(ctx context.Context, composeFile string, projectDir string) docker.CommandResult {
	return g.verb(ctx, static.OPERATION_START, composeFile, projectDir)
}

func (g *Gateway) Stop(ctx context.Context, composeFile string, projectDir string) docker.CommandResult {
	return g.verb(ctx, static.OPERATION_STOP, composeFile, projectDir)
}

func (g *Gateway) Restart(ctx context.Context, composeFile string, projectDir string) docker.CommandResult {
	return g.verb(ctx, static.OPERATION_RESTART, composeFile, projectDir)
}

func (g *Gateway) Pull(ctx context.Context, composeFile string, projectDir string) docker.CommandResult {
	return g.verb(ctx, static.OPERATION_PULL, composeFile, projectDir)
}

func (g *Gateway) Build(ctx context.Context, composeFile string, projectDir string) docker.CommandResult {
	return g.verb(ctx, static.OPERATION_BUILD, composeFile, projectDir)
}

// Ls enumerates every compose project known to the engine, regardless of
// compose file. Failure degrades to an empty listing.
func (g *Gateway) Ls(ctx context.Context) []ProjectInfo {
	args := []string{g.binary, static.COMPOSE_PLUGIN, "ls", "--format", "json"}

	result := g.runner.Run(ctx, args, g.timeout)
	metrics.ComposeOperations.Increment(static.OPERATION_LIST, metrics.Outcome(result.Success))

	if !result.Success {
		g.log.Warn("compose listing failed",
			zap.Int("code", result.ReturnCode),
			zap.String("stderr", result.Stderr),
		)

		return []ProjectInfo{}
	}

	return ParseProjects(result.Stdout)
}

func (g *Gateway) verb(ctx context.Context, operation string, composeFile string, projectDir string) docker.CommandResult {
	args := append(g.prefix(composeFile, projectDir), operation)

	return g.run(ctx, operation, composeFile, projectDir, args, map[string]any{"compose_file": composeFile})
}

func (g *Gateway) run(ctx context.Context, operation string, composeFile string, projectDir string, args []string, parsedData map[string]any) docker.CommandResult {
	if projectDir != "" {
		parsedData["project_directory"] = projectDir
	}

	raw := g.runner.Run(ctx, args, g.timeout)
	metrics.ComposeOperations.Increment(operation, metrics.Outcome(raw.Success))

	if !raw.Success {
		g.log.Debug("compose operation failed",
			zap.String("operation", operation),
			zap.String("compose_file", composeFile),
			zap.String("stderr", raw.Stderr),
		)
	}

	return docker.NewCommandResult(raw, "", operation, parsedData)
}
