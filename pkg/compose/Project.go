package compose

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/deskpilot/deskpilot/pkg/docker"
	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/static"
	"go.uber.org/zap"
)

// Project binds gateway operations to one compose file. projectDir may be
// empty, in which case the file's containing directory is used.
func (g *Gateway) Project(composeFile string, projectDir string) *Project {
	if projectDir == "" {
		projectDir = filepath.Dir(composeFile)
	}

	return &Project{
		file:    composeFile,
		dir:     projectDir,
		gateway: g,
	}
}

func (p *Project) File() string {
	return p.file
}

// Ps lists the services of this project. Failure degrades to an empty
// listing, same as the system-wide Ls.
func (p *Project) Ps(ctx context.Context) []ServiceInfo {
	g := p.gateway
	args := append(g.prefix(p.file, p.dir), "ps", "--format", "json")

	result := g.runner.Run(ctx, args, g.timeout)
	metrics.ComposeOperations.Increment(static.OPERATION_PS, metrics.Outcome(result.Success))

	if !result.Success {
		g.log.Warn("compose ps failed",
			zap.String("compose_file", p.file),
			zap.String("stderr", result.Stderr),
		)

		return []ServiceInfo{}
	}

	return ParseServices(result.Stdout)
}

// Logs fetches the most recent log lines, optionally scoped to one service.
func (p *Project) Logs(ctx context.Context, service string, tailLines int) docker.CommandResult {
	if tailLines <= 0 {
		tailLines = static.DEFAULT_TAIL_LINES
	}

	g := p.gateway
	args := append(g.prefix(p.file, p.dir), "logs", "--tail", strconv.Itoa(tailLines))

	parsedData := map[string]any{
		"compose_file": p.file,
		"tail_lines":   tailLines,
	}

	if service != "" {
		args = append(args, service)
		parsedData["service"] = service
	}

	return g.run(ctx, static.OPERATION_LOGS, p.file, p.dir, args, parsedData)
}

// Exec runs command inside one service container of the project.
func (p *Project) Exec(ctx context.Context, service string, command string) docker.CommandResult {
	g := p.gateway
	args := append(g.prefix(p.file, p.dir), "exec", service)
	args = append(args, shell.Tokenize(command)...)

	parsedData := map[string]any{
		"compose_file": p.file,
		"service":      service,
		"command":      command,
	}

	return g.run(ctx, static.OPERATION_EXEC, p.file, p.dir, args, parsedData)
}
