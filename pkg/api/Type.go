package api

import (
	"github.com/deskpilot/deskpilot/pkg/chrome"
	"github.com/deskpilot/deskpilot/pkg/compose"
	"github.com/deskpilot/deskpilot/pkg/configuration"
	"github.com/deskpilot/deskpilot/pkg/docker"
	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/speedtest"
	"github.com/deskpilot/deskpilot/pkg/version"
)

type Api struct {
	Config    *configuration.Configuration
	Version   *version.Version
	Runner    *shell.Runner
	Docker    *docker.Gateway
	Compose   *compose.Gateway
	Chrome    *chrome.Service
	Speedtest *speedtest.Service
	Hub       *events.Hub
}

// Request bodies.

type ComposeRequest struct {
	ComposeFile      string `json:"compose_file" binding:"required"`
	ProjectDirectory string `json:"project_directory"`
	Detached         bool   `json:"detached"`
	Build            bool   `json:"build"`
}

type ComposeLogsRequest struct {
	ComposeFile      string `json:"compose_file" binding:"required"`
	ProjectDirectory string `json:"project_directory"`
	Service          string `json:"service"`
	TailLines        int    `json:"tail_lines"`
}

type ComposeExecRequest struct {
	ComposeFile      string `json:"compose_file" binding:"required"`
	ProjectDirectory string `json:"project_directory"`
	Service          string `json:"service" binding:"required"`
	Command          string `json:"command" binding:"required"`
}

type ExecRequest struct {
	Command string `json:"command" binding:"required"`
}

type OpenRequest struct {
	URL     string `json:"url" binding:"required"`
	Profile string `json:"profile"`
}
