package compose

import (
	"time"

	"github.com/deskpilot/deskpilot/pkg/shell"
	"go.uber.org/zap"
)

// Gateway translates compose project operations into `docker compose`
// invocations. Like the container gateway it is stateless: every call owns
// exactly one child process.
type Gateway struct {
	runner  *shell.Runner
	binary  string
	timeout time.Duration
	log     *zap.Logger
}

// Project scopes gateway operations to one compose file. The project
// directory defaults to the file's containing directory at construction.
type Project struct {
	file    string
	dir     string
	gateway *Gateway
}

// ProjectInfo is one record of `docker compose ls --format json`.
type ProjectInfo struct {
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	ConfigFiles []string `json:"config_files"`
	WorkingDir  string   `json:"working_dir"`
	Services    []string `json:"services"`
	Networks    []string `json:"networks"`
	Volumes     []string `json:"volumes"`
}

// ServiceInfo is one record of `docker compose ps --format json`.
type ServiceInfo struct {
	Name      string   `json:"name"`
	Project   string   `json:"project"`
	Status    string   `json:"status"`
	Image     string   `json:"image"`
	Ports     []string `json:"ports"`
	Networks  []string `json:"networks"`
	DependsOn []string `json:"depends_on"`
}

// UpOptions mirror the flags `up` accepts.
type UpOptions struct {
	Detached bool
	Build    bool
}
