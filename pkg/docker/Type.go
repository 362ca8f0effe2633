package docker

import (
	"time"

	"github.com/deskpilot/deskpilot/pkg/shell"
	"go.uber.org/zap"
)

// Gateway translates container lifecycle operations into docker CLI
// invocations. It holds no state besides its wiring, so concurrent calls are
// independent.
type Gateway struct {
	runner  *shell.Runner
	binary  string
	timeout time.Duration
	log     *zap.Logger
}

// Container scopes gateway operations to one container name.
type Container struct {
	name    string
	gateway *Gateway
}

// ContainerInfo is one row of a container listing, a single JSON line of
// `docker ps --format json`.
type ContainerInfo struct {
	ID           string   `json:"id"`
	Image        string   `json:"image"`
	Command      string   `json:"command"`
	CreatedAt    string   `json:"created_at"`
	State        string   `json:"state"`
	Status       string   `json:"status"`
	Ports        string   `json:"ports"`
	Names        string   `json:"names"`
	RunningFor   string   `json:"running_for"`
	Size         string   `json:"size"`
	Labels       string   `json:"labels"`
	LocalVolumes string   `json:"local_volumes"`
	Platform     Platform `json:"platform"`
}

type Platform struct {
	Architecture string `json:"architecture"`
	OS           string `json:"os"`
}

// InspectInfo is the detailed record derived from `docker inspect`.
type InspectInfo struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Image           string            `json:"image"`
	ImageID         string            `json:"image_id"`
	Created         string            `json:"created"`
	State           string            `json:"state"`
	Status          string            `json:"status"`
	HealthStatus    string            `json:"health_status,omitempty"`
	Ports           []PortBinding     `json:"ports"`
	Mounts          []Mount           `json:"mounts"`
	Networks        []string          `json:"networks"`
	EnvironmentVars map[string]string `json:"environment_vars"`
	Command         []string          `json:"command"`
	Entrypoint      []string          `json:"entrypoint"`
	WorkingDir      string            `json:"working_dir"`
	User            string            `json:"user"`
	RestartPolicy   string            `json:"restart_policy,omitempty"`
	Labels          map[string]string `json:"labels"`
}

type PortBinding struct {
	ContainerPort string `json:"container_port"`
	HostIP        string `json:"host_ip"`
	HostPort      string `json:"host_port"`
}

type Mount struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Type        string `json:"type"`
	ReadOnly    bool   `json:"read_only"`
}
