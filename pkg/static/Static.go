package static

// Directory Constants
const (
	ROOTDIR   = "deskpilot"
	CONFIGDIR = "config"
	LOGDIR    = "logs"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Structure Paths
var STRUCTURE = []string{
	CONFIGDIR,
	LOGDIR,
}

// Process Runner Constants
const (
	// SPAWN_FAILURE_CODE is reported when the child process could not be
	// started at all (binary missing, permission denied).
	SPAWN_FAILURE_CODE = -1

	// TIMEOUT_CODE is reported when the child process was killed after
	// exceeding the caller supplied deadline.
	TIMEOUT_CODE = -2
)

// External Binaries
const (
	DOCKER_BINARY  = "docker"
	COMPOSE_PLUGIN = "compose"
)

// Operation Constants
const (
	OPERATION_LIST    = "list"
	OPERATION_START   = "start"
	OPERATION_STOP    = "stop"
	OPERATION_RESTART = "restart"
	OPERATION_DELETE  = "delete"
	OPERATION_INSPECT = "inspect"
	OPERATION_LOGS    = "logs"
	OPERATION_EXEC    = "exec"
	OPERATION_UP      = "up"
	OPERATION_DOWN    = "down"
	OPERATION_PULL    = "pull"
	OPERATION_BUILD   = "build"
	OPERATION_PS      = "ps"
	OPERATION_OPEN    = "open"
)

// Defaults
const (
	DEFAULT_HOST       = "0.0.0.0"
	DEFAULT_PORT       = "8976"
	DEFAULT_TAIL_LINES = 100
	DEFAULT_TIMEOUT    = 120
	DEFAULT_CHROME_BIN = "google-chrome"
)
