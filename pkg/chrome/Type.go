package chrome

import (
	"github.com/deskpilot/deskpilot/pkg/shell"
	"go.uber.org/zap"
)

// Service launches URLs in browser profiles through the shared process
// runner.
type Service struct {
	runner      *shell.Runner
	binary      string
	userDataDir string
	log         *zap.Logger
}

// Profile is one entry of the browser's profile cache. ID is the profile
// directory name ("Default", "Profile 1", ...), Name the user-visible label.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LaunchResult tags a raw execution result with the launch parameters, the
// same read-only-view discipline as the docker command result.
type LaunchResult struct {
	raw shell.ExecutionResult

	URL     string
	Profile string
}

func (r LaunchResult) Success() bool { return r.raw.Success }

func (r LaunchResult) Stderr() string { return r.raw.Stderr }

func (r LaunchResult) ReturnCode() int { return r.raw.ReturnCode }

func (r LaunchResult) ExecutionTime() float64 { return r.raw.ExecutionTime }

func (r LaunchResult) Raw() shell.ExecutionResult { return r.raw }
