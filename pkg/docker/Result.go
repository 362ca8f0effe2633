package docker

import (
	"github.com/deskpilot/deskpilot/pkg/shell"
	jsoniter "github.com/json-iterator/go"
)

// CommandResult tags a raw execution result with the logical operation that
// produced it. The raw result is held privately and only exposed through
// read-only views, so the wrapper can never disagree with it.
type CommandResult struct {
	raw shell.ExecutionResult

	ContainerName string
	Operation     string
	ParsedData    map[string]any
}

func NewCommandResult(raw shell.ExecutionResult, containerName string, operation string, parsedData map[string]any) CommandResult {
	if parsedData == nil {
		parsedData = map[string]any{}
	}

	return CommandResult{
		raw:           raw,
		ContainerName: containerName,
		Operation:     operation,
		ParsedData:    parsedData,
	}
}

func (r CommandResult) Success() bool { return r.raw.Success }

func (r CommandResult) Stdout() string { return r.raw.Stdout }

func (r CommandResult) Stderr() string { return r.raw.Stderr }

func (r CommandResult) ReturnCode() int { return r.raw.ReturnCode }

func (r CommandResult) ExecutionTime() float64 { return r.raw.ExecutionTime }

func (r CommandResult) Raw() shell.ExecutionResult { return r.raw }

func (r CommandResult) MarshalJSON() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	return json.Marshal(struct {
		Success       bool           `json:"success"`
		Stdout        string         `json:"stdout"`
		Stderr        string         `json:"stderr"`
		ReturnCode    int            `json:"return_code"`
		ExecutionTime float64        `json:"execution_time"`
		ContainerName string         `json:"container_name,omitempty"`
		Operation     string         `json:"operation"`
		ParsedData    map[string]any `json:"parsed_data"`
	}{
		Success:       r.raw.Success,
		Stdout:        r.raw.Stdout,
		Stderr:        r.raw.Stderr,
		ReturnCode:    r.raw.ReturnCode,
		ExecutionTime: r.raw.ExecutionTime,
		ContainerName: r.ContainerName,
		Operation:     r.Operation,
		ParsedData:    r.ParsedData,
	})
}
