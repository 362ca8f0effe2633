package docker

import (
	"testing"

	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestCommandResultForwarding(t *testing.T) {
	raws := []shell.ExecutionResult{
		{Success: true, Stdout: "out", Stderr: "", ReturnCode: 0, ExecutionTime: 0.25},
		{Success: false, Stdout: "", Stderr: "no such container", ReturnCode: 1, ExecutionTime: 1.5},
		{Success: false, Stdout: "partial", Stderr: "spawn failed", ReturnCode: -1, ExecutionTime: 0},
	}

	for _, raw := range raws {
		result := NewCommandResult(raw, "web", "start", map[string]any{"force": true})

		assert.Equal(t, raw.Success, result.Success())
		assert.Equal(t, raw.Stdout, result.Stdout())
		assert.Equal(t, raw.Stderr, result.Stderr())
		assert.Equal(t, raw.ReturnCode, result.ReturnCode())
		assert.Equal(t, raw.ExecutionTime, result.ExecutionTime())
		assert.Equal(t, raw, result.Raw())
	}
}

func TestCommandResultDefaults(t *testing.T) {
	result := NewCommandResult(shell.ExecutionResult{}, "", "list", nil)

	assert.NotNil(t, result.ParsedData)
	assert.Equal(t, "list", result.Operation)
}

func TestCommandResultMarshal(t *testing.T) {
	raw := shell.ExecutionResult{Success: false, Stderr: "boom", ReturnCode: 125, ExecutionTime: 0.5}
	result := NewCommandResult(raw, "db", "stop", map[string]any{"signal": "TERM"})

	data, err := result.MarshalJSON()
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "boom", decoded["stderr"])
	assert.Equal(t, float64(125), decoded["return_code"])
	assert.Equal(t, "db", decoded["container_name"])
	assert.Equal(t, "stop", decoded["operation"])
}
