package shell

import "go.uber.org/zap"

// ExecutionResult is the raw outcome of one child process invocation. It is
// built exactly once by the Runner and never mutated afterwards.
type ExecutionResult struct {
	Success       bool    `json:"success"`
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	ReturnCode    int     `json:"return_code"`
	ExecutionTime float64 `json:"execution_time"`
}

type Runner struct {
	log *zap.Logger
}
