package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

func NewLogger(logLevel zapcore.Level, outputStdout []string, outputStderr []string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: true,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputStdout,
		ErrorOutputPaths:  outputStderr,
		InitialFields:     map[string]interface{}{},
	}

	return zap.Must(config.Build())
}

// Named returns a child of the process-wide logger scoped to one component,
// falling back to a no-op logger before NewLogger ran (tests mostly).
func Named(component string) *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}

	return Log.Named(component)
}
