// Package logging builds the server and client's structured loggers,
// following sakateka-yanet2's InitLogging pattern: a zap.AtomicLevel the
// caller can adjust at runtime, and a single construction path shared by
// every entrypoint.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a foreground logger writing structured output to stderr.
func New(level zapcore.Level) (*zap.SugaredLogger, zap.AtomicLevel, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Development = false
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), cfg.Level, nil
}

// NewDaemon builds a logger whose core writes through the given
// zapcore.WriteSyncer instead of stderr — used with a syslog-backed
// writer in daemon mode, where stdio has been redirected to /dev/null.
func NewDaemon(level zapcore.Level, sink zapcore.WriteSyncer) (*zap.SugaredLogger, zap.AtomicLevel, error) {
	atomicLevel := zap.NewAtomicLevelAt(level)
	encoderCfg := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, atomicLevel)
	return zap.New(core).Sugar(), atomicLevel, nil
}
