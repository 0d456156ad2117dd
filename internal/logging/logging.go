package logging

import (
	"go.uber.org/zap"
)

var logger *zap.Logger = zap.NewNop()

// Init builds the process logger. Development mode uses the console encoder,
// release mode emits JSON.
func Init(ginMode string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if ginMode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	logger = l
	return l, nil
}

// L returns the process logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = logger.Sync()
}
