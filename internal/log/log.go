// Package log provides the zap logger shared by the gmtool commands.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// GetSugaredLogger returns the sugared logger, falling back to a no-op
// logger when Init has not been called.
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugf(template string, args ...any) {
	GetSugaredLogger().Debugf(template, args...)
}

func Infof(template string, args ...any) {
	GetSugaredLogger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...any) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Errorf(template string, args ...any) {
	GetSugaredLogger().Errorf(template, args...)
}
