package logger

import (
	"context"

	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the process-wide logger. Level is one of debug/info/warn/error.
func Init(level string) error {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	global = log.Sugar()
	return nil
}

func Sync() {
	_ = global.Sync()
}

// The ctx parameter is reserved for request-scoped fields.

func Debugf(_ context.Context, format string, args ...interface{}) {
	global.Debugf(format, args...)
}

func Info(_ context.Context, msg string) {
	global.Info(msg)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	global.Warnf(format, args...)
}

func Error(_ context.Context, msg string) {
	global.Error(msg)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	global.Errorf(format, args...)
}

// Fatal logs the error and exits. A nil error is ignored so it can wrap
// blocking calls like router.Start.
func Fatal(_ context.Context, err error) {
	if err == nil {
		return
	}
	global.Fatal(err.Error())
}
