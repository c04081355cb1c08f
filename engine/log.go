package engine

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// appLogger writes to a size-rotated log file. Stdout and stderr belong to
// the terminal driver while the application runs, so diagnostics go to disk
type appLogger struct {
	*log.Logger
	sink *lumberjack.Logger
}

func newLogger(path string) *appLogger {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	return &appLogger{
		Logger: log.New(sink, "", log.LstdFlags|log.Lmicroseconds),
		sink:   sink,
	}
}

func (l *appLogger) Close() error { return l.sink.Close() }
