package util

import (
	"log"
)

// ErrorLogger may be used to report errors that cannot be returned to
// the caller directly, such as failures that occur while serving HTTP
// responses or while flushing spans during shutdown.
type ErrorLogger interface {
	Log(err error)
}

type logErrorLogger struct {
	logger *log.Logger
	prefix string
}

// NewLogErrorLogger creates an ErrorLogger that writes errors to a
// logger, prefixed by a description of the operation that failed.
func NewLogErrorLogger(logger *log.Logger, prefix string) ErrorLogger {
	return &logErrorLogger{
		logger: logger,
		prefix: prefix,
	}
}

func (el *logErrorLogger) Log(err error) {
	el.logger.Printf("%s: %s", el.prefix, err)
}
