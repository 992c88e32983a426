package program

import (
	"context"
	"sync"
)

type runLocalErrorLogger struct {
	shutdownStarted sync.Once
	firstError      error
	cancel          context.CancelFunc
}

func (el *runLocalErrorLogger) Log(err error) {
	el.shutdownStarted.Do(func() {
		el.firstError = err
		el.cancel()
	})
}

// RunLocal runs a routine and all of the routines it spawns until
// completion, returning the first error that occurred. Unlike
// RunMain(), it does not install signal handlers or terminate the
// process.
func RunLocal(ctx context.Context, routine Routine) error {
	innerCtx, cancel := context.WithCancel(ctx)
	errorLogger := &runLocalErrorLogger{
		cancel: cancel,
	}
	run(innerCtx, errorLogger, routine)
	errorLogger.shutdownStarted.Do(cancel)
	return errorLogger.firstError
}
