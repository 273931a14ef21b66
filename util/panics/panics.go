package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/kaspanet/checkpointd/infrastructure/logger"
)

// exitHandlerTimeout bounds how long exiting waits for the log backend to
// flush.
const exitHandlerTimeout = 5 * time.Second

// HandlePanic recovers a panic, logs it with the stack trace of the
// panicking goroutine and, when given, the stack trace of the goroutine
// that spawned it, and exits the process. It must be deferred directly.
func HandlePanic(log *logger.Logger, spawnStackTrace []byte) {
	err := recover()
	if err == nil {
		return
	}

	exit(log, fmt.Sprintf("Fatal error: %+v", err), debug.Stack(), spawnStackTrace)
}

// GoroutineWrapperFunc returns a function that runs its argument in a new
// goroutine whose panics are handled by HandlePanic.
func GoroutineWrapperFunc(log *logger.Logger) func(func()) {
	return func(f func()) {
		spawnStackTrace := debug.Stack()
		go func() {
			defer HandlePanic(log, spawnStackTrace)
			f()
		}()
	}
}

// Exit logs reason at critical level, flushes the log backend and exits
// the process with status 1.
func Exit(log *logger.Logger, reason string) {
	exit(log, reason, nil, nil)
}

func exit(log *logger.Logger, reason string, stackTrace []byte, spawnStackTrace []byte) {
	// Entries are dropped while the backend isn't running, in which case
	// the reason goes to stderr directly.
	if !log.Backend().IsRunning() {
		fmt.Fprintln(os.Stderr, reason)
	}

	exitHandlerDone := make(chan struct{})
	go func() {
		log.Criticalf("Exiting: %s", reason)
		if spawnStackTrace != nil {
			log.Criticalf("Goroutine stack trace: %s", spawnStackTrace)
		}
		if stackTrace != nil {
			log.Criticalf("Stack trace: %s", stackTrace)
		}
		log.Backend().Close()
		close(exitHandlerDone)
	}()

	select {
	case <-time.After(exitHandlerTimeout):
		fmt.Fprintln(os.Stderr, "Couldn't exit gracefully.")
	case <-exitHandlerDone:
	}
	os.Exit(1)
}
