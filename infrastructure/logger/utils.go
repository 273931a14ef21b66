package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs, at debug level, that functionName started
// and returns a function that logs how long it took. It is meant to be
// deferred:
//
//	defer logger.LogAndMeasureExecutionTime(log, "loadIndex")()
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
