package logging

import "github.com/quantumauth-io/quantum-go-utils/log"

// Logger is the structured logging surface components depend on.
// Arguments after msg are alternating key/value pairs.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type utilsLogger struct{}

// Default forwards to the process-wide quantum-go-utils logger.
func Default() Logger {
	return utilsLogger{}
}

func (utilsLogger) Info(msg string, keysAndValues ...any) {
	log.Info(msg, keysAndValues...)
}

func (utilsLogger) Warn(msg string, keysAndValues ...any) {
	log.Warn(msg, keysAndValues...)
}

func (utilsLogger) Error(msg string, keysAndValues ...any) {
	log.Error(msg, keysAndValues...)
}
