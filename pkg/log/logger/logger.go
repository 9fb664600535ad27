package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the service logger. Every line carries the service name and
// version so aggregated logs can be traced back to a deployment.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger for the named service. When structured is true the
// output is JSON (the shipping default); otherwise a colored text format
// meant for a terminal. The level is taken from LOG_LEVEL when set.
func New(service, version string, structured bool) (*Logger, error) {
	base := logrus.New()
	base.SetOutput(os.Stderr)

	if structured {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		base.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", lvl, err)
		}
		base.SetLevel(parsed)
	}

	return &Logger{
		entry: base.WithFields(logrus.Fields{
			"service": service,
			"version": version,
		}),
	}, nil
}

// Debug logs at debug level. Arguments are formatted printf-style when present.
func (l *Logger) Debug(msg string, args ...any) {
	l.entry.Debug(format(msg, args))
}

// Info logs at info level. Arguments are formatted printf-style when present.
func (l *Logger) Info(msg string, args ...any) {
	l.entry.Info(format(msg, args))
}

// Warn logs at warn level. Arguments are formatted printf-style when present.
func (l *Logger) Warn(msg string, args ...any) {
	l.entry.Warn(format(msg, args))
}

// Error logs at error level. Arguments are formatted printf-style when present.
func (l *Logger) Error(msg string, args ...any) {
	l.entry.Error(format(msg, args))
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
