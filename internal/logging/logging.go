package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It writes to stderr so command output on
// stdout stays machine-readable.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetLevel parses a level name and applies it to Log.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// ParseLevel accepts debug, info, warn/warning and error.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("bad log level %q (use debug, info, warn, or error)", level)
	}
}
