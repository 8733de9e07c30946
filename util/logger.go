package util

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	l.SetLevel(log.InfoLevel)
	return l
}

// Logger returns the process logger. Diagnostics go here, never to the console menus.
func Logger() *log.Logger {
	return logger
}

// ConfigureLogger sets the level and the destination of the process logger. An empty
// file keeps stderr. The returned closer releases the log file.
func ConfigureLogger(level, file string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	if file == "" {
		logger.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(f)
	return f, nil
}

// SetLoggerOutputForTest redirects the process logger and returns a restore function.
func SetLoggerOutputForTest(out io.Writer) func() {
	prev := logger.Out
	logger.SetOutput(out)
	return func() { logger.SetOutput(prev) }
}
