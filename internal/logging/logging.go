// Package logging builds the process logger from config.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/notes/internal/config"
)

const timestampFormat = "2006-01-02 15:04:05"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured from cfg and the closer for its output.
// When toStderr is set the log file setting is ignored; the interactive UI
// passes false because it owns the terminal.
func New(cfg config.Log, toStderr bool) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		defer log.Warnf("invalid log level %q, using info", cfg.Level)
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat})
	}

	if toStderr || cfg.File == "" || cfg.File == "-" {
		log.SetOutput(os.Stderr)
		return log, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}
