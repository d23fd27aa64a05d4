package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName = "dotlab.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxBackups  = 3
)

// setupLogging routes logrus to a rotating file under dir when debug is set
// The terminal belongs to tcell, so nothing is ever written to stdout or stderr
// Returns the sink to close on exit, nil when logging is discarded
func setupLogging(debug bool, dir string) (*logrus.Entry, io.Closer) {
	logger := logrus.New()
	entry := logger.WithField("session", uuid.NewString())

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return entry, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		return entry, nil
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    maxLogSize / (1024 * 1024),
		MaxBackups: maxBackups,
	}
	logger.SetOutput(sink)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)

	entry.Info("logging started")
	return entry, sink
}
