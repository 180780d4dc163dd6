// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(out io.Writer, level string, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch level {
	case "trace":
		log.SetLevel(logrus.TraceLevel)
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	if debug && log.GetLevel() < logrus.DebugLevel {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
