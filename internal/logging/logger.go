// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a zap JSON logger, level is one of debug, info, warn, error
// unknown levels fall back to error
func NewLogger(l string) *Logger {
	level, err := zapcore.ParseLevel(strings.ToLower(l))
	invalid := err != nil
	if invalid {
		level = zapcore.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	lgr, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := &Logger{
		SugaredLogger: lgr.Sugar(),
		security:      &SecurityLogger{l: lgr.Named("security")},
	}

	if invalid {
		logger.Warnf("invalid log level %q, defaulting to error", l)
	}

	return logger
}
