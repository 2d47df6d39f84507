/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger forwards pclkit log messages to a logrus logger.
type LogrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger wraps `l`. A nil `l` uses logrus.StandardLogger().
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{l: l}
}

// IsLogLevel returns true if the wrapped logger is at least as verbose as `level`.
func (l *LogrusLogger) IsLogLevel(level LogLevel) bool {
	return l.l.IsLevelEnabled(logrusLevel(level))
}

func (l *LogrusLogger) Error(format string, args ...interface{})   { l.l.Errorf(format, args...) }
func (l *LogrusLogger) Warning(format string, args ...interface{}) { l.l.Warnf(format, args...) }

// Notice has no logrus counterpart and is logged at info level.
func (l *LogrusLogger) Notice(format string, args ...interface{}) { l.l.Infof(format, args...) }
func (l *LogrusLogger) Info(format string, args ...interface{})   { l.l.Infof(format, args...) }
func (l *LogrusLogger) Debug(format string, args ...interface{})  { l.l.Debugf(format, args...) }
func (l *LogrusLogger) Trace(format string, args ...interface{})  { l.l.Tracef(format, args...) }

func logrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelWarning:
		return logrus.WarnLevel
	case LogLevelNotice, LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelDebug:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}
