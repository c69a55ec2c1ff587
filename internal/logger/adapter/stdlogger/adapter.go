// Package stdlogger adapts the global zerolog logger to printf style logger
// interfaces expected by libraries, for example gorm's logger.Writer.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger writes printf style messages to zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger bound to the current global logger.
func New() *Logger {
	return &Logger{zl: log.Logger.With().Str("component", "stdlogger").Logger()}
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Printf implements gorm's logger.Writer. Lines are logged at info level,
// multi-line output is flattened.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.zl.Info().Msgf(strings.ReplaceAll(format, "\n", " "), v...)
}
