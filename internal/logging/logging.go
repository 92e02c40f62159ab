// Package logging configures the debug logger shared by the generator and CLI.
//
// Logging is silent until Setup is called. User-facing progress output does
// not go through here; see iconsgen.Reporter.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.Nop()

// LevelFor maps a -v count to a zerolog level
func LevelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the logger to write human-readable lines to w
func Setup(w io.Writer, verbosity int, noColor bool) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	logger := zerolog.New(consoleWriter).Level(LevelFor(verbosity)).With().Timestamp().Logger()

	// Add caller information at trace level
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	base = logger
	base.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// SetLogger replaces the base logger (tests capture output this way)
func SetLogger(logger zerolog.Logger) {
	base = logger
}

// Logger returns a logger tagged with the given component name
func Logger(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
