package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// RootLogger is shared by every component; derive a child logger with
// RootLogger.With().Str("Component", name).Logger()
var RootLogger zerolog.Logger = zerolog.New(
	zerolog.NewConsoleWriter(
		func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr },
		func(w *zerolog.ConsoleWriter) { w.TimeFormat = "15:04:05.000" })).Level(zerolog.InfoLevel).
	With().Timestamp().Logger()
