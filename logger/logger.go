package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a zerolog logger. The local environment gets a console writer,
// everything else writes JSON lines.
func New(env, level string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	var l zerolog.Logger
	if env == "local" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(out).With().Timestamp().Logger()
	}

	return l.Level(ParseLevel(level))
}

// Output is where Init points the global logger.
var Output io.Writer = os.Stdout

// Init replaces the global zerolog logger.
func Init(env, level string) {
	log.Logger = New(env, level, Output)
	zerolog.SetGlobalLevel(ParseLevel(level))
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
