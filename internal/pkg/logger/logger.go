package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger: human-readable console output
// outside production, JSON lines in production.
func Setup(appEnv string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	level := zerolog.DebugLevel
	switch appEnv {
	case "prod", "production", "release":
		level = zerolog.InfoLevel
	default:
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Str("service", "trainee-api").Logger()
	log.Logger = l
	zerolog.DefaultContextLogger = &l
	return l
}
