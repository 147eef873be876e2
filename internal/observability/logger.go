package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the process-wide logger and returns it. The
// returned logger is also installed as zerolog's global logger so
// packages without an injected logger share the same output.
func InitLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// InitDebugLogger is InitLogger with the level lowered for protocol
// tracing.
func InitDebugLogger(app string) zerolog.Logger {
	logger := InitLogger(app).Level(zerolog.DebugLevel)
	log.Logger = logger
	return logger
}
