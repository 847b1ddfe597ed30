// Package logging builds the process zerolog logger and adapts it to the
// gRPC middleware logging interface.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
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

// New returns a timestamped logger writing JSON lines to out, or
// human-readable console lines when pretty is set.
func New(out io.Writer, level string, pretty bool) zerolog.Logger {
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// InterceptorLogger adapts l for the grpc-middleware logging interceptors.
// The interceptor fields are key value pairs and are attached as-is.
func InterceptorLogger(l zerolog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(_ context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		logger := l.With().Fields(fields).Logger()

		switch lvl {
		case grpc_logging.LevelDebug:
			logger.Debug().Msg(msg)
		case grpc_logging.LevelInfo:
			logger.Info().Msg(msg)
		case grpc_logging.LevelWarn:
			logger.Warn().Msg(msg)
		case grpc_logging.LevelError:
			logger.Error().Msg(msg)
		default:
			logger.Error().Str("grpc_level", fmt.Sprint(lvl)).Msg(msg)
		}
	})
}
