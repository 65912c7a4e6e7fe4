package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New, serviceName, env ve logLevel'e göre stderr'e yazan bir zerolog.Logger oluşturur.
// 'development' ortamında renkli konsol çıktısı, diğerlerinde JSON çıktısı verir.
func New(serviceName, env, logLevel string) zerolog.Logger {
	return NewWithWriter(os.Stderr, serviceName, env, logLevel)
}

// NewWithWriter, New ile aynıdır ancak çıktıyı w'ye yazar.
func NewWithWriter(w io.Writer, serviceName, env, logLevel string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(out).With().Timestamp().Str("service", serviceName).Logger()

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = zerolog.InfoLevel
		logger.Warn().Str("log_level", logLevel).Msg("Geçersiz LOG_LEVEL, varsayılan olarak 'info' kullanılıyor.")
	}
	return logger.Level(level)
}

// WithTrace, isteğe özel trace_id ve method alanlarını ekler.
func WithTrace(base zerolog.Logger, traceID, method string) zerolog.Logger {
	return base.With().Str("trace_id", traceID).Str("method", method).Logger()
}
