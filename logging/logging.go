// Package logging monta o logger zerolog usado pelos binários.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New cria um logger com timestamp e o campo "service".
// format "console" gera saída legível para desenvolvimento; qualquer outro valor gera JSON.
func New(service string, level zerolog.Level, format string) zerolog.Logger {
	return NewWithWriter(os.Stdout, service, level, format)
}

func NewWithWriter(w io.Writer, service string, level zerolog.Level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
