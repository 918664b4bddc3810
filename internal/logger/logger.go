package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once
var Log zerolog.Logger

func configureLogger(out io.Writer) {
	zerolog.TimeFieldFormat = TimeFormat

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: TimeFormat,
	}

	Log = zerolog.New(output).With().Timestamp().Logger()
}

// GetLoggerConfigured sets the global level the first time any logger is
// requested. Later calls keep the first configuration but still apply level.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configureLogger(os.Stdout)
	})
	zerolog.SetGlobalLevel(level)
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(func() {
		configureLogger(os.Stdout)
	})
	return &Log
}

// NewLogger builds a standalone console logger writing to out, used where
// output must be captured instead of going to stdout.
func NewLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: TimeFormat,
		NoColor:    true,
	}).With().Timestamp().Logger()
}

// ParseLevel accepts zerolog level names and falls back to info.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
