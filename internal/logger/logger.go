// Package logger configures the structured logger used by the hxui CLI.
//
// Each command logs through a logger scoped with its name, and the
// component registry receives the same sink as a plain zerolog.Logger
// through Zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// Verbose lowers the level to debug whatever Level says.
	Verbose bool
	// JSON writes one object per line instead of console output.
	JSON bool
	// Writer defaults to stderr so logs never mix with command output.
	Writer io.Writer
}

// Logger is a nil-safe handle on a zerolog.Logger.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if opts.Verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	if !opts.JSON {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(writer),
		}
	}

	return &Logger{base: zerolog.New(writer).Level(level).With().Timestamp().Logger()}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Command scopes l to a CLI command.
func (l *Logger) Command(name string) *Logger {
	return l.With("cmd", name)
}

// With returns a logger that adds the key/value pairs to every entry.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(kv).Logger()}
}

// Zerolog hands the sink to packages that take a zerolog.Logger, tagged
// with scope when it is not empty.
func (l *Logger) Zerolog(scope string) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	if scope == "" {
		return l.base
	}
	return l.base.With().Str("scope", scope).Logger()
}

func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(kv).Msg(msg)
}

func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(kv).Msg(msg)
}

// Error logs msg at error level with err attached.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Error().Err(err).Fields(kv).Msg(msg)
}
