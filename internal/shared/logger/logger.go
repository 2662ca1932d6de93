package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/cragbase/cragbase/internal/shared/config"
)

var (
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar
)

// Init builds the process logger. In development mode every level carries
// its source location; otherwise only warnings and errors do.
func Init(cfg *config.LoggerConfig, mode string) error {
	atomicLevel = new(slog.LevelVar)
	atomicLevel.Set(parseLevel(cfg.Level))

	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if mode == "development" || mode == "debug" {
		sourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	var base slog.Handler
	if cfg.Format == "json" {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: atomicLevel})
	} else {
		base = tint.NewHandler(writer, tintOptions(atomicLevel, !isTerminal(writer)))
	}

	Logger = slog.New(NewSourceHandler(base, sourceLevels...))
	slog.SetDefault(Logger)

	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func tintOptions(level slog.Leveler, noColor bool) *tint.Options {
	return &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func SetLevel(level slog.Level) {
	if atomicLevel != nil {
		atomicLevel.Set(level)
	}
}

// Get returns the process logger, falling back to a console logger when
// Init has not run (tests, early startup).
func Get() *slog.Logger {
	if Logger == nil {
		base := tint.NewHandler(os.Stdout, tintOptions(slog.LevelInfo, !isTerminal(os.Stdout)))
		Logger = slog.New(NewSourceHandler(base, slog.LevelWarn, slog.LevelError))
	}
	return Logger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
