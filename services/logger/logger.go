package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the printf-style logger every service receives
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type Options struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// LogrusLogger writes JSON or text entries to stdout or a rotated file
type LogrusLogger struct {
	entry *logrus.Entry
}

func NewLogrusLogger(opts Options) (*LogrusLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)

	switch opts.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	var output io.Writer = os.Stdout
	if opts.Output == "file" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0755); err != nil {
			return nil, err
		}
		output = &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		}
	}
	l.SetOutput(output)

	return &LogrusLogger{entry: logrus.NewEntry(l)}, nil
}

func (l *LogrusLogger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *LogrusLogger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

func (l *LogrusLogger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

// WithFields returns a logger that adds fields to every entry
func (l *LogrusLogger) WithFields(fields map[string]interface{}) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// ZerologLogger is the console logger used in development
type ZerologLogger struct {
	log zerolog.Logger
}

func NewZerologLogger(w io.Writer, level string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return &ZerologLogger{log: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

func (l *ZerologLogger) Info(format string, v ...interface{}) {
	l.log.Info().Msgf(format, v...)
}

func (l *ZerologLogger) Error(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l *ZerologLogger) Debug(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

// New picks the console logger for dev and logrus elsewhere
func New(env string, opts Options) (Logger, error) {
	if env == "dev" || env == "development" {
		return NewZerologLogger(nil, opts.Level), nil
	}
	return NewLogrusLogger(opts)
}

// Nop discards everything
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
