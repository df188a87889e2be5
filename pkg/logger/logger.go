package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr на уровне warn, чтобы пакеты можно было
// использовать без явной инициализации (например, в тестах).
var Log = newDefault()

// FileOptions — параметры ротации файла логов.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init инициализирует глобальный логгер из окружения.
//
//   - LOG_LEVEL  — уровень logrus, по умолчанию "info"
//   - LOG_FORMAT — "json" или "text"
//   - LOG_FILE   — если задан, логи дублируются в файл с ротацией
//
// Stdout занят снапшотами CLI, поэтому консольный вывод идёт в stderr.
func Init() {
	InitWith(FileOptions{Path: os.Getenv("LOG_FILE")})
}

// InitWith — то же, что Init, но с явными параметрами файла.
func InitWith(file FileOptions) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stderr
	if file.Path != "" {
		out = io.MultiWriter(os.Stderr, rotating(file))
	}
	Log.SetOutput(out)
}

func rotating(opts FileOptions) *lumberjack.Logger {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	if opts.MaxAgeDays <= 0 {
		opts.MaxAgeDays = 7
	}
	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
}

// Component возвращает логгер с полем component, как принято в системах.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
