package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// SlogLogger é a implementação concreta de Logger com saída JSON (uma linha por entrada).
type SlogLogger struct {
	log  *slog.Logger
	exit func(int)
}

// NewLogger cria um Logger JSON em stdout com o nível informado ("debug", "info", "warn", "error").
func NewLogger(level string) Logger {
	return New(os.Stdout, level)
}

// New cria um Logger JSON escrevendo em w.
func New(w io.Writer, level string) *SlogLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &SlogLogger{log: slog.New(handler), exit: os.Exit}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) logf(level slog.Level, msg string, fields map[string]interface{}, err error) {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	if len(fields) > 0 {
		group := make([]any, 0, len(fields))
		for k, v := range fields {
			group = append(group, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("fields", group...))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.log.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf(slog.LevelDebug, msg, fields, nil)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.logf(slog.LevelInfo, msg, fields, nil)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf(slog.LevelWarn, msg, fields, nil)
}

func (l *SlogLogger) Error(msg string, err error) {
	l.logf(slog.LevelError, msg, nil, err)
}

// Fatal registra o erro e encerra o processo.
func (l *SlogLogger) Fatal(msg string, err error) {
	l.logf(slog.LevelError+4, msg, nil, err)
	l.exit(1)
}
