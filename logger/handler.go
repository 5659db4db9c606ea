package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/phsym/console-slog"
)

// DevConsoleSinkName is the name reported by sinks from NewDevConsoleSink.
const DevConsoleSinkName = "Developer console"

// HandlerSink forwards each line to a slog.Handler as one record.
// The record level follows the severity passed to OnSeverity.
type HandlerSink struct {
	name    string
	handler slog.Handler
	level   slog.Level
}

var (
	_ Sink         = (*HandlerSink)(nil)
	_ SeverityHook = (*HandlerSink)(nil)
)

// NewHandlerSink returns a sink named name that emits records to h.
func NewHandlerSink(name string, h slog.Handler) *HandlerSink {
	return &HandlerSink{
		name:    name,
		handler: h,
		level:   slog.LevelWarn,
	}
}

// NewDevConsoleSink returns a colored, human-oriented console sink writing
// to w. Every severity is passed through; filtering is left to the Logger.
func NewDevConsoleSink(w io.Writer) *HandlerSink {
	h := console.NewHandler(w, &console.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewHandlerSink(DevConsoleSinkName, h)
}

// Name returns the name given to NewHandlerSink.
func (s *HandlerSink) Name() string {
	return s.name
}

// OnSeverity sets the slog level of the next record.
func (s *HandlerSink) OnSeverity(level Level) {
	s.level = toSlogLevel(level)
}

// Write emits line as the message of a single record. Records below the
// handler's own level are dropped silently.
func (s *HandlerSink) Write(line string) error {
	ctx := context.Background()
	if !s.handler.Enabled(ctx, s.level) {
		return nil
	}
	r := slog.NewRecord(time.Now(), s.level, line, 0)
	return s.handler.Handle(ctx, r)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case ErrorLevel:
		return slog.LevelError
	case WarnLevel:
		return slog.LevelWarn
	case InfoLevel:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
