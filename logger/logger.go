package logger

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// timestampLayout renders the record prefix as HH:MM:SS.mmm.
const timestampLayout = "15:04:05.000"

// ErrNoSink is returned by RemoveSink when no sink exists at the position.
var ErrNoSink = errors.New("no sink at position")

// Logger filters messages by severity and writes them to its sinks.
//
// A Logger is not safe for concurrent use. Callers that share one between
// goroutines must serialize calls themselves, for example with a mutex or by
// giving each goroutine its own Logger.
type Logger struct {
	level Level
	sinks []Sink
	now   func() time.Time
	diag  *zap.SugaredLogger
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the initial threshold.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithDiagnostics sets the logger that receives sink failure reports.
func WithDiagnostics(diag *zap.SugaredLogger) Option {
	return func(l *Logger) {
		l.diag = diag
	}
}

// New returns a Logger with threshold WarnLevel and no sinks.
func New(opts ...Option) *Logger {
	l := &Logger{
		level: WarnLevel,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.diag == nil {
		l.diag = NewDiagnostics()
	}
	return l
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return l.level
}

// SetLevel replaces the threshold.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// AddSink appends s to the sink list. The Logger takes ownership of s.
// The same destination may be attached more than once; each attachment
// receives every message.
func (l *Logger) AddSink(s Sink) {
	l.sinks = append(l.sinks, s)
}

// Len returns the number of attached sinks.
func (l *Logger) Len() int {
	return len(l.sinks)
}

// RemoveSink detaches the sink at position i and returns it. Ownership moves
// back to the caller, who becomes responsible for closing it.
func (l *Logger) RemoveSink(i int) (Sink, error) {
	if i < 0 || i >= len(l.sinks) {
		return nil, fmt.Errorf("%w %d (have %d)", ErrNoSink, i, len(l.sinks))
	}
	s := l.sinks[i]
	l.sinks = append(l.sinks[:i], l.sinks[i+1:]...)
	return s, nil
}

// Enabled reports whether a message at level would be delivered.
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.level)
}

// Log writes msg to every sink, in attachment order, if level is at least as
// severe as the threshold. A sink that fails to write is reported to the
// diagnostics logger and the remaining sinks are still written; sink failures
// never reach the caller.
func (l *Logger) Log(level Level, msg string) {
	if !l.Enabled(level) || len(l.sinks) == 0 {
		return
	}

	line := l.render(msg)
	for _, s := range l.sinks {
		if h, ok := s.(SeverityHook); ok {
			h.OnSeverity(level)
		}
		if err := s.Write(line); err != nil {
			l.report(&SinkError{Sink: s.Name(), Err: err})
		}
	}
}

// Logf formats its arguments with fmt.Sprintf and calls Log.
// Formatting is skipped when the message would be filtered out.
func (l *Logger) Logf(level Level, format string, v ...any) {
	if !l.Enabled(level) || len(l.sinks) == 0 {
		return
	}
	l.Log(level, fmt.Sprintf(format, v...))
}

// Flush flushes every sink that buffers output. All sinks are flushed even
// if some fail; the failures are combined in the returned error.
func (l *Logger) Flush() error {
	var err error
	for _, s := range l.sinks {
		if f, ok := s.(Flusher); ok {
			if ferr := f.Flush(); ferr != nil {
				err = multierr.Append(err, &SinkError{Sink: s.Name(), Err: ferr})
			}
		}
	}
	return err
}

// Close closes every owned sink that implements io.Closer and detaches all
// sinks. Every sink is closed even if some fail; the failures are combined in
// the returned error. The Logger stays usable and can be given new sinks.
func (l *Logger) Close() error {
	var err error
	for _, s := range l.sinks {
		if c, ok := s.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil {
				err = multierr.Append(err, &SinkError{Sink: s.Name(), Err: cerr})
			}
		}
	}
	l.sinks = nil
	_ = l.diag.Sync()
	return err
}

// render prefixes msg with the current time.
func (l *Logger) render(msg string) string {
	ts := l.now().Format(timestampLayout)
	buf := make([]byte, 0, len(ts)+3+len(msg))
	buf = append(buf, '[')
	buf = append(buf, ts...)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)
	return string(buf)
}

func (l *Logger) report(err *SinkError) {
	l.diag.Errorw("failed to write to sink",
		"sink", err.Sink,
		"error", err.Err,
	)
}
