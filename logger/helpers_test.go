package logger

import (
	"bytes"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errDiskFull = errors.New("disk full")

// fixedTime renders as [03:04:05.006].
var fixedTime = time.Date(2024, time.January, 2, 3, 4, 5, 6_000_000, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

// newObservedLogger returns a Logger with a fixed clock whose diagnostics are
// captured by the returned observer.
func newObservedLogger(opts ...Option) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append([]Option{WithClock(fixedClock), WithDiagnostics(zap.New(core).Sugar())}, opts...)
	return New(opts...), logs
}

// recordSink appends every write to a shared journal, tagged with its name.
type recordSink struct {
	name    string
	journal *[]string
	levels  []Level
}

func (r *recordSink) Name() string { return r.name }

func (r *recordSink) Write(line string) error {
	*r.journal = append(*r.journal, r.name+": "+line)
	return nil
}

func (r *recordSink) OnSeverity(level Level) {
	r.levels = append(r.levels, level)
}

// failWriter rejects every write.
type failWriter struct {
	err error
}

func (f failWriter) Write([]byte) (int, error) {
	return 0, f.err
}

// closeRecorder is an io.WriteCloser that remembers whether it was closed.
type closeRecorder struct {
	io.Writer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

// flakyWriter rejects the first failures writes, then records the rest.
type flakyWriter struct {
	failures int
	written  bytes.Buffer
	closed   bool
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	if f.failures > 0 {
		f.failures--
		return 0, errDiskFull
	}
	return f.written.Write(p)
}

func (f *flakyWriter) Close() error {
	f.closed = true
	return nil
}
