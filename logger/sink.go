package logger

import (
	"fmt"
	"io"
	"os"
)

// Sink is a destination for rendered log lines.
//
// Once attached with AddSink, a sink is owned by the Logger: the Logger
// closes it (when it implements io.Closer) from Close.
type Sink interface {
	// Name identifies the sink in failure reports.
	Name() string
	// Write appends line, terminated by a newline, to the destination.
	Write(line string) error
}

// SeverityHook is implemented by sinks that adjust their presentation to the
// severity of the message about to be written. The Logger calls OnSeverity
// immediately before every Write.
type SeverityHook interface {
	OnSeverity(level Level)
}

// Flusher is implemented by sinks that buffer output.
type Flusher interface {
	Flush() error
}

// SinkError describes a failed write to a single sink.
type SinkError struct {
	// Sink is the name of the sink that rejected the write.
	Sink string
	// Err is the underlying cause.
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %q: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// WriterSink writes lines to an arbitrary io.Writer.
type WriterSink struct {
	name string
	w    io.Writer
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink returns a sink named name that writes to w.
//
// The sink owns w: if w is an io.Closer, closing the sink (or the Logger it
// is attached to) closes w. os.Stdout and os.Stderr are never closed.
func NewWriterSink(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

// Name returns the name given to NewWriterSink.
func (s *WriterSink) Name() string {
	return s.name
}

// Write writes line followed by a newline in a single call to the writer.
func (s *WriterSink) Write(line string) error {
	return writeLine(s.w, line)
}

// Close closes the underlying writer when it supports closing, except for
// the process's standard streams.
func (s *WriterSink) Close() error {
	if s.w == os.Stdout || s.w == os.Stderr {
		return nil
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func writeLine(w io.Writer, line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}
