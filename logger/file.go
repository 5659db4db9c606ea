package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// FileSink writes lines to a file. Each line is assembled in a buffer and
// flushed to the file before Write returns, so a failed write is reported on
// the call that lost it and the next call tries the file again.
type FileSink struct {
	path   string
	dst    io.WriteCloser
	w      *bufio.Writer
	closed bool
}

var (
	_ Sink    = (*FileSink)(nil)
	_ Flusher = (*FileSink)(nil)
)

// NewFileSink creates (or truncates) the file at path.
// It returns an error if the file cannot be created; no sink is returned in
// that case.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file %s: %w", path, err)
	}
	return newFileSink(path, f), nil
}

func newFileSink(path string, dst io.WriteCloser) *FileSink {
	return &FileSink{
		path: path,
		dst:  dst,
		w:    bufio.NewWriter(dst),
	}
}

// Name returns the file path.
func (s *FileSink) Name() string {
	return s.path
}

// Write appends line to the file. On failure the buffered remainder of the
// line is discarded.
func (s *FileSink) Write(line string) error {
	if s.closed {
		return os.ErrClosed
	}
	_, err := s.w.WriteString(line)
	if err == nil {
		err = s.w.WriteByte('\n')
	}
	if err == nil {
		err = s.w.Flush()
	}
	if err != nil {
		// bufio errors are sticky; start over on the next call.
		s.w.Reset(s.dst)
		return err
	}
	return nil
}

// Flush writes any buffered bytes to the file. It does not fsync.
func (s *FileSink) Flush() error {
	if s.closed {
		return nil
	}
	if err := s.w.Flush(); err != nil {
		s.w.Reset(s.dst)
		return err
	}
	return nil
}

// Close flushes buffered bytes and closes the file.
// The file is closed even when the flush fails. Subsequent calls are no-ops.
func (s *FileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	flushErr := s.w.Flush()
	closeErr := s.dst.Close()
	if flushErr != nil {
		return fmt.Errorf("flush log file %s: %w", s.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close log file %s: %w", s.path, closeErr)
	}
	return nil
}
