package logger

import (
	"io"
	"os"
)

// ConsoleSinkName is the name reported by every ConsoleSink.
const ConsoleSinkName = "Terminal log"

// Dependency injection point for testing console output.
var outStdout io.Writer = os.Stdout

const colorReset = "\033[0m"

var levelColors = map[Level]string{
	ErrorLevel: "\033[31m",
	WarnLevel:  "\033[33m",
	InfoLevel:  "\033[32m",
	DebugLevel: "\033[36m",
}

// ConsoleSink writes lines to standard output.
// Output is unbuffered; every line reaches the stream before Write returns.
type ConsoleSink struct {
	out      io.Writer
	colorize bool
	color    string
}

var (
	_ Sink         = (*ConsoleSink)(nil)
	_ SeverityHook = (*ConsoleSink)(nil)
)

// ConsoleOption configures a ConsoleSink.
type ConsoleOption func(*ConsoleSink)

// WithColor enables ANSI colors selected by the severity of each message.
func WithColor(enabled bool) ConsoleOption {
	return func(s *ConsoleSink) {
		s.colorize = enabled
	}
}

// WithOutput replaces standard output as the destination.
func WithOutput(w io.Writer) ConsoleOption {
	return func(s *ConsoleSink) {
		s.out = w
	}
}

// NewConsoleSink returns a sink writing to standard output. Plain output is
// used unless WithColor(true) is given.
func NewConsoleSink(opts ...ConsoleOption) *ConsoleSink {
	s := &ConsoleSink{out: outStdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns ConsoleSinkName.
func (s *ConsoleSink) Name() string {
	return ConsoleSinkName
}

// OnSeverity selects the color for the next line. It is a no-op for plain
// console sinks.
func (s *ConsoleSink) OnSeverity(level Level) {
	if !s.colorize {
		return
	}
	s.color = levelColors[level]
}

// Write emits line to standard output.
func (s *ConsoleSink) Write(line string) error {
	if s.colorize && s.color != "" {
		line = s.color + line + colorReset
	}
	return writeLine(s.out, line)
}
