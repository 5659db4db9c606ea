//go:build nodebuglogs

package logger

// DebugCompiled reports whether the debug shorthands are compiled in.
const DebugCompiled = false

// Debugf is compiled out by the nodebuglogs build tag.
func (l *Logger) Debugf(string, ...any) {}

// Debugln is compiled out by the nodebuglogs build tag.
func (l *Logger) Debugln(...any) {}
