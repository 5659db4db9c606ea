//go:build !nodebuglogs

package logger

// DebugCompiled reports whether the debug shorthands are compiled in.
const DebugCompiled = true

// Debugf logs a message formatted with fmt.Sprintf at DebugLevel.
// Building with the nodebuglogs tag turns it into a no-op.
func (l *Logger) Debugf(format string, v ...any) {
	l.Logf(DebugLevel, format, v...)
}

// Debugln logs its arguments joined with fmt.Sprint at DebugLevel.
// Building with the nodebuglogs tag turns it into a no-op.
func (l *Logger) Debugln(v ...any) {
	l.logln(DebugLevel, v...)
}
