package logger

import "fmt"

// Errorf logs a message formatted with fmt.Sprintf at ErrorLevel.
func (l *Logger) Errorf(format string, v ...any) {
	l.Logf(ErrorLevel, format, v...)
}

// Warnf logs a message formatted with fmt.Sprintf at WarnLevel.
func (l *Logger) Warnf(format string, v ...any) {
	l.Logf(WarnLevel, format, v...)
}

// Infof logs a message formatted with fmt.Sprintf at InfoLevel.
func (l *Logger) Infof(format string, v ...any) {
	l.Logf(InfoLevel, format, v...)
}

// Errorln logs its arguments joined with fmt.Sprint at ErrorLevel.
func (l *Logger) Errorln(v ...any) {
	l.logln(ErrorLevel, v...)
}

// Warnln logs its arguments joined with fmt.Sprint at WarnLevel.
func (l *Logger) Warnln(v ...any) {
	l.logln(WarnLevel, v...)
}

// Infoln logs its arguments joined with fmt.Sprint at InfoLevel.
func (l *Logger) Infoln(v ...any) {
	l.logln(InfoLevel, v...)
}

func (l *Logger) logln(level Level, v ...any) {
	if !l.Enabled(level) || len(l.sinks) == 0 {
		return
	}
	l.Log(level, fmt.Sprint(v...))
}
