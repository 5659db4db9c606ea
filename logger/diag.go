package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Dependency injection point for testing diagnostic output.
var outStderr io.Writer = os.Stderr

// NewDiagnostics returns the logger used to report sink failures when no
// other is supplied with WithDiagnostics. It writes errors in console format
// to standard error.
func NewDiagnostics() *zap.SugaredLogger {
	return newDiagnostics(outStderr)
}

func newDiagnostics(w io.Writer) *zap.SugaredLogger {
	//nolint:exhaustruct // Default encoder values are fine for the remaining fields.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		TimeKey:          "time",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.ErrorLevel)

	return zap.New(core).Sugar()
}
