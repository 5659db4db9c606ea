// Package logger provides a small leveled logger that fans each message out
// to any number of sinks.
//
// # Levels
//
// Four severities are supported, most severe first: ErrorLevel, WarnLevel,
// InfoLevel and DebugLevel. A message is delivered when its level is at least
// as severe as the Logger's threshold. New loggers start at WarnLevel.
//
// # Sinks
//
// A Sink is any destination that accepts rendered lines:
//
//   - ConsoleSink writes to standard output, optionally colorized
//   - FileSink creates (or truncates) a file and writes buffered lines to it
//   - WriterSink wraps any io.Writer
//   - HandlerSink forwards lines to a log/slog handler
//
// Sinks are written in the order they were attached. A sink that fails to
// write is reported to a diagnostics logger (standard error by default) and
// the other sinks are still written; Log itself never fails.
//
// # Usage
//
//	log := logger.New()
//	log.SetLevel(logger.InfoLevel)
//	log.AddSink(logger.NewConsoleSink(logger.WithColor(true)))
//
//	file, err := logger.NewFileSink("app.log")
//	if err != nil {
//	    return err
//	}
//	log.AddSink(file)
//	defer log.Close()
//
//	log.Infof("server started on port %d", 8080)
//
// Every line is prefixed with the local time as [HH:MM:SS.mmm].
//
// # Debug Elision
//
// Building with -tags nodebuglogs compiles Debugf and Debugln to empty methods.
//
// # Concurrency
//
// A Logger has no internal locking. Serialize access when sharing one between
// goroutines.
package logger
