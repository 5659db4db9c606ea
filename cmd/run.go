package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mordilloSan/ddlog/logger"
)

// Options controls a demonstration run.
type Options struct {
	// LogFile, when set, adds a file sink at this path.
	LogFile string
	// Level is the threshold for the first round of messages.
	Level logger.Level
	// Colorize enables ANSI colors on the console sink.
	Colorize bool
	// Dev replaces the console sink with the slog developer console.
	Dev bool
	// Out is the console destination. Default: os.Stdout.
	Out io.Writer
}

// Run attaches the configured sinks and logs one message per severity at
// Options.Level, then at the Error, Info and Debug thresholds.
// The sinks are closed before Run returns.
func Run(options *Options) (err error) {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	log := logger.New(logger.WithLevel(options.Level))
	if options.Dev {
		log.AddSink(logger.NewDevConsoleSink(out))
	} else {
		log.AddSink(logger.NewConsoleSink(logger.WithOutput(out), logger.WithColor(options.Colorize)))
	}

	if options.LogFile != "" {
		file, ferr := logger.NewFileSink(options.LogFile)
		if ferr != nil {
			return ferr
		}
		log.AddSink(file)
	}

	defer func() {
		if cerr := log.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close sinks: %w", cerr)
		}
	}()

	emitAll(log, "initial")
	for _, level := range []logger.Level{logger.ErrorLevel, logger.InfoLevel, logger.DebugLevel} {
		log.SetLevel(level)
		emitAll(log, level.String())
	}

	return nil
}

func emitAll(log *logger.Logger, round string) {
	log.Errorf("## %s threshold: error log", round)
	log.Warnf("## %s threshold: warning log", round)
	log.Infof("## %s threshold: info log", round)
	log.Debugf("## %s threshold: debug log", round)
}
