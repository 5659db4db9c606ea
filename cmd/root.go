package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/ddlog/logger"
)

var (
	// levelName is the initial threshold name.
	levelName string
	// colorize enables ANSI colors on the console sink.
	colorize bool
	// dev switches the console sink to the slog developer console.
	dev bool

	// rootCmd runs the logging demonstration.
	rootCmd = &cobra.Command{
		Use:   "ddlog [logfile]",
		Short: "Demonstrate leveled logging to the console and an optional file.",
		Long: `Logs one message per severity at the selected threshold, then again at the
Error, Info and Debug thresholds, so the effect of each threshold is visible.

When a log file path is given, the same records are also written to that file
(the file is created or truncated).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(levelName)
			if err != nil {
				return err
			}

			options := &Options{
				Level:    level,
				Colorize: colorize,
				Dev:      dev,
				Out:      cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				options.LogFile = args[0]
			}

			return Run(options)
		},
	}
)

// Execute runs the ddlog CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		diag := logger.NewDiagnostics()
		diag.Errorw("ddlog failed", "error", err)
		_ = diag.Sync()
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&levelName, "level", "l", logger.WarnLevel.String(), "initial threshold (error, warning, info, debug)")
	rootCmd.Flags().BoolVar(&colorize, "color", false, "colorize console output by severity")
	rootCmd.Flags().BoolVar(&dev, "dev", false, "use the structured developer console")
}
