package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
)

type rootFlags struct {
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "layoutkit",
		Short:         "Layoutkit shows a responsive sidebar in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("Layoutkit {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newClassifyCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Flags set on the command line win over
// the log section of cfg; fallback receives output when no file is set.
func (f *rootFlags) newLogger(cmd *cobra.Command, cfg *config.Config, fallback io.Writer) (*logger.Logger, func(), error) {
	level, file, human := f.logLevel, f.logFile, true
	if cfg != nil {
		if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
			level = cfg.Log.Level
		}
		if !cmd.Flags().Changed("log-file") && cfg.Log.File != "" {
			file = cfg.Log.File
		}
		human = cfg.Log.HumanReadable || file == ""
	}

	writer := fallback
	closer := func() {}
	if file != "" {
		fh, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = fh
		closer = func() { _ = fh.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: human,
		Writer:        writer,
		Component:     cmd.Name(),
	})
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, closer, nil
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.ParseConfig(path)
}
