package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/layoutkit/internal/sidebar"
)

type classifyOptions struct {
	configPath string
	width      int
}

func newClassifyCmd(flags *rootFlags) *cobra.Command {
	opts := classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show the breakpoint and sidebar state for a width",
		Long: `Classify a width against the breakpoint table and print the state a
responsive sidebar would take. Without --width the current terminal width is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			log, closeLog, err := flags.newLogger(cmd, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			width := opts.width
			if width <= 0 {
				width, err = terminalWidth()
				if err != nil {
					return err
				}
			}

			feed := breakpoint.NewMediaFeed(cfg.Table())
			ctrl := sidebar.New(append(cfg.ControllerOptions(),
				sidebar.WithFeed(feed),
				sidebar.WithLogger(log),
			)...)
			defer ctrl.Close()
			cfg.Apply(ctrl)
			ctrl.SetResponsive(true)
			feed.Observe(width)

			printClassification(cmd.OutOrStdout(), width, feed.Current(), ctrl)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Width in columns (defaults to the terminal width)")

	return cmd
}

func terminalWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("detect terminal width (pass --width): %w", err)
	}
	return width, nil
}

func printClassification(w io.Writer, width int, bp breakpoint.Breakpoint, ctrl *sidebar.Controller) {
	fmt.Fprintf(w, "width:      %d\n", width)
	fmt.Fprintf(w, "breakpoint: %s (>= %d)\n", bp.Name, bp.Width)
	fmt.Fprintf(w, "tier:       %s\n", ctrl.Tier())
	fmt.Fprintf(w, "state:      %s\n", ctrl.State())
	fmt.Fprintf(w, "fixed:      %v\n", ctrl.Fixed())
	fmt.Fprintf(w, "classes:    %s\n", strings.Join(ctrl.Flags().Classes(), " "))
}
