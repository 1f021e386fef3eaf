package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/sidebar"
	"github.com/alexisbeaulieu97/layoutkit/internal/theme"
	"github.com/alexisbeaulieu97/layoutkit/internal/tui/layout"
)

type demoOptions struct {
	configPath string
	watch      bool
	responsive bool
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive sidebar demo",
		Long: `Launch a full-screen demo with a sidebar next to a content pane. Resize the
terminal to watch the sidebar respond to breakpoints.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && opts.configPath == "" {
				return fmt.Errorf("--watch requires --config")
			}
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("responsive") {
				cfg.Sidebar.Responsive = opts.responsive
			}

			// the terminal belongs to the program; log only to a file
			log, closeLog, err := flags.newLogger(cmd, cfg, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			return runDemo(cmd.Context(), cfg, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the configuration file when it changes")
	cmd.Flags().BoolVar(&opts.responsive, "responsive", false, "Follow terminal width breakpoints")

	return cmd
}

// buildModel wires a controller, feed and bus from cfg into a layout model.
func buildModel(cfg *config.Config, log *logger.Logger, reloads <-chan *config.Config) layout.Model {
	feed := breakpoint.NewMediaFeed(cfg.Table())
	bus := sidebar.NewBus(log)
	ctrl := sidebar.New(append(cfg.ControllerOptions(),
		sidebar.WithFeed(feed),
		sidebar.WithBus(bus),
		sidebar.WithLogger(log),
	)...)
	cfg.Apply(ctrl)

	return layout.NewModel(layout.Deps{
		Controller: ctrl,
		Feed:       feed,
		Bus:        bus,
		Menu:       layout.NewMenu(layout.EntriesFromConfig(cfg.Menu)),
		Theme:      theme.DefaultTheme(),
		Logger:     log,
		Config:     cfg,
		Reloads:    reloads,
	})
}

func runDemo(ctx context.Context, cfg *config.Config, opts demoOptions, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reloads <-chan *config.Config
	if opts.watch {
		watcher := config.NewWatcher(opts.configPath, log)
		reloads = watcher.Updates()
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error(err, "config watcher stopped")
			}
		}()
	}

	m := buildModel(cfg, log, reloads)
	defer m.Controller().Close()
	log.With("sidebar_id", m.Controller().ID(), "version", version).Info("launching demo")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}

	log.Info("demo closed")
	return nil
}
