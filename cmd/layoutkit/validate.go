package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(path) == "" {
				return fmt.Errorf("config file is required")
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d breakpoints, %d menu items)\n",
				path, cfg.Table().Len(), len(cfg.Menu))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to the configuration file")

	return cmd
}
