package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logview/internal/daemonrun"
	"logview/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var logLevel string
	var development bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the logview web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !logging.ValidLevel(logLevel) {
				return fmt.Errorf("invalid --log-level %q", logLevel)
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{
				LogLevel:    strings.ToLower(strings.TrimSpace(logLevel)),
				Development: development,
				Bind:        bind,
			})
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides logging.level)")
	cmd.Flags().BoolVar(&development, "dev", false, "Include caller locations in log output")
	return cmd
}
