package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logview/internal/api"
	"logview/internal/logs"
)

const emptyMessage = "No log entries available"

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var jsonOutput bool
	var remote bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the lines of the newest log file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var resp api.LogsResponse
			if remote {
				if strings.TrimSpace(dir) != "" {
					return errors.New("--dir cannot be combined with --remote; the server always reads its configured directory")
				}
				client, err := logs.NewClient(cfg.Server.Bind)
				if err != nil {
					return fmt.Errorf("build client: %w", err)
				}
				resp, err = client.Fetch(cmd.Context())
				if err != nil {
					if logs.IsAPIUnavailable(err) {
						return fmt.Errorf("connect to logview at %s: %w (is `logview serve` running?)", cfg.Server.Bind, err)
					}
					return fmt.Errorf("fetch logs: %w", err)
				}
			} else {
				fetcher := logs.NewFetcher(cfg.Paths.LogDir, ctx.commandLogger(cfg))
				resp = fetcher.Fetch(cmd.Context(), dir).Response("")
			}

			if jsonOutput {
				if err := writeJSON(cmd, resp); err != nil {
					return err
				}
				return responseError(resp)
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Read this directory instead of paths.log_dir")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the fetch result as JSON")
	cmd.Flags().BoolVar(&remote, "remote", false, "Fetch through the running server's /api/logs")
	return cmd
}

func printResponse(cmd *cobra.Command, resp api.LogsResponse) error {
	out := cmd.OutOrStdout()
	switch resp.Status {
	case string(logs.StatusOK):
		for _, line := range resp.Lines {
			fmt.Fprintln(out, line)
		}
		return nil
	case string(logs.StatusEmpty):
		fmt.Fprintln(out, emptyMessage)
		return nil
	default:
		return responseError(resp)
	}
}

// responseError turns an error payload into a command error so the exit
// status is non-zero.
func responseError(resp api.LogsResponse) error {
	if resp.OK() {
		return nil
	}
	if resp.Error == nil {
		return fmt.Errorf("fetch logs: unexpected status %q", resp.Status)
	}
	return fmt.Errorf("fetch logs (%s): %s", resp.Error.Kind, resp.Error.Message)
}
