package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"logview/internal/api"
	"logview/internal/logs"
)

type scanEntry struct {
	api.LogFile
	Regular bool `json:"regular"`
	Latest  bool `json:"latest"`
}

type scanOutput struct {
	Directory string      `json:"directory"`
	Entries   []scanEntry `json:"entries"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the entries of the log directory and mark the newest file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := logDirFor(cfg, dir)
			entries, err := logs.Scan(target, ctx.commandLogger(cfg))
			if err != nil {
				return err
			}
			latest, found := logs.SelectLatest(entries)

			output := scanOutput{Directory: target, Entries: make([]scanEntry, 0, len(entries))}
			for _, entry := range entries {
				output.Entries = append(output.Entries, scanEntry{
					LogFile: *logs.EntryFile(entry),
					Regular: entry.Regular,
					Latest:  found && entry.Path == latest.Path,
				})
			}

			if jsonOutput {
				return writeJSON(cmd, output)
			}
			out := cmd.OutOrStdout()
			if len(output.Entries) == 0 {
				fmt.Fprintf(out, "%s: %s\n", target, emptyMessage)
				return nil
			}
			fmt.Fprintln(out, renderScanTable(output.Entries))
			if !found {
				fmt.Fprintln(out, emptyMessage)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Scan this directory instead of paths.log_dir")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print entries as JSON")
	return cmd
}

func renderScanTable(entries []scanEntry) string {
	printer := message.NewPrinter(language.English)
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		marker := ""
		if entry.Latest {
			marker = "*"
		}
		kind := "other"
		if entry.Regular {
			kind = "file"
		}
		rows = append(rows, []string{
			marker,
			entry.Name,
			kind,
			formatSize(printer, entry.Size),
			entry.ModifiedAt,
		})
	}
	return renderTable(
		[]string{"", "Name", "Type", "Size", "Modified"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// formatSize renders byte counts with grouping, switching to binary units
// from 1 KiB up.
func formatSize(printer *message.Printer, size int64) string {
	const unit = 1024
	if size < unit {
		return printer.Sprintf("%d B", size)
	}
	units := []string{"KiB", "MiB", "GiB", "TiB"}
	value := float64(size) / unit
	idx := 0
	for value >= unit && idx < len(units)-1 {
		value /= unit
		idx++
	}
	return printer.Sprintf("%.1f %s", value, units[idx])
}
