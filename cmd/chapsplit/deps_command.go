package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"chapsplit/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that ffmpeg and ffprobe are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(cfg)
			rows := make([]table.Row, 0, len(statuses))
			for _, status := range statuses {
				rows = append(rows, table.Row{status.Name, status.Command, yesNo(status.Available), status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.Row{"Tool", "Command", "Found", "Detail"}, rows))

			if missing := deps.Missing(statuses); len(missing) > 0 {
				return errors.New("required tools are missing")
			}
			return nil
		},
	}
}
