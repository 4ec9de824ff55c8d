package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"chapsplit/internal/timecode"
)

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters VIDEO [CHAPTERS]",
		Short: "Show the resolved chapter plan without splitting anything",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapterArg := ""
			if len(args) > 1 {
				chapterArg = args[1]
			}
			inputs, err := prepareRun(cmd.Context(), ctx, args[0], chapterArg)
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(inputs.intervals))
			for i, interval := range inputs.intervals {
				duration := "?"
				if seconds, err := interval.DurationSeconds(); err == nil {
					duration = timecode.FormatSeconds(seconds, true)
				}
				rows = append(rows, table.Row{i + 1, interval.Start, interval.End, duration, interval.Title})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(table.Row{"#", "Start", "End", "Duration", "Title"}, rows))
			fmt.Fprintf(out, "%d chapters over %s\n", len(inputs.intervals), timecode.FormatSeconds(inputs.totalSeconds, true))
			return nil
		},
	}
}
