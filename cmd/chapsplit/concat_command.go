package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"chapsplit/internal/config"
	"chapsplit/internal/media/ffmpeg"
	"chapsplit/internal/splitter"
)

func newConcatCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "concat VIDEO [CHAPTERS]",
		Short: "Remove excluded chapters and rejoin the rest into one file",
		Long: `Remove excluded chapters and rejoin the rest into one file.

Every kept chapter is extracted losslessly (stream copy) and the segments
are merged with ffmpeg's concat demuxer, so no re-encoding happens. A new
chapter file describing the gap-free timeline is written next to the
output.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapterArg := ""
			if len(args) > 1 {
				chapterArg = args[1]
			}
			inputs, err := prepareRun(cmd.Context(), ctx, args[0], chapterArg)
			if err != nil {
				return err
			}

			output := outputPath
			if output == "" {
				ext := filepath.Ext(inputs.videoPath)
				output = stem(inputs.videoPath) + "_edited" + ext
			}
			output, err = config.ExpandPath(output)
			if err != nil {
				return err
			}
			annotationPath := stem(output) + ".txt"

			release, err := acquireRunLock(filepath.Dir(output))
			if err != nil {
				return err
			}
			defer release()

			client := ffmpeg.NewCLI(ffmpeg.WithBinary(inputs.cfg.FFmpegBinary()))
			progress, finish := newProgressBar(cmd.OutOrStdout(), "extracting")
			sup := splitter.New(client, inputs.logger, progress)
			err = sup.Concat(cmd.Context(), splitter.Job{
				InputPath: inputs.videoPath,
				Intervals: inputs.intervals,
			}, output, annotationPath)
			finish()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", output)
			fmt.Fprintf(out, "Wrote %s\n", annotationPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: <video>_edited.<ext>)")

	return cmd
}
