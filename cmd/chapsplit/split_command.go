package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"chapsplit/internal/config"
	"chapsplit/internal/encoder"
	"chapsplit/internal/media/ffmpeg"
	"chapsplit/internal/splitter"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir    string
		videoCodec   string
		videoBitrate int
		audioCodec   string
		audioBitrate int
		accurate     bool
		hwaccel      string
	)

	cmd := &cobra.Command{
		Use:   "split VIDEO [CHAPTERS]",
		Short: "Split a video into one file per chapter",
		Long: `Split a video into one file per chapter.

CHAPTERS is a text file with one "TIMESTAMP TITLE" line per chapter; it
defaults to the video's name with a .txt extension. Chapters whose title
starts with -- mark material to drop: they terminate the preceding chapter
but produce no output file.`,
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

			dir := outputDir
			if dir == "" {
				dir = stem(inputs.videoPath) + "_chapters"
			}
			dir, err = config.ExpandPath(dir)
			if err != nil {
				return err
			}
			release, err := acquireRunLock(dir)
			if err != nil {
				return err
			}
			defer release()

			client := ffmpeg.NewCLI(ffmpeg.WithBinary(inputs.cfg.FFmpegBinary()))

			hwValue := inputs.cfg.Hwaccel.Mode
			if cmd.Flags().Changed("hwaccel") {
				hwValue = hwaccel
			}
			mode, name, err := encoder.ParseMode(hwValue)
			if err != nil {
				return err
			}
			enc := encoder.NewSelector(client, inputs.logger).Resolve(cmd.Context(), mode, name)

			if videoCodec == "" {
				videoCodec = inputs.cfg.Video.Codec
			}
			if videoBitrate <= 0 {
				videoBitrate = inputs.videoBitrateKbps
			}
			if audioCodec == "" {
				audioCodec = inputs.cfg.Audio.Codec
			}
			if audioBitrate <= 0 {
				audioBitrate = inputs.cfg.Audio.BitrateKbps
			}

			progress, finish := newProgressBar(cmd.OutOrStdout(), "splitting")
			sup := splitter.New(client, inputs.logger, progress)
			report, err := sup.Split(cmd.Context(), splitter.Job{
				InputPath:        inputs.videoPath,
				OutputDir:        dir,
				Intervals:        inputs.intervals,
				Encoder:          enc,
				VideoCodec:       videoCodec,
				VideoBitrateKbps: videoBitrate,
				AudioCodec:       audioCodec,
				AudioBitrateKbps: audioBitrate,
				Accurate:         accurate,
			})
			finish()
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(report.Results))
			for _, result := range report.Results {
				status := "ok"
				if result.Err != nil {
					status = fmt.Sprintf("failed: %v", result.Err)
				}
				rows = append(rows, table.Row{result.Index, result.Title, result.OutputPath, status})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.Row{"#", "Chapter", "Output", "Status"}, rows))

			if failed := report.Failed(); len(failed) > 0 {
				return fmt.Errorf("%d of %d chapters failed", len(failed), len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for chapter files (default: <video>_chapters)")
	cmd.Flags().StringVar(&videoCodec, "video-codec", "", "Video codec, or \"copy\" (default from config)")
	cmd.Flags().IntVar(&videoBitrate, "video-bitrate", 0, "Video bitrate in kbps (default: detect from the source)")
	cmd.Flags().StringVar(&audioCodec, "audio-codec", "", "Audio codec, or \"copy\" (default from config)")
	cmd.Flags().IntVar(&audioBitrate, "audio-bitrate", 0, "Audio bitrate in kbps (default from config)")
	cmd.Flags().BoolVar(&accurate, "accurate", false, "Frame-exact cuts (slower; re-encodes when copying)")
	cmd.Flags().StringVar(&hwaccel, "hwaccel", "", "Hardware encoder: auto, off, or an accelerator name")

	return cmd
}
