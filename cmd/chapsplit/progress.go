package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"chapsplit/internal/splitter"
)

// newProgressBar returns a splitter progress callback backed by a terminal
// progress bar, plus a finish func the caller must invoke when the run ends.
// Off a TTY both are inert so piped output stays clean.
func newProgressBar(out io.Writer, description string) (splitter.ProgressFunc, func()) {
	file, ok := out.(*os.File)
	if !ok || !isTerminal(file.Fd()) {
		return nil, func() {}
	}

	var bar *progressbar.ProgressBar
	callback := func(elapsedSeconds, totalSeconds float64) {
		if bar == nil {
			// Track milliseconds so short chapters still move the bar.
			bar = progressbar.NewOptions64(int64(totalSeconds*1000),
				progressbar.OptionSetDescription(description),
				progressbar.OptionSetWriter(file),
				progressbar.OptionSetPredictTime(true),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set64(int64(elapsedSeconds * 1000))
	}
	finish := func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}
	return callback, finish
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
