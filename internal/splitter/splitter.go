package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chapsplit/internal/chapters"
	"chapsplit/internal/encoder"
	"chapsplit/internal/logging"
	"chapsplit/internal/media/ffmpeg"
	"chapsplit/internal/plan"
	"chapsplit/internal/textutil"
	"chapsplit/internal/timecode"
)

// OutputExt is the container extension for split chapter files.
const OutputExt = ".mp4"

// Job describes one split or concat run over a single input file.
type Job struct {
	InputPath        string
	OutputDir        string
	Intervals        []chapters.Interval
	Encoder          encoder.Config
	VideoCodec       string
	VideoBitrateKbps int
	AudioCodec       string
	AudioBitrateKbps int
	Accurate         bool
}

// ChapterResult records the outcome for one chapter.
type ChapterResult struct {
	Index      int // 1-based, matches the output file ordinal
	Title      string
	OutputPath string
	Err        error
}

// Report summarizes a run. One failed chapter never aborts the run, so a
// report can mix successes and failures; callers decide how loudly to
// surface the failed subset.
type Report struct {
	Results []ChapterResult
}

// Failed returns the results whose chapter did not complete.
func (r Report) Failed() []ChapterResult {
	var failed []ChapterResult
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

// Supervisor drives ffmpeg chapter by chapter, strictly one child process at
// a time, aggregating per-chapter progress into a single global measure.
type Supervisor struct {
	client   ffmpeg.Client
	logger   *slog.Logger
	progress ProgressFunc
}

// New constructs a supervisor. progress may be nil when no live progress
// display is wanted.
func New(client ffmpeg.Client, logger *slog.Logger, progress ProgressFunc) *Supervisor {
	return &Supervisor{
		client:   client,
		logger:   logging.NewComponentLogger(logger, "splitter"),
		progress: progress,
	}
}

// span is one interval measured into seconds. A span that failed to measure
// carries the parse error instead.
type span struct {
	start    float64
	duration float64
	err      error
}

func measure(intervals []chapters.Interval) []span {
	spans := make([]span, len(intervals))
	for i, interval := range intervals {
		start, err := timecode.ParseSeconds(interval.Start)
		if err != nil {
			spans[i].err = err
			continue
		}
		end, err := timecode.ParseSeconds(interval.End)
		if err != nil {
			spans[i].err = err
			continue
		}
		spans[i] = span{start: start, duration: end - start}
	}
	return spans
}

func totalPlanned(spans []span) float64 {
	total := 0.0
	for _, s := range spans {
		if s.err == nil && s.duration > 0 {
			total += s.duration
		}
	}
	return total
}

// Split extracts every interval into its own output file under
// job.OutputDir. Chapters whose boundaries cannot be measured, or whose
// duration is not strictly positive, are recorded as failures without
// spawning a process; every remaining chapter is attempted regardless of
// earlier failures.
func (s *Supervisor) Split(ctx context.Context, job Job) (Report, error) {
	if len(job.Intervals) == 0 {
		return Report{}, chapters.ErrNoChapters
	}
	if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create output directory: %w", err)
	}

	spans := measure(job.Intervals)
	agg := newAggregate(totalPlanned(spans), s.progress)

	report := Report{Results: make([]ChapterResult, 0, len(job.Intervals))}
	for i, interval := range job.Intervals {
		sp := spans[i]
		result := ChapterResult{
			Index:      i + 1,
			Title:      interval.Title,
			OutputPath: filepath.Join(job.OutputDir, chapterFileName(i+1, interval.Title)),
		}

		switch {
		case sp.err != nil:
			result.Err = sp.err
		case sp.duration <= 0:
			result.Err = fmt.Errorf("non-positive duration (%s to %s)", interval.Start, interval.End)
		default:
			s.logger.Info("splitting chapter",
				logging.Int(logging.FieldChapter, result.Index),
				logging.Int(logging.FieldChapterCount, len(job.Intervals)),
				logging.String(logging.FieldTitle, interval.Title))
			p := plan.Plan{
				InputPath:        job.InputPath,
				OutputPath:       result.OutputPath,
				StartSeconds:     sp.start,
				DurationSeconds:  sp.duration,
				Encoder:          job.Encoder,
				VideoCodec:       job.VideoCodec,
				VideoBitrateKbps: job.VideoBitrateKbps,
				AudioCodec:       job.AudioCodec,
				AudioBitrateKbps: job.AudioBitrateKbps,
				Accurate:         job.Accurate,
			}
			result.Err = s.client.Run(ctx, p.Args(), func(update ffmpeg.ProgressUpdate) {
				agg.observe(update.OutTimeSeconds, sp.duration)
			})
		}

		if result.Err != nil {
			s.logger.Error("chapter failed",
				logging.Int(logging.FieldChapter, result.Index),
				logging.String(logging.FieldTitle, interval.Title),
				logging.Error(result.Err))
		}

		agg.advance(sp.duration)
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func chapterFileName(ordinal int, title string) string {
	return fmt.Sprintf("%03d_%s%s", ordinal, textutil.SafeFileName(title), OutputExt)
}
