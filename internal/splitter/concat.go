package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"chapsplit/internal/chapters"
	"chapsplit/internal/logging"
	"chapsplit/internal/media/ffmpeg"
	"chapsplit/internal/plan"
)

// Concat losslessly extracts every kept interval, merges them into one
// continuous output file, and regenerates an annotation file describing the
// gap-free timeline. Unlike Split, any stage failure is fatal for the whole
// operation; the temporary segments and manifest are removed on every exit
// path.
func (s *Supervisor) Concat(ctx context.Context, job Job, outputPath, annotationPath string) error {
	if len(job.Intervals) == 0 {
		return chapters.ErrNoChapters
	}

	workDir := filepath.Join(os.TempDir(), "chapsplit-concat-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create concat work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	spans := measure(job.Intervals)
	agg := newAggregate(totalPlanned(spans), s.progress)

	segmentExt := filepath.Ext(outputPath)
	if segmentExt == "" {
		segmentExt = OutputExt
	}

	segments := make([]string, 0, len(job.Intervals))
	for i, interval := range job.Intervals {
		sp := spans[i]
		if sp.err != nil {
			return fmt.Errorf("chapter %q: %w", interval.Title, sp.err)
		}
		if sp.duration <= 0 {
			return fmt.Errorf("chapter %q: non-positive duration (%s to %s)", interval.Title, interval.Start, interval.End)
		}

		segmentPath := filepath.Join(workDir, fmt.Sprintf("segment_%03d%s", i+1, segmentExt))
		s.logger.Info("extracting chapter",
			logging.Int(logging.FieldChapter, i+1),
			logging.Int(logging.FieldChapterCount, len(job.Intervals)),
			logging.String(logging.FieldTitle, interval.Title))

		err := s.client.Run(ctx, plan.ExtractArgs(job.InputPath, segmentPath, sp.start, sp.duration), func(update ffmpeg.ProgressUpdate) {
			agg.observe(update.OutTimeSeconds, sp.duration)
		})
		if err != nil {
			return fmt.Errorf("extract chapter %q: %w", interval.Title, err)
		}
		agg.advance(sp.duration)
		segments = append(segments, segmentPath)
	}

	manifestPath := filepath.Join(workDir, "segments.txt")
	if err := writeManifest(manifestPath, segments); err != nil {
		return err
	}

	s.logger.Info("merging chapters",
		logging.Int("segments", len(segments)),
		logging.String("output", outputPath))
	if err := s.client.Run(ctx, plan.ConcatArgs(manifestPath, outputPath), nil); err != nil {
		return fmt.Errorf("concatenate chapters: %w", err)
	}

	if annotationPath != "" {
		if err := chapters.WriteConcatAnnotations(annotationPath, job.Intervals); err != nil {
			return fmt.Errorf("write concat chapter file: %w", err)
		}
		s.logger.Info("wrote concat chapter file", logging.String("path", annotationPath))
	}
	return nil
}

// writeManifest lists the extracted segments for ffmpeg's concat demuxer,
// one `file '<path>'` line per segment in playback order.
func writeManifest(path string, segments []string) error {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(segment, "'", `'\''`))
		b.WriteString("'\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	return nil
}
