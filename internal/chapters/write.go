package chapters

import (
	"fmt"
	"os"
	"strings"

	"chapsplit/internal/timecode"
)

// WriteConcatAnnotations writes an annotation file describing the
// concatenated, gap-free timeline of the given intervals. Timestamps are the
// cumulative sum of interval durations with millisecond precision. The input
// is expected to contain kept chapters only, so the output carries no
// exclusion markers.
func WriteConcatAnnotations(path string, intervals []Interval) error {
	var b strings.Builder
	elapsed := 0.0
	for _, interval := range intervals {
		duration, err := interval.DurationSeconds()
		if err != nil {
			return fmt.Errorf("chapter %q: %w", interval.Title, err)
		}
		b.WriteString(timecode.FormatSeconds(elapsed, true))
		b.WriteByte(' ')
		b.WriteString(interval.Title)
		b.WriteByte('\n')
		elapsed += duration
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write chapter file: %w", err)
	}
	return nil
}
