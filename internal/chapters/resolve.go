package chapters

import (
	"errors"

	"chapsplit/internal/timecode"
)

// ErrNoChapters reports an annotation file that resolved to zero usable
// chapters.
var ErrNoChapters = errors.New("no chapters found")

// Interval is a named time span derived from two consecutive boundaries.
// Start and End keep the raw timestamp text; nothing here guarantees that
// End is after Start, so consumers must reject non-positive durations.
type Interval struct {
	Start string
	End   string
	Title string
}

// DurationSeconds returns End minus Start. Negative results are possible when
// the annotation file is unsorted.
func (iv Interval) DurationSeconds() (float64, error) {
	start, err := timecode.ParseSeconds(iv.Start)
	if err != nil {
		return 0, err
	}
	end, err := timecode.ParseSeconds(iv.End)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// StartSeconds returns the parsed start boundary.
func (iv Interval) StartSeconds() (float64, error) {
	return timecode.ParseSeconds(iv.Start)
}

// Resolve turns the entry sequence into intervals. Each entry ends where the
// next entry in file order begins; the final entry ends at the total media
// duration. Excluded entries participate in that boundary sequence, so their
// timestamp terminates the preceding kept chapter, but they are never emitted
// as intervals of their own.
func Resolve(entries []Entry, totalDurationSeconds float64) ([]Interval, error) {
	var intervals []Interval
	for i, entry := range entries {
		if entry.Excluded {
			continue
		}
		end := timecode.FormatSeconds(totalDurationSeconds, false)
		if i+1 < len(entries) {
			end = entries[i+1].Timestamp
		}
		intervals = append(intervals, Interval{
			Start: entry.Timestamp,
			End:   end,
			Title: entry.Title,
		})
	}
	if len(intervals) == 0 {
		return nil, ErrNoChapters
	}
	return intervals, nil
}
