package timecode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimestamp reports timestamp text that cannot be interpreted as a
// time offset.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// timestampPattern accepts HH:MM:SS[.fff] and MM:SS[.fff]; hours are optional.
var timestampPattern = regexp.MustCompile(`^(?:(\d+):)?(\d+):(\d+(?:\.\d+)?)$`)

// ParseSeconds converts a timestamp into seconds. Minutes and seconds must be
// below 60 on the strict path. When the strict pattern does not match, a
// lenient fallback accepts exactly three colon-separated numeric fields so
// minor formatting drift in hand-written chapter files does not abort a run.
func ParseSeconds(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	match := timestampPattern.FindStringSubmatch(trimmed)
	if match == nil {
		if seconds, ok := parseLenient(trimmed); ok {
			return seconds, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}

	hours := 0.0
	if match[1] != "" {
		hours, _ = strconv.ParseFloat(match[1], 64)
	}
	minutes, _ := strconv.ParseFloat(match[2], 64)
	seconds, _ := strconv.ParseFloat(match[3], 64)

	if minutes >= 60 {
		return 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTimestamp, text)
	}
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: seconds out of range in %q", ErrInvalidTimestamp, text)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

func parseLenient(text string) (float64, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, false
	}
	values := make([]float64, 0, 3)
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		values = append(values, value)
	}
	return values[0]*3600 + values[1]*60 + values[2], true
}

// FormatSeconds renders a non-negative seconds value as zero-padded HH:MM:SS.
// With fractional set, the seconds field carries three decimal digits; without
// it, the seconds field is truncated to a whole number.
func FormatSeconds(seconds float64, fractional bool) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := math.Mod(seconds, 60)
	if fractional {
		return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, int(secs))
}
