package ffmpeg

import (
	"math"
	"testing"
)

func TestParseProgressLine(t *testing.T) {
	cases := []struct {
		line string
		want float64
		ok   bool
	}{
		{"out_time_ms=12000000", 12, true},
		{"out_time_ms=500000", 0.5, true},
		{"  out_time_ms=1000000  ", 1, true},
		{"frame=42", 0, false},
		{"out_time=00:00:12.000000", 0, false},
		{"out_time_ms=notanumber", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseProgressLine(tc.line)
		if ok != tc.ok {
			t.Fatalf("ParseProgressLine(%q) ok = %v, want %v", tc.line, ok, tc.ok)
		}
		if ok && math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("ParseProgressLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestTailTruncatesLongOutput(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}
	got := tail(string(long))
	if len(got) != tailLimit+3 {
		t.Fatalf("tail length = %d, want %d", len(got), tailLimit+3)
	}
	if got[:3] != "..." {
		t.Fatalf("expected ellipsis prefix, got %q", got[:8])
	}
}
