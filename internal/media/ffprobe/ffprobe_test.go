package ffprobe

import (
	"errors"
	"testing"
)

func TestRequireDuration(t *testing.T) {
	result := Result{Format: Format{Duration: "123.45"}}
	duration, err := result.RequireDuration()
	if err != nil {
		t.Fatalf("RequireDuration: %v", err)
	}
	if duration != 123.45 {
		t.Fatalf("duration = %v, want 123.45", duration)
	}
}

func TestRequireDurationRejectsMissingOrInvalid(t *testing.T) {
	for _, value := range []string{"", "bad", "0", "-3"} {
		result := Result{Format: Format{Duration: value}}
		if _, err := result.RequireDuration(); !errors.Is(err, ErrDurationQuery) {
			t.Fatalf("duration %q: expected ErrDurationQuery, got %v", value, err)
		}
	}
}

func TestVideoBitRateKbps(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio", BitRate: "192000"},
			{CodecType: "video", BitRate: "5000000"},
		},
	}
	kbps, ok := result.VideoBitRateKbps()
	if !ok || kbps != 5000 {
		t.Fatalf("VideoBitRateKbps = %d, %v; want 5000, true", kbps, ok)
	}

	noRate := Result{Streams: []Stream{{CodecType: "video", BitRate: ""}}}
	if _, ok := noRate.VideoBitRateKbps(); ok {
		t.Fatalf("expected no bitrate for empty field")
	}

	noVideo := Result{Streams: []Stream{{CodecType: "audio", BitRate: "192000"}}}
	if _, ok := noVideo.VideoBitRateKbps(); ok {
		t.Fatalf("expected no bitrate without a video stream")
	}
}
