package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// ErrDurationQuery reports that ffprobe produced no usable duration. Nothing
// downstream can plan chapter boundaries without the total duration, so
// callers treat this as fatal.
var ErrDurationQuery = errors.New("duration query failed")

// Result represents the parsed output of an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	BitRate   string `json:"bit_rate"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// Duration runs ffprobe and returns the container duration in seconds,
// wrapping every failure mode in ErrDurationQuery.
func Duration(ctx context.Context, binary string, path string) (float64, error) {
	result, err := Inspect(ctx, binary, path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDurationQuery, err)
	}
	return result.RequireDuration()
}

// RequireDuration returns the container duration in seconds, or
// ErrDurationQuery when ffprobe reported none.
func (r Result) RequireDuration() (float64, error) {
	duration := parseFloat(r.Format.Duration)
	if math.IsNaN(duration) || duration <= 0 {
		return 0, fmt.Errorf("%w: container reported duration %q", ErrDurationQuery, r.Format.Duration)
	}
	return duration, nil
}

// VideoBitRateKbps returns the first video stream's bitrate in kbps. The
// second return value is false when no video stream reports one.
func (r Result) VideoBitRateKbps() (int, bool) {
	for _, stream := range r.Streams {
		if !strings.EqualFold(stream.CodecType, "video") {
			continue
		}
		rate := parseFloat(stream.BitRate)
		if math.IsNaN(rate) || rate <= 0 {
			return 0, false
		}
		return int(rate / 1000), true
	}
	return 0, false
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return math.NaN()
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
