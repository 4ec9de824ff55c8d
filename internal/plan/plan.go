package plan

import (
	"strconv"

	"chapsplit/internal/encoder"
)

// Stream copy cannot honor frame-exact boundaries, so accurate cuts of a
// copy-mode run re-encode with a fixed software encoder at a fixed quality.
const (
	fallbackEncoder = "libx264"
	fallbackCRF     = "18"
)

// Plan captures everything needed to synthesize one ffmpeg invocation for a
// chapter extraction. It is a pure value: equal plans produce equal argument
// lists and building one has no side effects.
type Plan struct {
	InputPath        string
	OutputPath       string
	StartSeconds     float64
	DurationSeconds  float64
	Encoder          encoder.Config
	VideoCodec       string
	VideoBitrateKbps int
	AudioCodec       string
	AudioBitrateKbps int
	Accurate         bool
}

// Args synthesizes the full ffmpeg argument list for this plan.
//
// Seek placement decides the cut semantics: accurate mode seeks after the
// input (decode-then-discard, frame exact), fast mode seeks before it
// (keyframe jump). The duration argument is emitted only for strictly
// positive durations, and every output is tagged for progressive playback.
func (p Plan) Args() []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-progress", "pipe:1"}

	seek := []string{"-ss", formatSeconds(p.StartSeconds)}
	if p.Accurate {
		args = append(args, "-i", p.InputPath)
		args = append(args, seek...)
	} else {
		args = append(args, seek...)
		args = append(args, "-i", p.InputPath)
	}

	args = append(args, p.videoArgs()...)
	args = append(args, p.audioArgs()...)
	args = append(args, "-movflags", "+faststart")

	if p.DurationSeconds > 0 {
		args = append(args, "-t", formatSeconds(p.DurationSeconds))
	}

	return append(args, p.OutputPath)
}

func (p Plan) videoArgs() []string {
	copyMode := p.VideoCodec == "copy"
	switch {
	case !p.Encoder.IsNull() && (p.Accurate || !copyMode):
		args := []string{"-c:v", p.Encoder.EncoderID}
		args = append(args, p.Encoder.ExtraArgs...)
		return append(args, "-b:v", bitrate(p.VideoBitrateKbps))
	case p.Accurate && copyMode:
		return []string{"-c:v", fallbackEncoder, "-crf", fallbackCRF}
	case copyMode:
		return []string{"-c:v", "copy"}
	default:
		return []string{"-c:v", p.VideoCodec, "-b:v", bitrate(p.VideoBitrateKbps)}
	}
}

func (p Plan) audioArgs() []string {
	if p.AudioCodec == "copy" {
		return []string{"-c:a", "copy"}
	}
	return []string{"-c:a", p.AudioCodec, "-b:a", bitrate(p.AudioBitrateKbps)}
}

// ExtractArgs builds the lossless per-chapter extraction the concat path
// uses: fast seek, stream copy, timestamps normalized so segments start at
// zero.
func ExtractArgs(inputPath, outputPath string, startSeconds, durationSeconds float64) []string {
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error", "-progress", "pipe:1",
		"-ss", formatSeconds(startSeconds),
		"-i", inputPath,
	}
	if durationSeconds > 0 {
		args = append(args, "-t", formatSeconds(durationSeconds))
	}
	args = append(args, "-c", "copy", "-avoid_negative_ts", "make_zero")
	return append(args, outputPath)
}

// ConcatArgs builds the single concat-demuxer merge over a manifest of
// extracted segments.
func ConcatArgs(manifestPath, outputPath string) []string {
	return []string{
		"-y", "-hide_banner", "-loglevel", "error", "-progress", "pipe:1",
		"-f", "concat", "-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		"-movflags", "+faststart",
		outputPath,
	}
}

func bitrate(kbps int) string {
	return strconv.Itoa(kbps) + "k"
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
