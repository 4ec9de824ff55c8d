// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns a parsed Result
//   - Duration: shorthand for the total-duration query a run starts with
//
// Helper methods on Result expose the duration and the source video bitrate
// used for bitrate auto-detection.
package ffprobe
