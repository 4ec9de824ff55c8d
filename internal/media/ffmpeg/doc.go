// Package ffmpeg wraps the ffmpeg command line behind a narrow client
// interface: run a transcode while streaming its progress output, and probe a
// candidate hardware encoder against a synthetic source. The splitter core
// only sees the Client interface, so tests never spawn real processes.
package ffmpeg
