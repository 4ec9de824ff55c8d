// Package timecode converts between human-readable timestamps and seconds.
//
// The parse side understands HH:MM:SS and MM:SS with optional fractional
// seconds, plus a lenient colon-split fallback for slightly malformed input.
// The format side produces the zero-padded forms ffmpeg and chapter files
// expect. Round-tripping through the fractional form preserves millisecond
// precision.
package timecode
