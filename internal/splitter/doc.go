// Package splitter supervises ffmpeg runs that cut a single input file into
// per-chapter outputs, or extract and re-join the kept chapters into one
// continuous file. Execution is strictly sequential: one ffmpeg process at a
// time, with per-chapter progress folded into a single run-wide measure.
package splitter
