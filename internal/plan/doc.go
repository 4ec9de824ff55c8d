// Package plan turns a chapter interval plus encoder and codec settings into
// a concrete ffmpeg argument list. Everything here is pure argument
// synthesis; launching the process belongs to the splitter.
package plan
