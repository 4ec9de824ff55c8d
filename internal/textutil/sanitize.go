package textutil

import (
	"regexp"
	"strings"
)

const maxFileNameRunes = 200

var (
	unsafeFileNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	underscoreRuns      = regexp.MustCompile(`_+`)
)

// SafeFileName converts a chapter title into a filesystem-safe file name.
// Unsafe characters become underscores, runs of underscores collapse to one,
// surrounding dots and spaces are trimmed, and the result is capped at 200
// runes. An empty result falls back to "untitled".
func SafeFileName(name string) string {
	safe := unsafeFileNameChars.ReplaceAllString(name, "_")
	safe = underscoreRuns.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, ". ")

	if runes := []rune(safe); len(runes) > maxFileNameRunes {
		safe = strings.TrimRight(string(runes[:maxFileNameRunes]), ". ")
	}

	if safe == "" {
		return "untitled"
	}
	return safe
}
