package deps

import (
	"os/exec"
	"strings"
)

var commandOutput = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output() //nolint:gosec
}

// versionBanner returns the first line of `<binary> -version`, the banner
// format both ffmpeg and ffprobe share. An empty string means the binary
// resolved but would not report a version.
func versionBanner(binary string) string {
	output, err := commandOutput(binary, "-version")
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(output), "\n")
	return strings.TrimSpace(line)
}
