package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// ProgressUpdate carries one decoded progress sample from a running transcode.
type ProgressUpdate struct {
	OutTimeSeconds float64
}

// Client defines the ffmpeg operations the splitter core depends on. Tests
// substitute a fake so no real processes are spawned.
type Client interface {
	Run(ctx context.Context, args []string, progress func(ProgressUpdate)) error
	ProbeEncoder(ctx context.Context, encoderID string, extraArgs []string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line tool.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Run launches ffmpeg with the provided arguments and streams progress
// key=value lines from stdout until the process exits. Progress lines that do
// not carry an out_time_ms field are ignored. A non-zero exit is returned as
// an error annotated with the tail of stderr.
func (c *CLI) Run(ctx context.Context, args []string, progress func(ProgressUpdate)) error {
	if len(args) == 0 {
		return errors.New("ffmpeg run: empty argument list")
	}
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if progress == nil {
			continue
		}
		if seconds, ok := ParseProgressLine(scanner.Text()); ok {
			progress(ProgressUpdate{OutTimeSeconds: seconds})
		}
	}
	if err := scanner.Err(); err != nil {
		_ = cmd.Wait()
		return fmt.Errorf("read ffmpeg output: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		if detail := tail(stderr.String()); detail != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, detail)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// ProbeEncoder encodes a tiny synthetic clip with the candidate encoder and
// discards the result. A zero exit means the encoder is usable on this host;
// no persistent output is written either way.
func (c *CLI) ProbeEncoder(ctx context.Context, encoderID string, extraArgs []string) error {
	encoderID = strings.TrimSpace(encoderID)
	if encoderID == "" {
		return errors.New("ffmpeg probe: empty encoder id")
	}
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", encoderID,
	}
	args = append(args, extraArgs...)
	args = append(args, "-f", "null", "-")

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("probe %s: %w: %s", encoderID, err, tail(string(output)))
	}
	return nil
}

// ParseProgressLine extracts the elapsed output time from one -progress line.
// ffmpeg reports out_time_ms in microseconds despite the name.
func ParseProgressLine(line string) (float64, bool) {
	value, found := strings.CutPrefix(strings.TrimSpace(line), "out_time_ms=")
	if !found {
		return 0, false
	}
	micros, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(micros) / 1e6, true
}

const tailLimit = 512

func tail(output string) string {
	trimmed := strings.TrimSpace(output)
	if len(trimmed) > tailLimit {
		trimmed = "..." + trimmed[len(trimmed)-tailLimit:]
	}
	return trimmed
}

var _ Client = (*CLI)(nil)
