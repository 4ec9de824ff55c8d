package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"chapsplit/internal/chapters"
	"chapsplit/internal/config"
	"chapsplit/internal/deps"
	"chapsplit/internal/media/ffprobe"
)

// fallbackVideoBitrateKbps applies when neither the configuration nor the
// source container reports a usable video bitrate.
const fallbackVideoBitrateKbps = 5000

// runInputs is everything a split or concat command needs after the shared
// preparation pass: validated paths, probed media facts, and the resolved
// chapter intervals.
type runInputs struct {
	cfg              *config.Config
	logger           *slog.Logger
	videoPath        string
	chapterPath      string
	intervals        []chapters.Interval
	totalSeconds     float64
	videoBitrateKbps int
}

func prepareRun(cmdCtx context.Context, ctx *commandContext, videoArg, chapterArg string) (*runInputs, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, err
	}

	videoPath, err := config.ExpandPath(videoArg)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(videoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("video file %s does not exist", videoPath)
		}
		return nil, fmt.Errorf("stat video file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a video file", videoPath)
	}

	chapterPath, err := resolveChapterPath(videoPath, chapterArg)
	if err != nil {
		return nil, err
	}

	if missing := deps.Missing(deps.Check(cfg)); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, status := range missing {
			names = append(names, status.Command)
		}
		return nil, fmt.Errorf("missing required tools: %s (run `chapsplit deps` for details)", strings.Join(names, ", "))
	}

	probed, err := ffprobe.Inspect(cmdCtx, cfg.FFprobeBinary(), videoPath)
	if err != nil {
		return nil, err
	}
	total, err := probed.RequireDuration()
	if err != nil {
		return nil, err
	}

	bitrate := cfg.Video.BitrateKbps
	if bitrate <= 0 {
		detected, ok := probed.VideoBitRateKbps()
		if ok {
			bitrate = detected
		} else {
			bitrate = fallbackVideoBitrateKbps
		}
	}

	entries, err := chapters.ParseFile(chapterPath)
	if err != nil {
		return nil, err
	}
	intervals, err := chapters.Resolve(entries, total)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, chapterPath)
	}

	return &runInputs{
		cfg:              cfg,
		logger:           logger,
		videoPath:        videoPath,
		chapterPath:      chapterPath,
		intervals:        intervals,
		totalSeconds:     total,
		videoBitrateKbps: bitrate,
	}, nil
}

// resolveChapterPath defaults to a .txt file with the video's stem when no
// chapter file is named explicitly.
func resolveChapterPath(videoPath, chapterArg string) (string, error) {
	path := strings.TrimSpace(chapterArg)
	if path == "" {
		path = stem(videoPath) + ".txt"
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("chapter file %s does not exist", expanded)
		}
		return "", fmt.Errorf("stat chapter file: %w", err)
	}
	return expanded, nil
}

// stem returns the path without its final extension.
func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// acquireRunLock takes an advisory lock scoped to the directory being written
// so two chapsplit runs cannot interleave output files. The returned release
// func is safe to call exactly once.
func acquireRunLock(dir string) (func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(dir, ".chapsplit.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another chapsplit run is already writing to %s", dir)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}, nil
}
