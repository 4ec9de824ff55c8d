package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, _, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if exists {
		t.Fatal("Load() reported a config file that does not exist")
	}
	if cfg.Video.Codec != "copy" || cfg.Audio.Codec != "copy" {
		t.Fatalf("default codecs = %q/%q, want copy/copy", cfg.Video.Codec, cfg.Audio.Codec)
	}
	if cfg.Video.BitrateKbps != 0 {
		t.Fatalf("default video bitrate = %d, want 0 (auto-detect)", cfg.Video.BitrateKbps)
	}
	if cfg.Audio.BitrateKbps != 192 {
		t.Fatalf("default audio bitrate = %d, want 192", cfg.Audio.BitrateKbps)
	}
	if cfg.Hwaccel.Mode != "auto" {
		t.Fatalf("default hwaccel mode = %q, want auto", cfg.Hwaccel.Mode)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" {
		t.Fatalf("default tools = %q/%q", cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("log dir %q not expanded to an absolute path", cfg.Paths.LogDir)
	}
}

func TestLoadReadsAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
log_dir = "~/logs"

[video]
codec = "LibX264"
bitrate_kbps = 6000

[hwaccel]
mode = "NVENC"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("Load() resolved %q exists=%v", resolved, exists)
	}
	if cfg.Video.Codec != "libx264" {
		t.Fatalf("video codec = %q, want lowercased libx264", cfg.Video.Codec)
	}
	if cfg.Video.BitrateKbps != 6000 {
		t.Fatalf("video bitrate = %d, want 6000", cfg.Video.BitrateKbps)
	}
	if cfg.Hwaccel.Mode != "nvenc" {
		t.Fatalf("hwaccel mode = %q, want nvenc", cfg.Hwaccel.Mode)
	}
	if want := filepath.Join(dir, "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("log dir = %q, want %q", cfg.Paths.LogDir, want)
	}
}

func TestLoadRejectsUnknownHwaccelMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[hwaccel]\nmode = \"warpdrive\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "hwaccel.mode") {
		t.Fatalf("Load() error = %v, want hwaccel.mode validation failure", err)
	}
}

func TestLoadRejectsNegativeVideoBitrate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[video]\nbitrate_kbps = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("Load() accepted a negative video bitrate")
	}
}

func TestToolsEnvironmentFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHAPSPLIT_FFMPEG", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("CHAPSPLIT_FFPROBE", "/opt/ffmpeg/bin/ffprobe")

	cfg, _, _, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FFmpegBinary() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg binary = %q, want env override", cfg.FFmpegBinary())
	}
	if cfg.FFprobeBinary() != "/opt/ffmpeg/bin/ffprobe" {
		t.Fatalf("ffprobe binary = %q, want env override", cfg.FFprobeBinary())
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/media/out")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if want := filepath.Join(home, "media", "out"); got != want {
		t.Fatalf("ExpandPath() = %q, want %q", got, want)
	}
}

func TestCreateSampleParsesCleanly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample() error = %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("Load(sample) exists=%v error = %v", exists, err)
	}
}
