package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCodecs()
	c.normalizeHwaccel()
	c.normalizeTools()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCodecs() {
	c.Video.Codec = strings.ToLower(strings.TrimSpace(c.Video.Codec))
	if c.Video.Codec == "" {
		c.Video.Codec = defaultVideoCodec
	}
	c.Audio.Codec = strings.ToLower(strings.TrimSpace(c.Audio.Codec))
	if c.Audio.Codec == "" {
		c.Audio.Codec = defaultAudioCodec
	}
	if c.Audio.BitrateKbps <= 0 {
		c.Audio.BitrateKbps = defaultAudioBitrateKbps
	}
}

func (c *Config) normalizeHwaccel() {
	c.Hwaccel.Mode = strings.ToLower(strings.TrimSpace(c.Hwaccel.Mode))
	if c.Hwaccel.Mode == "" {
		c.Hwaccel.Mode = defaultHwaccelMode
	}
}

func (c *Config) normalizeTools() {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		if value, ok := os.LookupEnv("CHAPSPLIT_FFMPEG"); ok {
			c.Tools.FFmpeg = strings.TrimSpace(value)
		}
	}
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFprobe == "" {
		if value, ok := os.LookupEnv("CHAPSPLIT_FFPROBE"); ok {
			c.Tools.FFprobe = strings.TrimSpace(value)
		}
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
