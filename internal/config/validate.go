package config

import (
	"errors"
	"fmt"

	"chapsplit/internal/encoder"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateHwaccel(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateVideo() error {
	if c.Video.Codec == "" {
		return errors.New("video.codec must be set")
	}
	if c.Video.BitrateKbps < 0 {
		return errors.New("video.bitrate_kbps must be >= 0 (0 detects from the source)")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if c.Audio.Codec == "" {
		return errors.New("audio.codec must be set")
	}
	if c.Audio.BitrateKbps <= 0 {
		return errors.New("audio.bitrate_kbps must be positive")
	}
	return nil
}

func (c *Config) validateHwaccel() error {
	if _, _, err := encoder.ParseMode(c.Hwaccel.Mode); err != nil {
		return fmt.Errorf("hwaccel.mode: %w", err)
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}
