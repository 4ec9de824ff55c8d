package config

const (
	defaultLogDir           = "~/.local/share/chapsplit/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultVideoCodec       = "copy"
	defaultAudioCodec       = "copy"
	defaultAudioBitrateKbps = 192
	defaultHwaccelMode      = "auto"
	defaultFFmpegBinary     = "ffmpeg"
	defaultFFprobeBinary    = "ffprobe"
)

// Default returns a Config populated with repository defaults. A video
// bitrate of zero means "detect from the source".
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Video: Video{
			Codec: defaultVideoCodec,
		},
		Audio: Audio{
			Codec:       defaultAudioCodec,
			BitrateKbps: defaultAudioBitrateKbps,
		},
		Hwaccel: Hwaccel{
			Mode: defaultHwaccelMode,
		},
		// Tools stays empty here so normalize can consult the
		// CHAPSPLIT_FFMPEG / CHAPSPLIT_FFPROBE environment before
		// falling back to the bare binary names.
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
