package config

const (
	defaultDestDir            = "flac"
	defaultLogDir             = "~/.local/share/cueflac/logs"
	defaultHistoryDB          = "~/.local/share/cueflac/history.db"
	defaultSplitterBinary     = "shnsplit"
	defaultTagWriterBinary    = "metaflac"
	defaultFFmpegBinary       = "ffmpeg"
	defaultWatchSettleSeconds = 30
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DestDir:   defaultDestDir,
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Tools: Tools{
			Splitter:  defaultSplitterBinary,
			TagWriter: defaultTagWriterBinary,
			FFmpeg:    defaultFFmpegBinary,
		},
		Watch: Watch{
			SettleSeconds: defaultWatchSettleSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
