package config

const (
	defaultWidth     = 1024
	defaultHeight    = 257
	defaultJobs      = 1
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultSox       = "sox"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Render: Render{
			Width:  defaultWidth,
			Height: defaultHeight,
			Jobs:   defaultJobs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
