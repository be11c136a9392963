package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the client.
type Config struct {
	// Desktop is the injected hosting signal: true when running inside the desktop shell.
	Desktop bool
	// BaseURLOverride bypasses endpoint resolution when set (diagnostics only).
	BaseURLOverride string
	WatchInterval   Duration
	Log             LogConfig
	Metrics         MetricsConfig
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first; variables already set win.
func Load() Config {
	LoadDotEnv(defaultDotEnvFile)
	return Config{
		Desktop:         boolEnvOrDefault(envDesktop, false),
		BaseURLOverride: envOrDefault(envBaseURL, ""),
		WatchInterval:   durationEnvOrDefault(envWatchInterval, defaultWatchInterval),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// LoadDotEnv applies variables from the given files. Missing files are ignored.
func LoadDotEnv(paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	return godotenv.Load(paths...) == nil
}
