package config

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Language string `mapstructure:"language"`
}

// StorageConfig controls where favorites and session state are persisted.
// An empty path resolves under the user home directory at startup.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
