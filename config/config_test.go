package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TMDB: TMDBConfig{
				BaseURL: "https://api.themoviedb.org/3",
				APIKey:  "valid-api-key",
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  api_key: abc123\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.TMDB.APIKey)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  api_key: abc\nlogging:\n  level: loud\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestStatePath(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Path: "/tmp/custom.db"}}
	got, err := cfg.StatePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", got)

	cfg.Storage.Path = ""
	got, err = cfg.StatePath()
	require.NoError(t, err)
	assert.Contains(t, got, filepath.Join(".reelscout", "state.db"))
}
