package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultOwner, cfg.Owner)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, DefaultMaxPages, cfg.MaxPages)
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, DefaultBatchPause, cfg.BatchPause)
	assert.Empty(t, cfg.Token)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner: someone\nbatch_size: 3\nbatch_pause: 300ms\nlimit: 10\n"), 0o600))
	t.Setenv("PORTFOLIO_LIMIT", "20")
	t.Setenv("GITHUB_TOKEN", "from-env")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "someone", cfg.Owner)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Equal(t, 300*time.Millisecond, cfg.BatchPause)
	assert.Equal(t, 20, cfg.Limit)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, "from-env", cfg.Token)
}

func TestLoad_TokenFromConfigWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: from-file\n"), 0o600))
	t.Setenv("GITHUB_TOKEN", "from-env")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Token)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner: [unterminated\n"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(c *Config)
		expectedErr error
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "owner is required", mutate: func(c *Config) { c.Owner = "" }, expectedErr: ErrNoOwner},
		{name: "per_page above the API maximum", mutate: func(c *Config) { c.PerPage = 101 }, expectedErr: ErrInvalidPerPage},
		{name: "max_pages must be positive", mutate: func(c *Config) { c.MaxPages = 0 }, expectedErr: ErrInvalidMaxPages},
		{name: "limit must be positive", mutate: func(c *Config) { c.Limit = -1 }, expectedErr: ErrInvalidLimit},
		{name: "batch_size must be positive", mutate: func(c *Config) { c.BatchSize = 0 }, expectedErr: ErrInvalidBatchSize},
		{name: "batch_pause may be zero", mutate: func(c *Config) { c.BatchPause = 0 }},
		{name: "batch_pause must not be negative", mutate: func(c *Config) { c.BatchPause = -time.Second }, expectedErr: ErrInvalidPause},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestConfig_SaveOmitsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Token = "secret"

	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Equal(t, "secret", cfg.Token)

	t.Setenv("GITHUB_TOKEN", "")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Owner, loaded.Owner)
	assert.Equal(t, cfg.BatchSize, loaded.BatchSize)
}
