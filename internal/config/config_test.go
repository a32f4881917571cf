package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "taskflow", cfg.DB.Name)
	assert.Equal(t, "8000", cfg.App.HTTPPort)
	assert.Equal(t, 15, cfg.App.ShutdownTimeoutSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "taskflow-api", cfg.Logger.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	content := "DB_HOST=db.internal\nDB_NAME=taskflow_test\nHTTP_PORT=9000\nREDIS_ENABLED=true\nREDIS_CACHE_TTL_SECONDS=120\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "taskflow_test", cfg.DB.Name)
	assert.Equal(t, "9000", cfg.App.HTTPPort)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 120, cfg.Redis.CacheTTL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DB:  DatabaseConfig{Host: "localhost", Port: "5432", User: "postgres", Name: "taskflow"},
			App: AppConfig{HTTPPort: "8000", ShutdownTimeoutSeconds: 15},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing db host", func(c *Config) { c.DB.Host = "" }, true},
		{"missing db name", func(c *Config) { c.DB.Name = "" }, true},
		{"missing http port", func(c *Config) { c.App.HTTPPort = "" }, true},
		{"zero shutdown timeout", func(c *Config) { c.App.ShutdownTimeoutSeconds = 0 }, true},
		{"redis enabled without host", func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.CacheTTL = 300
		}, true},
		{"redis enabled complete", func(c *Config) {
			c.Redis = RedisConfig{Enabled: true, Host: "localhost", Port: "6379", CacheTTL: 300}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		Name:     "taskflow",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=taskflow")
	assert.Contains(t, dsn, "sslmode=disable")
}
