package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rovshanmuradov/marginal/internal/margin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T, name, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))
	return configPath
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "Valid JSON config",
			file: "config.json",
			content: `{
    "debug_logging": true,
    "log_file": "/tmp/marginal-test.log",
    "default_leverage": "1/100",
    "default_order": "sell"
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.DebugLogging)
				assert.Equal(t, "/tmp/marginal-test.log", cfg.LogFile)
				l, err := cfg.Leverage()
				require.NoError(t, err)
				assert.Equal(t, margin.Leverage100, l)
				o, err := cfg.Order()
				require.NoError(t, err)
				assert.Equal(t, margin.SellOrder, o)
			},
		},
		{
			name:    "Valid YAML config with partial keys",
			file:    "config.yaml",
			content: "default_leverage: \"1/30\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.DebugLogging)
				assert.Equal(t, DefaultLogFile, cfg.LogFile)
				assert.Equal(t, "1/30", cfg.DefaultLeverage)
				assert.Equal(t, DefaultOrder, cfg.DefaultOrder)
			},
		},
		{
			name:    "Unsupported leverage",
			file:    "config.json",
			content: `{"default_leverage": "1/25"}`,
			wantErr: true,
		},
		{
			name:    "Unknown order",
			file:    "config.json",
			content: `{"default_order": "hold"}`,
			wantErr: true,
		},
		{
			name:    "Invalid JSON syntax",
			file:    "config.json",
			content: "{invalid json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := setupTestConfig(t, tt.file, tt.content)

			cfg, err := LoadConfig(configPath)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	form := cfg.InitialForm()
	assert.Equal(t, margin.Leverage10, form.Leverage)
	assert.Equal(t, margin.BuyOrder, form.Order)
	assert.Empty(t, form.BuyPrice)
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("MARGINAL_DEFAULT_LEVERAGE", "1/500")
	t.Setenv("MARGINAL_DEBUG_LOGGING", "true")

	configPath := setupTestConfig(t, "config.json", `{"default_leverage": "1/20"}`)
	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging)
	form := cfg.InitialForm()
	assert.Equal(t, margin.Leverage500, form.Leverage)
}
