package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.True(t, cfg.History)
	assert.True(t, cfg.Splash)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, AudioAuto, cfg.Audio)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100*time.Millisecond, cfg.FlashInterval)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"DICEROLLER_HISTORY":        "false",
		"DICEROLLER_SEED":           "42",
		"DICEROLLER_AUDIO":          "bell",
		"DICEROLLER_ASSETS":         "/tmp/sounds",
		"DICEROLLER_FLASH_INTERVAL": "250ms",
		"DICEROLLER_LOG_LEVEL":      "debug",
	})
	require.NoError(t, err)

	assert.False(t, cfg.History)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, AudioBell, cfg.Audio)
	assert.Equal(t, "/tmp/sounds", cfg.AssetDir)
	assert.Equal(t, 250*time.Millisecond, cfg.FlashInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"audio mode", map[string]string{"DICEROLLER_AUDIO": "loud"}},
		{"seed", map[string]string{"DICEROLLER_SEED": "-1"}},
		{"interval", map[string]string{"DICEROLLER_FLASH_INTERVAL": "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			assert.Error(t, err)
		})
	}
}
