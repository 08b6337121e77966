package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Audio modes accepted by Config.Audio.
const (
	AudioAuto    = "auto"
	AudioBell    = "bell"
	AudioCommand = "command"
	AudioSilent  = "silent"
)

// Config holds runtime configuration. Values come from DICEROLLER_* env vars
// and may be overridden by command-line flags.
type Config struct {
	// History enables the scrollable roll log.
	History bool `env:"DICEROLLER_HISTORY" envDefault:"true"`

	// Splash shows the welcome animation before the dice screen.
	Splash bool `env:"DICEROLLER_SPLASH" envDefault:"true"`

	// Seed makes rolls reproducible. Zero means unseeded.
	Seed uint64 `env:"DICEROLLER_SEED"`

	// Audio selects the audio sink: auto, bell, command or silent.
	Audio string `env:"DICEROLLER_AUDIO" envDefault:"auto"`

	// AssetDir holds <token>.mp3 / <token>.wav files for the command player.
	AssetDir string `env:"DICEROLLER_ASSETS"`

	// Player overrides the audio player binary (afplay, paplay, ...).
	Player string `env:"DICEROLLER_PLAYER"`

	LogFile  string `env:"DICEROLLER_LOG_FILE"`
	LogLevel string `env:"DICEROLLER_LOG_LEVEL" envDefault:"info"`

	// FlashInterval is the spacing between critical flash steps.
	FlashInterval time.Duration `env:"DICEROLLER_FLASH_INTERVAL" envDefault:"100ms"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given environment map instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enum and range fields.
func (c Config) Validate() error {
	switch c.Audio {
	case AudioAuto, AudioBell, AudioCommand, AudioSilent:
	default:
		return fmt.Errorf("unknown audio mode %q: must be auto, bell, command or silent", c.Audio)
	}
	if c.FlashInterval <= 0 {
		return fmt.Errorf("flash interval must be positive, got %s", c.FlashInterval)
	}
	return nil
}
