// Package config loads runtime configuration from an optional TOML file and
// NOISEMASK_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the masker.
type Config struct {
	DataDir       string
	RecordSeconds int
	PollInterval  time.Duration
	SettleDelay   time.Duration

	// External tool binaries
	SoxBin    string
	PlayBin   string
	AmixerBin string
	PactlBin  string

	// Host audio identifiers
	MixerControl string // amixer control to mirror
	SinkAppName  string // application.name the generator registers under
}

// Load reads configuration with the following precedence: defaults, then the
// config file (if given), then environment variables. Flag overrides are
// applied by the caller.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "data")
	v.SetDefault("record_seconds", 10)
	v.SetDefault("poll_interval_ms", 500)
	v.SetDefault("settle_delay_ms", 200)
	v.SetDefault("sox_bin", "sox")
	v.SetDefault("play_bin", "play")
	v.SetDefault("amixer_bin", "amixer")
	v.SetDefault("pactl_bin", "pactl")
	v.SetDefault("mixer_control", "Master")
	v.SetDefault("sink_app_name", "ALSA plug-in [sox]")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("NOISEMASK")
	v.AutomaticEnv()

	cfg := &Config{
		DataDir:       v.GetString("data_dir"),
		RecordSeconds: v.GetInt("record_seconds"),
		PollInterval:  time.Duration(v.GetInt("poll_interval_ms")) * time.Millisecond,
		SettleDelay:   time.Duration(v.GetInt("settle_delay_ms")) * time.Millisecond,
		SoxBin:        v.GetString("sox_bin"),
		PlayBin:       v.GetString("play_bin"),
		AmixerBin:     v.GetString("amixer_bin"),
		PactlBin:      v.GetString("pactl_bin"),
		MixerControl:  v.GetString("mixer_control"),
		SinkAppName:   v.GetString("sink_app_name"),
	}

	if cfg.RecordSeconds <= 0 {
		return nil, fmt.Errorf("record_seconds must be positive, got %d", cfg.RecordSeconds)
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("poll_interval_ms must be positive, got %s", cfg.PollInterval)
	}
	return cfg, nil
}
