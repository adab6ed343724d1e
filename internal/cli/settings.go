package cli

import (
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/wordsearch/internal/audio"
	"codeberg.org/snonux/wordsearch/internal/dictionary"
)

// Settings is the resolved configuration: flags, then environment, then
// config file, then defaults
type Settings struct {
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerCooldown    time.Duration
	AutoPlay           bool
	LogLevel           string
	AudioCacheDir      string
}

// LoadSettings reads the resolved configuration from viper
func LoadSettings() Settings {
	breaker := dictionary.DefaultBreakerSettings()

	s := Settings{
		BaseURL:            viper.GetString("dictionary.base_url"),
		Timeout:            durationOr("dictionary.timeout", dictionary.DefaultTimeout),
		BreakerMaxFailures: breaker.MaxFailures,
		BreakerCooldown:    durationOr("breaker.cooldown", breaker.Cooldown),
		AutoPlay:           !viper.GetBool("gui.no_auto_play"),
		LogLevel:           viper.GetString("log.level"),
		AudioCacheDir:      viper.GetString("audio.cache_dir"),
	}

	if n := viper.GetUint32("breaker.max_failures"); n > 0 {
		s.BreakerMaxFailures = n
	}
	if s.BaseURL == "" {
		s.BaseURL = dictionary.DefaultBaseURL
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.AudioCacheDir == "" {
		s.AudioCacheDir = audio.DefaultCacheDir()
	}

	return s
}

// durationOr returns the duration at key. An explicit zero is kept, an
// unset key falls back to def.
func durationOr(key string, def time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	if d := viper.GetDuration(key); d != 0 {
		return d
	}
	return def
}
