package cli

import (
	"time"

	"codeberg.org/snonux/wordsearch/internal/dictionary"
)

// Flags holds all command-line flag values
type Flags struct {
	CfgFile       string
	BaseURL       string
	Timeout       time.Duration
	BatchFile     string
	TUIMode       bool
	NoAutoPlay    bool
	Verbose       bool
	LogLevel      string
	AudioCacheDir string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		BaseURL:  dictionary.DefaultBaseURL,
		Timeout:  dictionary.DefaultTimeout,
		LogLevel: "info",
	}
}
