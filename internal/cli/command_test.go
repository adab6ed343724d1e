package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordsearch/internal"
	"codeberg.org/snonux/wordsearch/internal/dictionary"
)

// resetViper gives each test a clean global viper
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	resetViper(t)
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "wordsearch [word]" {
		t.Errorf("Expected Use to be 'wordsearch [word]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "dictionary") {
		t.Errorf("Expected Short description to mention the dictionary, got %q", cmd.Short)
	}

	if cmd.Version != internal.Version {
		t.Errorf("Expected Version %s, got %s", internal.Version, cmd.Version)
	}

	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"verbose", true},
		{"log-level", true},
		{"base-url", false},
		{"timeout", false},
		{"batch", false},
		{"tui", false},
		{"no-auto-play", false},
		{"audio-cache", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestCreateRootCommand_Args(t *testing.T) {
	resetViper(t)
	cmd := CreateRootCommand(NewFlags())

	if err := cmd.Args(cmd, []string{"hello"}); err != nil {
		t.Errorf("Expected one word to be accepted, got %v", err)
	}
	if err := cmd.Args(cmd, []string{"hello", "world"}); err == nil {
		t.Error("Expected two words to be rejected")
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	baseURL := cmd.Flags().Lookup("base-url")
	if baseURL == nil {
		t.Fatal("base-url flag not found")
	}
	if baseURL.DefValue != dictionary.DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", dictionary.DefaultBaseURL, baseURL.DefValue)
	}

	timeout := cmd.Flags().Lookup("timeout")
	if timeout == nil {
		t.Fatal("timeout flag not found")
	}
	if timeout.DefValue != dictionary.DefaultTimeout.String() {
		t.Errorf("Expected default timeout %s, got %s", dictionary.DefaultTimeout, timeout.DefValue)
	}

	if err := cmd.ParseFlags([]string{"--tui", "--timeout", "3s", "-v"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !flags.TUIMode {
		t.Error("Expected --tui to set TUIMode")
	}
	if flags.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %s", flags.Timeout)
	}
	if !flags.Verbose {
		t.Error("Expected -v to set Verbose")
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `dictionary:
  base_url: http://example.test/entries/en/
  timeout: 2s
breaker:
  max_failures: 3
`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			cfgPath := tt.setupFunc(t)
			InitConfig(cfgPath)

			// Test environment variable prefix
			t.Setenv("WORDSEARCH_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if cfgPath != "" {
				if got := viper.GetString("dictionary.base_url"); got != "http://example.test/entries/en/" {
					t.Errorf("Expected base URL from config, got %s", got)
				}
				if got := viper.GetUint32("breaker.max_failures"); got != 3 {
					t.Errorf("Expected max_failures 3, got %d", got)
				}
			}
		})
	}
}

func TestInitConfig_NestedEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("WORDSEARCH_DICTIONARY_BASE_URL", "http://env.test/")

	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	if got := viper.GetString("dictionary.base_url"); got != "http://env.test/" {
		t.Errorf("Expected base URL from environment, got %s", got)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("base-url", "http://flag.test/")
	cmd.Flags().Set("timeout", "7s")
	cmd.Flags().Set("no-auto-play", "true")
	cmd.Flags().Set("audio-cache", "/tmp/clips")

	bindFlagsToViper(cmd)

	if got := viper.GetString("dictionary.base_url"); got != "http://flag.test/" {
		t.Errorf("Expected dictionary.base_url to be http://flag.test/, got %s", got)
	}
	if got := viper.GetDuration("dictionary.timeout"); got != 7*time.Second {
		t.Errorf("Expected dictionary.timeout to be 7s, got %s", got)
	}
	if !viper.GetBool("gui.no_auto_play") {
		t.Error("Expected gui.no_auto_play to be true")
	}
	if got := viper.GetString("audio.cache_dir"); got != "/tmp/clips" {
		t.Errorf("Expected audio.cache_dir to be /tmp/clips, got %s", got)
	}
}
