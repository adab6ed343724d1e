package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordsearch/internal"
	"codeberg.org/snonux/wordsearch/internal/audio"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordsearch [word]",
		Short: "English dictionary lookup",
		Long: `wordsearch looks English words up in the Free Dictionary API and shows
their parts of speech, definitions and a pronunciation clip.

Examples:
  wordsearch              # Launch the search window (default)
  wordsearch --tui        # Search in the terminal
  wordsearch hello        # Print the definitions of "hello"
  wordsearch -b words.txt # Print the definitions of every word in a file`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordsearch.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log at debug level")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "Dictionary API URL the word is appended to")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Lookup timeout (0 waits forever)")
	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Look up every word in a file (one per line)")
	cmd.Flags().BoolVar(&flags.TUIMode, "tui", false, "Search in the terminal instead of a window")
	cmd.Flags().BoolVar(&flags.NoAutoPlay, "no-auto-play", false, "Disable automatic pronunciation playback in the window")
	cmd.Flags().StringVar(&flags.AudioCacheDir, "audio-cache", audio.DefaultCacheDir(), "Directory pronunciation clips are downloaded to")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("dictionary.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("dictionary.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("gui.no_auto_play", cmd.Flags().Lookup("no-auto-play"))
	viper.BindPFlag("audio.cache_dir", cmd.Flags().Lookup("audio-cache"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordsearch" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordsearch")
	}

	// Environment variables, e.g. WORDSEARCH_DICTIONARY_BASE_URL
	viper.SetEnvPrefix("WORDSEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
