package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordsearch/internal/cli"
	"codeberg.org/snonux/wordsearch/internal/gui"
	"codeberg.org/snonux/wordsearch/internal/logging"
	"codeberg.org/snonux/wordsearch/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	settings := cli.LoadSettings()
	if flags.Verbose {
		settings.LogLevel = "debug"
	}

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	proc := processor.NewProcessor(settings, logger)

	switch {
	case flags.BatchFile != "":
		return proc.ProcessBatch(cmd.Context(), flags.BatchFile, cmd.OutOrStdout())
	case len(args) > 0:
		// Look a single word up and print it
		return proc.ProcessSingleWord(cmd.Context(), args[0], cmd.OutOrStdout())
	case flags.TUIMode:
		return proc.RunTUIMode(cmd.Context())
	default:
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode(app.NewWithID(gui.AppID))
	}
}
