package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordsearch/internal/audio"
	"codeberg.org/snonux/wordsearch/internal/batch"
	"codeberg.org/snonux/wordsearch/internal/cli"
	"codeberg.org/snonux/wordsearch/internal/dictionary"
	"codeberg.org/snonux/wordsearch/internal/gui"
	"codeberg.org/snonux/wordsearch/internal/search"
	"codeberg.org/snonux/wordsearch/internal/tui"
)

// Processor handles the main word lookup logic
type Processor struct {
	settings cli.Settings
	logger   *zap.Logger
	client   *dictionary.Client
}

// NewProcessor creates a new processor from the resolved settings
func NewProcessor(settings cli.Settings, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := dictionary.NewClient(
		dictionary.WithBaseURL(settings.BaseURL),
		dictionary.WithTimeout(settings.Timeout),
		dictionary.WithBreaker(dictionary.BreakerSettings{
			MaxFailures: settings.BreakerMaxFailures,
			Cooldown:    settings.BreakerCooldown,
		}),
		dictionary.WithLogger(logger.Named("dictionary")),
	)

	return &Processor{
		settings: settings,
		logger:   logger,
		client:   client,
	}
}

func (p *Processor) newController() *search.Controller {
	return search.NewController(p.client, search.WithLogger(p.logger.Named("search")))
}

// ProcessSingleWord looks word up once and writes the outcome to w.
// A failed lookup is written and returned as an error.
func (p *Processor) ProcessSingleWord(ctx context.Context, word string, w io.Writer) error {
	ctrl := p.newController()
	defer ctrl.Close()

	ctrl.SetInput(word)
	st, _ := ctrl.Submit(ctx)

	if err := RenderText(w, st); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	switch st.Kind {
	case search.EmptyInputError:
		return errors.New(search.EmptyInputMessage)
	case search.LookupError:
		return fmt.Errorf("%s: %w", search.NotFoundMessage, st.Err)
	}
	return nil
}

// ProcessBatch looks up every word in the batch file, one after another,
// and writes each outcome under a heading naming the word
func (p *Processor) ProcessBatch(ctx context.Context, filename string, w io.Writer) error {
	words, err := batch.ReadBatchFile(filename)
	if err != nil {
		return err
	}

	ctrl := p.newController()
	defer ctrl.Close()

	failed := 0
	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s ==\n", word)

		ctrl.SetInput(word)
		st, _ := ctrl.Submit(ctx)
		if err := RenderText(w, st); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		if st.Kind != search.Result {
			p.logger.Info("word not found", zap.String("word", word), zap.Error(st.Err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d words not found", failed, len(words))
	}
	return nil
}

// RunGUIMode launches the GUI application on fyneApp
func (p *Processor) RunGUIMode(fyneApp fyne.App) error {
	guiConfig := &gui.Config{
		AutoPlay:      p.settings.AutoPlay,
		AudioCacheDir: p.settings.AudioCacheDir,
	}

	app := gui.New(fyneApp, p.newController(), guiConfig, p.logger.Named("gui"))
	app.Run()

	return nil
}

// RunTUIMode runs the terminal front end until the user quits or ctx is done
func (p *Processor) RunTUIMode(ctx context.Context) error {
	cache := audio.NewCache(p.settings.AudioCacheDir, p.logger.Named("audio"))
	player := audio.NewPlayer()
	defer player.Stop()

	if err := tui.Run(ctx, p.newController(), cache, player); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
