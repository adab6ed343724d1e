package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordsearch/internal"
	"codeberg.org/snonux/wordsearch/internal/audio"
	"codeberg.org/snonux/wordsearch/internal/search"
)

// AppID is the Fyne application ID
const AppID = "org.codeberg.snonux.wordsearch"

// Application represents the main GUI application
type Application struct {
	app    fyne.App
	window fyne.Window

	search *WordSearch
	ctrl   *search.Controller
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds GUI application configuration
type Config struct {
	AutoPlay      bool
	AudioCacheDir string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		AutoPlay:      true,
		AudioCacheDir: audio.DefaultCacheDir(),
	}
}

// New creates a new GUI application around ctrl running on fyneApp, which
// is usually app.NewWithID(AppID)
func New(fyneApp fyne.App, ctrl *search.Controller, config *Config, logger *zap.Logger) *Application {
	if config == nil {
		config = DefaultConfig()
	} else if config.AudioCacheDir == "" {
		config.AudioCacheDir = DefaultConfig().AudioCacheDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:    fyneApp,
		ctrl:   ctrl,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	player := NewAudioPlayer(ctx, audio.NewCache(config.AudioCacheDir, logger), audio.NewPlayer(), config.AutoPlay, logger)
	a.search = NewWordSearch(ctx, ctrl, player)

	a.setupUI()
	return a
}

// setupUI creates the main window
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("WordSearch v%s", internal.Version))
	a.window.Resize(fyne.NewSize(640, 560))
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(a.search, a.window.Canvas()))
	a.window.SetOnClosed(a.shutdown)
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() {
	a.search.FocusInput(a.window.Canvas())
	a.window.ShowAndRun()
}

func (a *Application) shutdown() {
	a.logger.Debug("window closed, canceling lookups")
	a.ctrl.Close()
	a.search.audioPlayer.Clear()
	a.cancel()
}
