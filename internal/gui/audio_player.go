package gui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordsearch/internal"
	"codeberg.org/snonux/wordsearch/internal/audio"
)

// AudioPlayer is a custom widget playing the pronunciation clip of the
// current result. It has a single source, a URL, which is downloaded on the
// first play.
type AudioPlayer struct {
	widget.BaseWidget

	container   *fyne.Container
	playButton  *ttwidget.Button
	stopButton  *ttwidget.Button
	statusLabel *widget.Label

	ctx      context.Context
	cache    *audio.Cache
	player   *audio.Player
	logger   *zap.Logger
	autoPlay bool
	dispatch func(func())

	mu      sync.Mutex
	source  string
	loads   int
	playing bool
}

// NewAudioPlayer creates a new audio player widget
func NewAudioPlayer(ctx context.Context, cache *audio.Cache, player *audio.Player, autoPlay bool, logger *zap.Logger) *AudioPlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &AudioPlayer{
		ctx:      ctx,
		cache:    cache,
		player:   player,
		logger:   logger,
		autoPlay: autoPlay,
		dispatch: fyne.Do,
	}

	p.playButton = ttwidget.NewButton("", p.onPlay)
	p.playButton.Icon = theme.MediaPlayIcon()
	p.playButton.SetToolTip("Play pronunciation")

	p.stopButton = ttwidget.NewButton("", p.onStop)
	p.stopButton.Icon = theme.MediaStopIcon()
	p.stopButton.SetToolTip("Stop")

	p.statusLabel = widget.NewLabel("No audio loaded")

	p.playButton.Disable()
	p.stopButton.Disable()

	p.container = container.NewHBox(
		p.playButton,
		p.stopButton,
		layout.NewSpacer(),
		p.statusLabel,
	)

	player.OnFinish(func() {
		p.dispatch(func() {
			p.mu.Lock()
			p.playing = false
			src := p.source
			p.mu.Unlock()
			p.showStopped("Finished", src)
		})
	})

	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *AudioPlayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.container)
}

// Source returns the URL of the loaded clip
func (p *AudioPlayer) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// Loads returns how many times a source was loaded
func (p *AudioPlayer) Loads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loads
}

// SetSource loads url unless it is already the source. Must be called on
// the Fyne main thread.
func (p *AudioPlayer) SetSource(url string) {
	if url == "" {
		p.Clear()
		return
	}
	if url == p.Source() {
		return
	}
	p.load(url)
}

// Reload stops playback and loads url even if it is the current source, so
// the new clip takes effect immediately. Safe to call from any goroutine.
func (p *AudioPlayer) Reload(url string) {
	p.dispatch(func() {
		p.load(url)
	})
}

// Clear stops playback and forgets the source
func (p *AudioPlayer) Clear() {
	p.player.Stop()

	p.mu.Lock()
	p.source = ""
	p.playing = false
	p.mu.Unlock()

	p.playButton.Disable()
	p.stopButton.Disable()
	p.statusLabel.SetText("No audio loaded")
}

func (p *AudioPlayer) load(url string) {
	p.player.Stop()

	p.mu.Lock()
	p.source = url
	p.loads++
	p.playing = false
	p.mu.Unlock()

	p.playButton.SetIcon(theme.MediaPlayIcon())
	p.playButton.Enable()
	p.stopButton.Disable()
	p.statusLabel.SetText(fmt.Sprintf("Audio: %s", internal.ClipFilename(url)))

	if p.autoPlay {
		p.onPlay()
	}
}

// onPlay handles play button click
func (p *AudioPlayer) onPlay() {
	p.mu.Lock()
	src, playing := p.source, p.playing
	p.mu.Unlock()

	if src == "" {
		return
	}
	if playing {
		// Pause functionality - just stop for now
		p.onStop()
		return
	}

	p.statusLabel.SetText(fmt.Sprintf("Loading: %s", internal.ClipFilename(src)))

	go func() {
		path, err := p.cache.Fetch(p.ctx, src)
		if err == nil {
			if p.Source() != src {
				return
			}
			p.player.Load(path)
			err = p.player.Play()
		}

		p.dispatch(func() {
			if p.Source() != src {
				return
			}
			if err != nil {
				p.logger.Warn("audio playback failed", zap.String("url", src), zap.Error(err))
				p.statusLabel.SetText(fmt.Sprintf("Error: %v", err))
				return
			}

			p.mu.Lock()
			p.playing = true
			p.mu.Unlock()

			p.playButton.SetIcon(theme.MediaPauseIcon())
			p.stopButton.Enable()
			p.statusLabel.SetText(fmt.Sprintf("Playing: %s", internal.ClipFilename(src)))
		})
	}()
}

// onStop handles stop button click
func (p *AudioPlayer) onStop() {
	p.player.Stop()

	p.mu.Lock()
	p.playing = false
	src := p.source
	p.mu.Unlock()

	p.showStopped("Stopped", src)
}

func (p *AudioPlayer) showStopped(verb, src string) {
	p.playButton.SetIcon(theme.MediaPlayIcon())
	p.stopButton.Disable()
	if src != "" {
		p.statusLabel.SetText(fmt.Sprintf("%s: %s", verb, internal.ClipFilename(src)))
	}
}
