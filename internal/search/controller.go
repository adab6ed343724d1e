package search

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"codeberg.org/snonux/wordsearch/internal/dictionary"
)

// Looker fetches dictionary entries for a word. A nil error with no
// entries is treated as dictionary.ErrNotFound.
type Looker interface {
	Lookup(ctx context.Context, word string) ([]dictionary.Entry, error)
}

// AudioReloader is implemented by an audio player that is currently shown.
// Reload stops playback and loads url as the new source.
type AudioReloader interface {
	Reload(url string)
}

// Controller owns the input and the displayed state of a word search.
// Only the latest submit may change the state: starting a new one cancels
// the lookup in flight and any outcome of an older submit is dropped.
type Controller struct {
	looker Looker
	logger *zap.Logger

	mu       sync.Mutex
	input    string
	state    State
	seq      uint64
	cancel   context.CancelFunc
	reloader AudioReloader
	onChange func(State)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithAudioReloader sets the player reloaded when a new clip arrives
func WithAudioReloader(r AudioReloader) Option {
	return func(c *Controller) { c.reloader = r }
}

// NewController creates a controller in the Idle state
func NewController(looker Looker, opts ...Option) *Controller {
	c := &Controller{
		looker: looker,
		logger: zap.NewNop(),
		state:  idleState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAudioReloader replaces the audio player notified of new clips
func (c *Controller) SetAudioReloader(r AudioReloader) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reloader = r
}

// OnChange registers fn to be called with every state a submit applies.
// fn runs on the goroutine that called Submit.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// SetInput stores the current text of the search field
func (c *Controller) SetInput(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = word
}

// Input returns the current text of the search field
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// State returns a snapshot of the displayed state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Submit searches for the current input. It blocks until the lookup
// completes and returns the resulting state. The boolean is false when a
// later submit superseded this one, in which case the returned state is
// whatever is current and nothing was changed.
func (c *Controller) Submit(ctx context.Context) (State, bool) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	word := c.input
	if word == "" {
		c.state = emptyInputState()
		st, notify := c.snapshot(), c.onChange
		c.mu.Unlock()

		if notify != nil {
			notify(st)
		}
		return st, true
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	entries, err := c.looker.Lookup(ctx, word)
	cancel()
	if err == nil && len(entries) == 0 {
		err = dictionary.ErrNotFound
	}

	c.mu.Lock()
	if seq != c.seq {
		st := c.snapshot()
		c.mu.Unlock()

		c.logger.Debug("discarding superseded lookup", zap.String("word", word), zap.Uint64("seq", seq))
		return st, false
	}
	c.cancel = nil

	mounted := c.state.HasAudio()
	if err != nil {
		c.state = lookupErrorState(word, err)
	} else {
		c.state = resultState(word, entries)
	}
	c.input = ""
	st, notify, reloader := c.snapshot(), c.onChange, c.reloader
	c.mu.Unlock()

	if err != nil {
		c.logger.Info("lookup failed", zap.String("word", word), zap.Error(err))
	} else if mounted && reloader != nil && len(entries[0].Phonetics) > 0 {
		reloader.Reload(st.AudioURL)
	}

	if notify != nil {
		notify(st)
	}
	return st, true
}

// Close cancels the lookup in flight, if any
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) snapshot() State {
	st := c.state
	st.Input = c.input
	return st
}
