// Package tui is the terminal front end of the word search, built on
// Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/wordsearch/internal/audio"
	"codeberg.org/snonux/wordsearch/internal/search"
)

// Heading is the first line of the view
const Heading = "Welcome to online word search !!!"

// resultMsg carries the outcome of a submit
type resultMsg struct {
	state   search.State
	applied bool
}

// audioMsg reports the outcome of starting playback
type audioMsg struct {
	url string
	err error
}

// Model is the Bubble Tea model of the word search
type Model struct {
	ctx    context.Context
	ctrl   *search.Controller
	cache  *audio.Cache
	player *audio.Player

	input     textinput.Model
	state     search.State
	searching bool
	audioNote string
	width     int

	styles Styles
}

// playerReloader stops the terminal player when a new clip replaces the
// shown one. The clip itself is fetched on the next play.
type playerReloader struct {
	player *audio.Player
}

func (r playerReloader) Reload(string) {
	r.player.Stop()
}

// New creates the model and hooks player up to ctrl
func New(ctx context.Context, ctrl *search.Controller, cache *audio.Cache, player *audio.Player) Model {
	ti := textinput.New()
	ti.Placeholder = search.Placeholder
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = ""
	ti.Focus()

	ctrl.SetAudioReloader(playerReloader{player: player})

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		cache:  cache,
		player: player,
		input:  ti,
		state:  ctrl.State(),
		styles: DefaultStyles(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.ctrl.Close()
			m.player.Stop()
			return m, tea.Quit
		case "enter":
			m.ctrl.SetInput(m.input.Value())
			m.searching = true
			return m, m.submit()
		case "ctrl+p":
			if !m.state.HasAudio() {
				return m, nil
			}
			m.audioNote = "loading..."
			return m, m.play(m.state.AudioURL)
		}

	case resultMsg:
		if !msg.applied {
			return m, nil
		}
		if msg.state.AudioURL != m.state.AudioURL {
			m.player.Stop()
			m.audioNote = ""
		}
		m.state = msg.state
		m.searching = false
		m.input.Placeholder = msg.state.Placeholder
		m.input.SetValue(msg.state.Input)
		return m, nil

	case audioMsg:
		if msg.url != m.state.AudioURL {
			return m, nil
		}
		if msg.err != nil {
			m.audioNote = fmt.Sprintf("error: %v", msg.err)
		} else {
			m.audioNote = "playing"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) submit() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		st, applied := ctrl.Submit(ctx)
		return resultMsg{state: st, applied: applied}
	}
}

func (m Model) play(url string) tea.Cmd {
	ctx, cache, player := m.ctx, m.cache, m.player
	return func() tea.Msg {
		path, err := cache.Fetch(ctx, url)
		if err != nil {
			return audioMsg{url: url, err: err}
		}
		player.Load(path)
		return audioMsg{url: url, err: player.Play()}
	}
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Heading.Render(Heading))
	b.WriteString("\n")

	form := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Label.Render("Enter word : "),
		m.input.View(),
		" ",
		m.styles.Button.Render("Search"),
	)
	b.WriteString(form)
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.styles.Searching.Render("searching..."))
		b.WriteString("\n")
	}
	if msg := m.state.EmptyInputError(); msg != "" {
		b.WriteString(m.styles.EmptyInput.Render(msg))
		b.WriteString("\n")
	}
	if msg := m.state.NotFoundError(); msg != "" {
		b.WriteString(m.styles.NotFound.Render(msg))
		b.WriteString("\n")
	}

	defStyle := m.styles.Definition
	if m.width > 4 {
		defStyle = defStyle.Width(m.width - 2)
	}
	for _, meaning := range m.state.Meanings {
		b.WriteString("\n")
		b.WriteString(m.styles.PartOfSpeech.Render(meaning.PartOfSpeech))
		b.WriteString("\n")
		for _, d := range meaning.Definitions {
			b.WriteString(defStyle.Render("• " + d.Definition))
			b.WriteString("\n")
		}
	}

	if m.state.HasAudio() {
		line := "♪ " + m.state.AudioURL
		if m.audioNote != "" {
			line += " (" + m.audioNote + ")"
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Audio.Render(line))
		b.WriteString("\n")
	}

	help := "enter: search • esc: quit"
	if m.state.HasAudio() {
		help = "enter: search • ctrl+p: play audio • esc: quit"
	}
	b.WriteString(m.styles.Help.Render(help))

	return b.String()
}

// Run starts the terminal UI and blocks until the user quits
func Run(ctx context.Context, ctrl *search.Controller, cache *audio.Cache, player *audio.Player) error {
	p := tea.NewProgram(New(ctx, ctrl, cache, player), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
