package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordsearch/internal/audio"
	"codeberg.org/snonux/wordsearch/internal/dictionary"
	"codeberg.org/snonux/wordsearch/internal/search"
	"codeberg.org/snonux/wordsearch/internal/testutil"
)

func newTestModel(t *testing.T) (Model, *testutil.MockLooker) {
	t.Helper()

	looker := &testutil.MockLooker{
		Responses: map[string][]dictionary.Entry{"hello": testutil.HelloEntries()},
		Errors:    map[string]error{},
	}
	ctrl := search.NewController(looker)
	m := New(context.Background(), ctrl, audio.NewCache(t.TempDir(), nil), audio.NewPlayer())
	return m, looker
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// submit presses enter and runs the resulting command to completion
func submit(t *testing.T, m Model) Model {
	t.Helper()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "searching...")

	m, _ = update(t, m, cmd())
	return m
}

func TestNew(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, "Enter Word", m.input.Placeholder)
	assert.True(t, m.input.Focused())
	assert.Equal(t, search.Idle, m.state.Kind)

	view := m.View()
	assert.Contains(t, view, Heading)
	assert.Contains(t, view, "Search")
	assert.NotContains(t, view, "Input field empty")
	assert.NotContains(t, view, "No words found")
}

func TestUpdate_EmptyInput(t *testing.T) {
	m, looker := newTestModel(t)

	m = submit(t, m)

	assert.Contains(t, m.View(), "Input field empty")
	assert.NotContains(t, m.View(), "No words found")
	assert.Equal(t, 0, looker.CallCount())
}

func TestUpdate_UnknownWord(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "hellolkhf")
	assert.Equal(t, "hellolkhf", m.input.Value())

	m = submit(t, m)

	view := m.View()
	assert.Contains(t, view, "No words found")
	assert.NotContains(t, view, "searching...")
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, "Enter Word", m.input.Placeholder)
}

func TestUpdate_DisplaysResult(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "hello")
	m = submit(t, m)

	view := m.View()
	assert.Contains(t, view, "noun")
	assert.Contains(t, view, "interjection")
	assert.Contains(t, view, "An expression of puzzlement or discovery.")
	assert.Contains(t, view, testutil.HelloAudioURL)
	assert.Contains(t, view, "ctrl+p: play audio")
	assert.Equal(t, "", m.input.Value())
}

func TestUpdate_ErrorReplacesResult(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "hello")
	m = submit(t, m)
	m = typeText(t, m, "nope")
	m = submit(t, m)

	view := m.View()
	assert.Contains(t, view, "No words found")
	assert.NotContains(t, view, "noun")
	assert.NotContains(t, view, testutil.HelloAudioURL)
}

func TestUpdate_IgnoresSupersededResult(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "hello")
	m = submit(t, m)

	m, _ = update(t, m, resultMsg{state: search.State{Kind: search.LookupError}, applied: false})
	assert.Equal(t, search.Result, m.state.Kind)
	assert.NotContains(t, m.View(), "No words found")
}

func TestUpdate_PlayWithoutAudio(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Nil(t, cmd)
	assert.Empty(t, m.audioNote)
}

func TestUpdate_AudioMsg(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "hello")
	m = submit(t, m)

	m, _ = update(t, m, audioMsg{url: "https://stale.example/old.mp3", err: nil})
	assert.Empty(t, m.audioNote, "notes for other clips are ignored")

	m, _ = update(t, m, audioMsg{url: testutil.HelloAudioURL, err: audio.ErrNoPlayer})
	assert.Contains(t, m.View(), "error:")

	m, _ = update(t, m, audioMsg{url: testutil.HelloAudioURL})
	assert.Contains(t, m.View(), "(playing)")
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.width)
}
