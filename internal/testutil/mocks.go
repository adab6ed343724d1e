package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/wordsearch/internal/dictionary"
)

// MockLooker mocks the dictionary client for testing
type MockLooker struct {
	Responses map[string][]dictionary.Entry
	Errors    map[string]error

	mu    sync.Mutex
	Calls []string
}

// Lookup returns the canned response for word, or dictionary.ErrNotFound
func (m *MockLooker) Lookup(ctx context.Context, word string) ([]dictionary.Entry, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("LOOKUP %s", word))
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err, ok := m.Errors[word]; ok {
		return nil, err
	}

	if entries, ok := m.Responses[word]; ok {
		return entries, nil
	}

	return nil, dictionary.ErrNotFound
}

// CallCount returns the number of lookups made
func (m *MockLooker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockAudioReloader records reloads of the audio player
type MockAudioReloader struct {
	mu      sync.Mutex
	Reloads []string
}

// Reload records the new source
func (m *MockAudioReloader) Reload(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reloads = append(m.Reloads, url)
}

// Count returns the number of reloads
func (m *MockAudioReloader) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Reloads)
}

// HelloEntries returns a parsed equivalent of HelloJSON
func HelloEntries() []dictionary.Entry {
	return []dictionary.Entry{
		{
			Word: "hello",
			Phonetics: []dictionary.Phonetic{
				{Audio: HelloAudioURL},
				{Text: "/həˈləʊ/", Audio: "https://api.dictionaryapi.dev/media/pronunciations/en/hello-uk.mp3"},
				{Text: "/həˈloʊ/", Audio: ""},
			},
			Meanings: []dictionary.Meaning{
				{
					PartOfSpeech: "noun",
					Definitions:  []dictionary.Definition{{Definition: `"Hello!" or an equivalent greeting.`}},
				},
				{
					PartOfSpeech: "verb",
					Definitions:  []dictionary.Definition{{Definition: `To greet with "hello".`}},
				},
				{
					PartOfSpeech: "interjection",
					Definitions: []dictionary.Definition{
						{Definition: "A greeting used when answering the telephone."},
						{Definition: "An expression of puzzlement or discovery."},
					},
				},
			},
		},
	}
}
