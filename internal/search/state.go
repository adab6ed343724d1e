package search

import (
	"codeberg.org/snonux/wordsearch/internal/dictionary"
)

// User-visible messages
const (
	Placeholder       = "Enter Word"
	EmptyInputMessage = "Input field empty"
	NotFoundMessage   = "No words found"
)

// Kind tells which variant a State is
type Kind int

const (
	// Idle is the state before the first search
	Idle Kind = iota
	// EmptyInputError follows a submit with an empty input
	EmptyInputError
	// LookupError follows any failed lookup
	LookupError
	// Result holds the meanings of a found word
	Result
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case EmptyInputError:
		return "empty-input"
	case LookupError:
		return "lookup-error"
	case Result:
		return "result"
	default:
		return "unknown"
	}
}

// State is what a front end renders. Meanings and AudioURL are only set
// when Kind is Result.
type State struct {
	Kind        Kind
	Word        string
	Meanings    []dictionary.Meaning
	AudioURL    string
	Input       string
	Placeholder string

	// Err is the cause of a LookupError, for logging only
	Err error
}

func idleState() State {
	return State{Kind: Idle, Placeholder: Placeholder}
}

func emptyInputState() State {
	return State{Kind: EmptyInputError, Placeholder: Placeholder}
}

func lookupErrorState(word string, err error) State {
	return State{Kind: LookupError, Word: word, Placeholder: Placeholder, Err: err}
}

func resultState(word string, entries []dictionary.Entry) State {
	return State{
		Kind:        Result,
		Word:        word,
		Meanings:    entries[0].Meanings,
		AudioURL:    dictionary.AudioURL(entries),
		Placeholder: Placeholder,
	}
}

// EmptyInputError returns the empty input message, or "" for other kinds
func (s State) EmptyInputError() string {
	if s.Kind == EmptyInputError {
		return EmptyInputMessage
	}
	return ""
}

// NotFoundError returns the lookup failure message, or "" for other kinds
func (s State) NotFoundError() string {
	if s.Kind == LookupError {
		return NotFoundMessage
	}
	return ""
}

// HasAudio reports whether an audio player should be shown
func (s State) HasAudio() bool {
	return s.AudioURL != ""
}
