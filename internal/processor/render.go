package processor

import (
	"fmt"
	"io"

	"codeberg.org/snonux/wordsearch/internal/search"
)

// RenderText writes st as plain text: the error message, or each part of
// speech followed by its numbered definitions and the audio URL.
func RenderText(w io.Writer, st search.State) error {
	if msg := st.EmptyInputError(); msg != "" {
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	if msg := st.NotFoundError(); msg != "" {
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	if st.Kind != search.Result {
		return nil
	}

	for _, m := range st.Meanings {
		if _, err := fmt.Fprintln(w, m.PartOfSpeech); err != nil {
			return err
		}
		for i, d := range m.Definitions {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, d.Definition); err != nil {
				return err
			}
		}
	}

	if st.HasAudio() {
		if _, err := fmt.Fprintf(w, "audio: %s\n", st.AudioURL); err != nil {
			return err
		}
	}
	return nil
}
