package dictionary

// Entry is one element of the API's top-level response array
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	License    *License   `json:"license,omitempty"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is one pronunciation variant, optionally with an audio clip
type Phonetic struct {
	Text      string   `json:"text,omitempty"`
	Audio     string   `json:"audio"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	License   *License `json:"license,omitempty"`
}

// Meaning is one part-of-speech sense of a word
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single definition of a meaning
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// License describes the license of an entry or a recording
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AudioURL returns the audio clip of the first phonetic of the first entry.
// Only the presence of a phonetic is checked, so the result may be empty
// even when phonetics exist.
func AudioURL(entries []Entry) string {
	if len(entries) == 0 || len(entries[0].Phonetics) == 0 {
		return ""
	}
	return entries[0].Phonetics[0].Audio
}
