package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// HelloAudioURL is the first phonetic audio clip in HelloJSON
const HelloAudioURL = "https://api.dictionaryapi.dev/media/pronunciations/en/hello-au.mp3"

// HelloJSON is the API response for "hello", trimmed to the fields a client sees
const HelloJSON = `[
  {
    "word": "hello",
    "phonetics": [
      {
        "audio": "https://api.dictionaryapi.dev/media/pronunciations/en/hello-au.mp3",
        "sourceUrl": "https://commons.wikimedia.org/w/index.php?curid=75797336",
        "license": {"name": "BY-SA 4.0", "url": "https://creativecommons.org/licenses/by-sa/4.0"}
      },
      {
        "text": "/həˈləʊ/",
        "audio": "https://api.dictionaryapi.dev/media/pronunciations/en/hello-uk.mp3",
        "sourceUrl": "https://commons.wikimedia.org/w/index.php?curid=9021983",
        "license": {"name": "BY 3.0 US", "url": "https://creativecommons.org/licenses/by/3.0/us"}
      },
      {"text": "/həˈloʊ/", "audio": ""}
    ],
    "meanings": [
      {
        "partOfSpeech": "noun",
        "definitions": [
          {"definition": "\"Hello!\" or an equivalent greeting.", "synonyms": [], "antonyms": []}
        ],
        "synonyms": ["greeting"],
        "antonyms": []
      },
      {
        "partOfSpeech": "verb",
        "definitions": [
          {"definition": "To greet with \"hello\".", "synonyms": [], "antonyms": []}
        ],
        "synonyms": [],
        "antonyms": []
      },
      {
        "partOfSpeech": "interjection",
        "definitions": [
          {"definition": "A greeting (salutation) said when meeting someone or acknowledging someone’s arrival or presence.", "synonyms": [], "antonyms": [], "example": "Hello, everyone."},
          {"definition": "A greeting used when answering the telephone.", "synonyms": [], "antonyms": [], "example": "Hello? How may I help you?"},
          {"definition": "A call for response if it is not clear if anyone is present or listening, or if a telephone conversation may have been disconnected.", "synonyms": [], "antonyms": [], "example": "Hello? Is anyone there?"},
          {"definition": "Used sarcastically to imply that the person addressed or referred to has done something the speaker or writer considers to be foolish.", "synonyms": [], "antonyms": [], "example": "You just tried to start your car with your cell phone. Hello?"},
          {"definition": "An expression of puzzlement or discovery.", "synonyms": [], "antonyms": [], "example": "Hello! What’s going on here?"}
        ],
        "synonyms": [],
        "antonyms": ["bye", "goodbye"]
      }
    ],
    "license": {"name": "CC BY-SA 3.0", "url": "https://creativecommons.org/licenses/by-sa/3.0"},
    "sourceUrls": ["https://en.wiktionary.org/wiki/hello"]
  }
]`

// NotFoundJSON is the body the API sends with a 404
const NotFoundJSON = `{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for.","resolution":"You can try the search again at later time or head to the web instead."}`

// DictionaryServer is an httptest server standing in for the dictionary API.
// It answers "hello" with HelloJSON and every other word with a 404.
type DictionaryServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]string
	requests  []string
}

// NewDictionaryServer starts a fake dictionary API that is closed with the test
func NewDictionaryServer(t *testing.T) *DictionaryServer {
	t.Helper()

	s := &DictionaryServer{
		responses: map[string]string{"hello": HelloJSON},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// BaseURL returns the URL a word is appended to
func (s *DictionaryServer) BaseURL() string {
	return s.URL + "/"
}

// SetResponse makes the server answer word with a 200 and body
func (s *DictionaryServer) SetResponse(word, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[word] = body
}

// Requests returns the words requested so far
func (s *DictionaryServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *DictionaryServer) handle(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimPrefix(r.URL.Path, "/")

	s.mu.Lock()
	s.requests = append(s.requests, word)
	body, ok := s.responses[word]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(NotFoundJSON))
		return
	}
	w.Write([]byte(body))
}
