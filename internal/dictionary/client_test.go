package dictionary_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordsearch/internal/dictionary"
	"codeberg.org/snonux/wordsearch/internal/testutil"
)

func TestLookup_Found(t *testing.T) {
	srv := testutil.NewDictionaryServer(t)
	client := dictionary.NewClient(dictionary.WithBaseURL(srv.BaseURL()))

	entries, err := client.Lookup(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "hello", entry.Word)
	require.Len(t, entry.Meanings, 3)
	assert.Equal(t, "noun", entry.Meanings[0].PartOfSpeech)
	assert.Equal(t, `"Hello!" or an equivalent greeting.`, entry.Meanings[0].Definitions[0].Definition)
	assert.Len(t, entry.Meanings[2].Definitions, 5)
	assert.Equal(t, "Hello, everyone.", entry.Meanings[2].Definitions[0].Example)
	require.Len(t, entry.Phonetics, 3)
	assert.Equal(t, "BY-SA 4.0", entry.Phonetics[0].License.Name)
	assert.Equal(t, []string{"https://en.wiktionary.org/wiki/hello"}, entry.SourceURLs)

	assert.Equal(t, testutil.HelloAudioURL, dictionary.AudioURL(entries))
	assert.Equal(t, []string{"hello"}, srv.Requests())
}

func TestLookup_NotFound(t *testing.T) {
	srv := testutil.NewDictionaryServer(t)
	client := dictionary.NewClient(dictionary.WithBaseURL(srv.BaseURL()))

	_, err := client.Lookup(context.Background(), "hellolkhf")
	require.Error(t, err)
	assert.ErrorIs(t, err, dictionary.ErrNotFound)

	var apiErr *dictionary.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "No Definitions Found", apiErr.Title)
}

func TestLookup_MalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"not json", "<html>oops</html>", dictionary.ErrMalformedResponse},
		{"object instead of array", `{"word":"x"}`, dictionary.ErrMalformedResponse},
		{"empty array", `[]`, dictionary.ErrNotFound},
		{"missing meanings", `[{"word":"x","phonetics":[]}]`, dictionary.ErrMalformedResponse},
		{"missing phonetics", `[{"word":"x","meanings":[]}]`, dictionary.ErrMalformedResponse},
		{"meaning without definitions", `[{"word":"x","phonetics":[],"meanings":[{"partOfSpeech":"noun"}]}]`, dictionary.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testutil.NewDictionaryServer(t)
			srv.SetResponse("x", tt.body)
			client := dictionary.NewClient(dictionary.WithBaseURL(srv.BaseURL()))

			_, err := client.Lookup(context.Background(), "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLookup_EmptyPhoneticsIsValid(t *testing.T) {
	srv := testutil.NewDictionaryServer(t)
	srv.SetResponse("x", `[{"word":"x","phonetics":[],"meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"d"}]}]}]`)
	client := dictionary.NewClient(dictionary.WithBaseURL(srv.BaseURL()))

	entries, err := client.Lookup(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, dictionary.AudioURL(entries))
}

func TestLookup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := dictionary.NewClient(dictionary.WithBaseURL(server.URL + "/"))

	_, err := client.Lookup(context.Background(), "hello")
	assert.ErrorIs(t, err, dictionary.ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, dictionary.ErrNotFound)
}

func TestLookup_EscapesWord(t *testing.T) {
	var gotPath atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.EscapedPath())
		w.Write([]byte(testutil.HelloJSON))
	}))
	defer server.Close()

	client := dictionary.NewClient(dictionary.WithBaseURL(server.URL + "/"))

	_, err := client.Lookup(context.Background(), "ice cream/x")
	require.NoError(t, err)
	assert.Equal(t, "/ice%20cream%2Fx", gotPath.Load())
}

func TestLookup_ContextCanceled(t *testing.T) {
	srv := testutil.NewDictionaryServer(t)
	client := dictionary.NewClient(dictionary.WithBaseURL(srv.BaseURL()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Lookup(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookup_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := dictionary.NewClient(
		dictionary.WithBaseURL(server.URL+"/"),
		dictionary.WithTimeout(50*time.Millisecond),
	)

	_, err := client.Lookup(context.Background(), "hello")
	require.Error(t, err)
}

func TestLookup_BreakerOpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := dictionary.NewClient(
		dictionary.WithBaseURL(server.URL+"/"),
		dictionary.WithBreaker(dictionary.BreakerSettings{MaxFailures: 2, Cooldown: time.Minute}),
	)

	for i := 0; i < 2; i++ {
		_, err := client.Lookup(context.Background(), "hello")
		require.ErrorIs(t, err, dictionary.ErrUnexpectedStatus)
	}

	_, err := client.Lookup(context.Background(), "hello")
	assert.ErrorIs(t, err, dictionary.ErrUnavailable)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the server")
}

func TestLookup_NotFoundDoesNotTripBreaker(t *testing.T) {
	srv := testutil.NewDictionaryServer(t)
	client := dictionary.NewClient(
		dictionary.WithBaseURL(srv.BaseURL()),
		dictionary.WithBreaker(dictionary.BreakerSettings{MaxFailures: 1, Cooldown: time.Minute}),
	)

	for i := 0; i < 3; i++ {
		_, err := client.Lookup(context.Background(), "nope")
		require.ErrorIs(t, err, dictionary.ErrNotFound)
	}

	_, err := client.Lookup(context.Background(), "hello")
	assert.NoError(t, err)
}

func TestAPIError(t *testing.T) {
	err := &dictionary.APIError{StatusCode: 404, Title: "No Definitions Found"}
	assert.Equal(t, "dictionary api: 404 No Definitions Found", err.Error())
	assert.True(t, errors.Is(err, dictionary.ErrNotFound))

	err = &dictionary.APIError{StatusCode: 500}
	assert.Equal(t, "dictionary api: status 500", err.Error())
	assert.True(t, errors.Is(err, dictionary.ErrUnexpectedStatus))
}

func TestAudioURL(t *testing.T) {
	tests := []struct {
		name    string
		entries []dictionary.Entry
		want    string
	}{
		{"no entries", nil, ""},
		{"no phonetics", []dictionary.Entry{{Phonetics: []dictionary.Phonetic{}}}, ""},
		{"first phonetic wins", testutil.HelloEntries(), testutil.HelloAudioURL},
		{
			"first phonetic empty audio is kept",
			[]dictionary.Entry{{Phonetics: []dictionary.Phonetic{{Audio: ""}, {Audio: "https://x/a.mp3"}}}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dictionary.AudioURL(tt.entries))
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := dictionary.NewClient()
	assert.Equal(t, dictionary.DefaultBaseURL, client.BaseURL())
}
