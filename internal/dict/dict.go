// internal/dict/dict.go
//
// Dictionary collaborator client.
//
// Two capabilities, both best-effort:
//   - IsValidWord: online lookup with bounded retries, falling back to the
//     embedded offline pool when the service is unreachable.
//   - DefinitionOf: first definition of a word, empty string on any failure
//     (callers substitute their own generic fallback).
//
// The default upstream is dictionaryapi.dev; DICT_API_URL overrides it.
// Lookups are short-lived network calls with a hard client timeout, so no
// call here blocks a match indefinitely.

package dict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordduel/internal/words"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	lookupTimeout  = 3 * time.Second
	lookupRetries  = 2
	retryBackoff   = 200 * time.Millisecond
)

// Client talks to the dictionary service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client. baseURL may be empty for the default upstream.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: lookupTimeout},
	}
}

// entry mirrors the slice-of-entries payload of dictionaryapi.dev.
type entry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// IsValidWord reports whether word is a real word. The online service is
// authoritative when reachable; transient failures fall back to the
// embedded offline pool rather than surfacing an error.
func (c *Client) IsValidWord(ctx context.Context, word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	found, err := c.lookup(ctx, word)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("dictionary unreachable, using offline pool")
		return words.IsValid(word)
	}
	return len(found) > 0
}

// DefinitionOf returns the word's first definition, or "" when the service
// fails or has none.
func (c *Client) DefinitionOf(ctx context.Context, word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	found, err := c.lookup(ctx, word)
	if err != nil || len(found) == 0 {
		return ""
	}
	for _, e := range found {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition != "" {
					return d.Definition
				}
			}
		}
	}
	return ""
}

// lookup fetches entries for word with bounded retries on transient
// failures. A 404 is a definitive "not a word", not an error.
func (c *Client) lookup(ctx context.Context, word string) ([]entry, error) {
	var lastErr error
	backoff := retryBackoff
	for attempt := 0; attempt <= lookupRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		entries, retryable, err := c.fetch(ctx, word)
		if err == nil {
			return entries, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, word string) (entries []entry, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+word, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
			return nil, false, fmt.Errorf("decode dictionary response: %w", err)
		}
		return entries, false, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("dictionary service status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("dictionary service status %d", resp.StatusCode)
	}
}

// Offline is a Client substitute backed purely by the embedded pools; used
// in tests and when running without network access.
type Offline struct{}

func (Offline) IsValidWord(ctx context.Context, word string) bool {
	return words.IsValid(word)
}

func (Offline) DefinitionOf(ctx context.Context, word string) string {
	return ""
}
