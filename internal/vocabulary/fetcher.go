package vocabulary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultURL = "http://schema.rdfs.org/all.json"

type Fetcher struct {
	url    string
	client *http.Client
}

func NewFetcher(url string, client *http.Client) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{url: url, client: client}
}

func (f *Fetcher) URL() string {
	return f.url
}

// Fetch downloads and decodes the vocabulary document. An empty body is
// reported as ErrVocabularyUnavailable.
func (f *Fetcher) Fetch(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build vocabulary request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVocabularyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrVocabularyUnavailable, f.url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVocabularyUnavailable, err)
	}

	return Decode(body)
}

// Decode parses a vocabulary document from raw JSON.
func Decode(body []byte) (*Document, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrVocabularyUnavailable)
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %v", ErrVocabularyUnavailable, err)
	}
	return &doc, nil
}
