package vocabulary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vocabularyServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetcher_Fetch(t *testing.T) {
	srv, _ := vocabularyServer(t, http.StatusOK, sampleJSON)

	doc, err := NewFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Organization", "Person"}, doc.TypeNames())
}

func TestFetcher_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, sampleJSON},
		{"not found", http.StatusNotFound, ""},
		{"empty body", http.StatusOK, ""},
		{"malformed body", http.StatusOK, "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := vocabularyServer(t, tt.status, tt.body)
			doc, err := NewFetcher(srv.URL, srv.Client()).Fetch(context.Background())
			assert.ErrorIs(t, err, ErrVocabularyUnavailable)
			assert.Nil(t, doc)
		})
	}
}

func TestFetcher_Unreachable(t *testing.T) {
	srv, _ := vocabularyServer(t, http.StatusOK, sampleJSON)
	url := srv.URL
	srv.Close()

	_, err := NewFetcher(url, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrVocabularyUnavailable)
}

func TestNewFetcher_DefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewFetcher("", nil).URL())
}

func TestLoader_CachesAfterFirstFetch(t *testing.T) {
	srv, hits := vocabularyServer(t, http.StatusOK, sampleJSON)
	cache := NewMemoryCache()
	loader := NewLoader(cache, NewFetcher(srv.URL, srv.Client()))

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	second, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), hits.Load())

	cached, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, cached)
}

func TestLoader_Refresh(t *testing.T) {
	srv, hits := vocabularyServer(t, http.StatusOK, sampleJSON)
	loader := NewLoader(nil, NewFetcher(srv.URL, srv.Client()))

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	refreshed, err := loader.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, refreshed)
	assert.Equal(t, int32(2), hits.Load())
}

func TestLoader_FailedFetchLeavesCacheEmpty(t *testing.T) {
	srv, hits := vocabularyServer(t, http.StatusOK, "")
	cache := NewMemoryCache()
	loader := NewLoader(cache, NewFetcher(srv.URL, srv.Client()))

	doc, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, ErrVocabularyUnavailable)
	assert.Nil(t, doc)
	assert.Equal(t, int32(1), hits.Load())

	cached, _ := cache.Get(context.Background())
	assert.Nil(t, cached)
}

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context) (*Document, error) {
	return nil, errors.New("cache down")
}

func (brokenCache) Set(ctx context.Context, doc *Document) error {
	return errors.New("cache down")
}

func TestLoader_CacheErrorsFallBackToSource(t *testing.T) {
	srv, _ := vocabularyServer(t, http.StatusOK, sampleJSON)
	loader := NewLoader(brokenCache{}, NewFetcher(srv.URL, srv.Client()))

	doc, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestLoader_NoSource(t *testing.T) {
	_, err := NewLoader(nil, nil).Load(context.Background())
	assert.ErrorIs(t, err, ErrVocabularyUnavailable)
}
