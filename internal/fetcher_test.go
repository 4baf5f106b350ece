package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher() *HTTPFetcher {
	f := NewHTTPFetcher(5 * time.Second)
	f.retryDelay = 0
	return f
}

func TestHTTPFetcherGetRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := newTestFetcher().Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, 3, attempts)
}

func TestHTTPFetcherGetGivesUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestFetcher().Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestHTTPFetcherGetWatchPageConsent(t *testing.T) {
	const consentPage = `<form action="https://consent.youtube.com/s"><input name="v" value="cb.20210328"></form>`
	const videoPage = `"playabilityStatus":{"status":"OK"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("CONSENT"); err == nil && cookie.Value == "YES+cb.20210328" {
			w.Write([]byte(videoPage))
			return
		}
		w.Write([]byte(consentPage))
	}))
	defer server.Close()

	origURL := watchPageURL
	watchPageURL = server.URL + "/watch?v=%s"
	t.Cleanup(func() { watchPageURL = origURL })

	body, err := newTestFetcher().GetWatchPage(context.Background(), "abc123def45")
	require.NoError(t, err)
	assert.Equal(t, videoPage, string(body))
}

func TestHTTPFetcherPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	body, err := newTestFetcher().PostJSON(context.Background(), server.URL, []byte(`{"videoId":"abc123def45"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}
