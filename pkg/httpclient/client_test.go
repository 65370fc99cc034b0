package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"datewise/pkg/utils"
)

func newTestClient(maxRetries int) *Client {
	return New(Options{
		Timeout:    200 * time.Millisecond,
		MaxRetries: maxRetries,
		RateLimit:  1000,
		Burst:      100,
	}, zap.NewNop())
}

func TestFetchJSON_Success(t *testing.T) {
	var gotHeader, gotUA, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Goog-FieldMask")
		gotUA = r.Header.Get("User-Agent")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(2).FetchJSON(context.Background(), Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Header: http.Header{"X-Goog-FieldMask": []string{"id"}},
		Body:   []byte(`{"input":"marina"}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, "id", gotHeader)
	assert.Equal(t, "datewise/unknown", gotUA)
	assert.Equal(t, `{"input":"marina"}`, gotBody)
}

func TestFetchJSON_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	raw, err := newTestClient(2).FetchJSON(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchJSON_ExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(2).FetchJSON(context.Background(), Request{URL: srv.URL})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUpstreamUnreachable))
	assert.EqualValues(t, 3, calls.Load(), "one attempt plus two retries")

	var gerr *googleapi.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, http.StatusInternalServerError, gerr.Code)
}

func TestFetchJSON_InvalidJSONIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(1).FetchJSON(context.Background(), Request{URL: srv.URL})
	assert.True(t, errors.Is(err, utils.ErrUpstreamUnreachable))
	assert.EqualValues(t, 2, calls.Load())
}

func TestFetchJSON_PerAttemptTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	_, err := newTestClient(0).FetchJSON(context.Background(), Request{URL: srv.URL})
	assert.True(t, errors.Is(err, utils.ErrUpstreamUnreachable))
	assert.Less(t, time.Since(start), time.Second)
}

func TestRedactURL(t *testing.T) {
	got := RedactURL("https://api.mapbox.com/search?q=x&access_token=pk.secret")
	assert.NotContains(t, got, "pk.secret")
	assert.Contains(t, got, "access_token=REDACTED")
	assert.Contains(t, got, "q=x")

	assert.Equal(t, "https://places.googleapis.com/v1/places:autocomplete",
		RedactURL("https://places.googleapis.com/v1/places:autocomplete"))
}
