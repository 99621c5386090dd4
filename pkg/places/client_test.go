package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchText_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, searchTextPath, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, fieldMask, r.Header.Get("X-Goog-FieldMask"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req searchTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Lake Powhatan, Asheville, NC", req.TextQuery)
		assert.Equal(t, 1, req.MaxResultCount)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"places": [{
				"id": "ChIJtest",
				"displayName": {"text": "Lake Powhatan Campground"},
				"formattedAddress": "375 Wesley Branch Rd, Asheville, NC 28806, USA",
				"location": {"latitude": 35.4862, "longitude": -82.6254}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	place, err := c.SearchText(context.Background(), "Lake Powhatan, Asheville, NC")
	require.NoError(t, err)

	assert.Equal(t, "ChIJtest", place.ID)
	assert.Equal(t, "Lake Powhatan Campground", place.DisplayName)
	assert.Equal(t, "375 Wesley Branch Rd, Asheville, NC 28806, USA", place.FormattedAddress)
	assert.InDelta(t, 35.4862, place.Latitude, 0.0001)
	assert.InDelta(t, -82.6254, place.Longitude, 0.0001)
}

func TestSearchText_NoAPIKey(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient("", WithBaseURL(srv.URL))
	_, err := c.SearchText(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Zero(t, calls.Load(), "no request should be sent without a key")
}

func TestSearchText_EmptyPlaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.SearchText(context.Background(), "Nowhere Campground, Nowhere, ZZ")

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchText_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := c.SearchText(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestSearchText_MalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.SearchText(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestSearchText_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.SearchText(ctx, "anything")
	assert.Error(t, err)
}
