package stubserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwave/ripple/internal/config"
)

func testServeConfig() config.ServeConfig {
	return config.ServeConfig{Port: 0, ItemCount: 20}
}

func newTestRouter(catalog *Catalog) *chi.Mux {
	h := NewHandler(catalog, nil, nil)
	r := chi.NewRouter()
	r.Get("/feed/videos", h.ListVideos)
	r.Post("/droplets/{droplet_id}/react", h.React)
	return r
}

func getPage(t *testing.T, r http.Handler, query string) wirePage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/feed/videos?"+query, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page wirePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	return page
}

func TestListVideos_FirstPage(t *testing.T) {
	r := newTestRouter(NewCatalog(25))

	page := getPage(t, r, "limit=10&seed=7")
	assert.Len(t, page.Videos, 10)
	assert.True(t, page.HasMore)
	assert.NotEmpty(t, page.NextCursor)

	for _, v := range page.Videos {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.MediaURL)
		assert.NotEmpty(t, v.AuthorID)
	}
}

func TestListVideos_CursorResumes(t *testing.T) {
	r := newTestRouter(NewCatalog(15))

	first := getPage(t, r, "limit=10&seed=7")
	second := getPage(t, r, "limit=10&seed=7&cursor="+first.NextCursor)

	assert.Len(t, second.Videos, 5)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)

	seen := make(map[string]bool)
	for _, v := range first.Videos {
		seen[v.ID] = true
	}
	for _, v := range second.Videos {
		assert.False(t, seen[v.ID], "second page repeated %s", v.ID)
	}
}

func TestListVideos_BadRequests(t *testing.T) {
	r := newTestRouter(NewCatalog(10))

	for name, query := range map[string]string{
		"missing seed":   "limit=10",
		"bad limit":      "limit=zero&seed=1",
		"zero limit":     "limit=0&seed=1",
		"unknown cursor": "limit=10&seed=1&cursor=bogus",
	} {
		req := httptest.NewRequest(http.MethodGet, "/feed/videos?"+query, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestReact_RoundTrip(t *testing.T) {
	catalog := NewCatalog(10)
	r := newTestRouter(catalog)

	body, _ := json.Marshal(wireReaction{Emoji: "🔥"})
	req := httptest.NewRequest(http.MethodPost, "/droplets/droplet-0003/react", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The reaction shows up on subsequent page fetches.
	page := getPage(t, r, "limit=10&seed=1")
	found := false
	for _, v := range page.Videos {
		if v.ID == "droplet-0003" {
			found = true
			assert.Equal(t, []string{"viewer"}, v.Reactions["🔥"])
		}
	}
	assert.True(t, found)
}

func TestReact_Errors(t *testing.T) {
	r := newTestRouter(NewCatalog(10))

	body, _ := json.Marshal(wireReaction{Emoji: "🔥"})
	req := httptest.NewRequest(http.MethodPost, "/droplets/droplet-9999/react", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/droplets/droplet-0001/react", bytes.NewReader([]byte("not json")))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/droplets/droplet-0001/react", bytes.NewReader([]byte(`{"emoji":""}`)))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Routes(t *testing.T) {
	srv := New(testServeConfig(), nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/feed/videos?limit=5&seed=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page wirePage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Videos, 5)
}
