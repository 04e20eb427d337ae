package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geodots/internal/config"
	"github.com/woozymasta/geodots/internal/geo"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const sample = `{"type":"FeatureCollection","features":[
	{"type":"Feature","geometry":{"type":"Polygon","coordinates":[]},
	 "properties":{"geo_point_2d":{"lon":2.35,"lat":48.85},"name":"France","continent":"Europe"}},
	{"type":"Feature","geometry":{"type":"Polygon","coordinates":[]},
	 "properties":{"geo_point_2d":{"lon":138.0,"lat":37.5},"name":"Japan","continent":"Asia"}}]}`

const dots = `{"lon":2.35,"lat":48.85,"country":"France","continent":"Europe"}` + "\n"

func newTestServer(t *testing.T) (*ServerContext, http.Handler) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "world.geojson")
	cfg.Output = filepath.Join(dir, "dots.ndjson")
	require.NoError(t, os.WriteFile(cfg.Input, []byte(sample), 0644))
	require.NoError(t, os.WriteFile(cfg.Output, []byte(dots), 0644))

	s := NewServerContext(cfg)
	return s, s.Routes()
}

func get(h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestContinents(t *testing.T) {
	_, h := newTestServer(t)

	rr := get(h, "/api/continents")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got map[geo.Continent][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, map[geo.Continent][]string{
		geo.Europe: {"France"},
		geo.Asia:   {"Japan"},
	}, got)
}

func TestContinentsWithoutInput(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	cfg := config.Default()
	cfg.Input = filepath.Join(t.TempDir(), "missing.geojson")
	s := NewServerContext(cfg)
	require.Empty(t, s.Continents)

	rr := get(s.Routes(), "/api/continents")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{}`, rr.Body.String())
}

func TestDots(t *testing.T) {
	_, h := newTestServer(t)

	rr := get(h, "/data/dots.ndjson")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/x-ndjson", rr.Header().Get("Content-Type"))
	require.Equal(t, dots, rr.Body.String())

	etag := rr.Header().Get("ETag")
	require.NotEmpty(t, etag)
	rr = get(h, "/data/dots.ndjson", "If-None-Match", etag)
	require.Equal(t, http.StatusNotModified, rr.Code)
}

func TestDataNotFound(t *testing.T) {
	_, h := newTestServer(t)

	require.Equal(t, http.StatusNotFound, get(h, "/data/dots.webp").Code)
	require.Equal(t, http.StatusNotFound, get(h, "/data/world.geojson").Code)
}

func TestIndexAndFavicon(t *testing.T) {
	s, h := newTestServer(t)

	rr := get(h, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	require.Equal(t, s.IndexHTML, rr.Body.Bytes())
	require.Contains(t, rr.Body.String(), "data/dots.ndjson")

	rr = get(h, "/", "If-None-Match", rr.Header().Get("ETag"))
	require.Equal(t, http.StatusNotModified, rr.Code)

	require.Equal(t, http.StatusNotFound, get(h, "/style.css").Code)

	rr = get(h, "/favicon.svg")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Body.String(), "<svg")
}

func TestLevelFor(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, levelFor(http.StatusOK))
	require.Equal(t, zerolog.DebugLevel, levelFor(http.StatusNotModified))
	require.Equal(t, zerolog.WarnLevel, levelFor(http.StatusNotFound))
	require.Equal(t, zerolog.ErrorLevel, levelFor(http.StatusInternalServerError))
}
