package seasonconfig

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/rugby-league/internal/platform/logging"
)

func TestSourceLoadsSeasonFromDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"currentSeason":"2025-26"}`))
	}))
	defer srv.Close()

	src := NewSource(Config{URL: srv.URL, FallbackSeason: "2024-25"}, logging.NewNop())
	src.Load(context.Background())

	if got := src.CurrentSeason(context.Background()); got != "2025-26" {
		t.Fatalf("unexpected season: %s", got)
	}
}

func TestSourceFallsBackOnFetchFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewSource(Config{URL: srv.URL, FallbackSeason: "2024-25"}, logging.NewNop())
	src.Load(context.Background())

	if got := src.CurrentSeason(context.Background()); got != "2024-25" {
		t.Fatalf("expected fallback season, got %s", got)
	}
}

func TestSourceFallsBackOnMalformedDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"currentSeason":""}`))
	}))
	defer srv.Close()

	src := NewSource(Config{URL: srv.URL, FallbackSeason: "2024-25"}, logging.NewNop())
	src.Load(context.Background())

	if got := src.CurrentSeason(context.Background()); got != "2024-25" {
		t.Fatalf("expected fallback season, got %s", got)
	}
}

func TestSourceWithoutURLUsesFallback(t *testing.T) {
	t.Parallel()

	src := NewSource(Config{FallbackSeason: "2025-26"}, logging.NewNop())
	src.Load(context.Background())

	if got := src.CurrentSeason(context.Background()); got != "2025-26" {
		t.Fatalf("expected fallback season, got %s", got)
	}
}
