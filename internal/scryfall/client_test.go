package scryfall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/karnai/cardir/internal/model"
)

func testConfig(t *testing.T, baseURL string) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.HTTP.BaseURL = baseURL
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.Cache.Dir = t.TempDir()
	cfg.RateLimiting.RequestsPerSecond = 1000
	cfg.RateLimiting.BurstSize = 100
	return cfg
}

func silenceBackoff(t *testing.T) {
	t.Helper()
	orig := sleepFunc
	sleepFunc = func(time.Duration) {}
	t.Cleanup(func() { sleepFunc = orig })
}

func TestClient_CardByName(t *testing.T) {
	var apiCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		apiCalls.Add(1)
		if got := r.URL.Query().Get("exact"); got != "Lightning Bolt" {
			t.Errorf("expected exact=Lightning Bolt, got %q", got)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("expected Accept application/json, got %q", accept)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "cardir/") {
			t.Errorf("expected cardir User-Agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "Lightning Bolt"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(t, server.URL))

	data, err := client.CardByName(context.Background(), "Lightning Bolt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(data), "Lightning Bolt") {
		t.Errorf("unexpected body: %s", data)
	}
	if apiCalls.Load() != 1 {
		t.Errorf("expected 1 API call, got %d", apiCalls.Load())
	}
}

func TestClient_SecondLookupServedFromCache(t *testing.T) {
	var apiCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		apiCalls.Add(1)
		_, _ = w.Write([]byte(`{"name": "Rhystic Study"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(t, server.URL))

	for i := 0; i < 3; i++ {
		if _, err := client.CardByName(context.Background(), "Rhystic Study"); err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
	}

	if apiCalls.Load() != 1 {
		t.Errorf("expected 1 API call with cache enabled, got %d", apiCalls.Load())
	}
}

func TestClient_RetriesOnServerError(t *testing.T) {
	silenceBackoff(t)

	var apiCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if apiCalls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"name": "Counterspell"}`))
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.Cache.Enabled = false
	client := NewClient(cfg)

	data, err := client.CardByName(context.Background(), "Counterspell")
	if err != nil {
		t.Fatalf("expected retries to succeed, got %v", err)
	}
	if !strings.Contains(string(data), "Counterspell") {
		t.Errorf("unexpected body: %s", data)
	}
	if apiCalls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", apiCalls.Load())
	}
}

func TestClient_GivesUpAfterMaxAttempts(t *testing.T) {
	silenceBackoff(t)

	var apiCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		apiCalls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.Cache.Enabled = false
	client := NewClient(cfg)

	if _, err := client.CardByName(context.Background(), "Sol Ring"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if apiCalls.Load() != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, apiCalls.Load())
	}
}

func TestClient_NotFoundFailsImmediately(t *testing.T) {
	silenceBackoff(t)

	var apiCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		apiCalls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.Cache.Enabled = false
	client := NewClient(cfg)

	if _, err := client.CardByName(context.Background(), "No Such Card"); err == nil {
		t.Fatal("expected error for unknown card")
	}
	if apiCalls.Load() != 1 {
		t.Errorf("expected exactly 1 attempt for a 404, got %d", apiCalls.Load())
	}
}

func TestClient_RobotsDisallowBlocksFetch(t *testing.T) {
	var apiCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /cards/\n"))
			return
		}
		apiCalls.Add(1)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.Cache.Enabled = false
	client := NewClient(cfg)

	if _, err := client.CardByName(context.Background(), "Lightning Bolt"); err == nil {
		t.Fatal("expected robots.txt disallow to block the fetch")
	}
	if apiCalls.Load() != 0 {
		t.Errorf("expected no API calls, got %d", apiCalls.Load())
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Lightning Bolt", "lightning_bolt"},
		{"Jace, the Mind Sculptor", "jace_the_mind_sculptor"},
		{"Ajani's Pridemate", "ajanis_pridemate"},
		{"Nissa, Who Shakes the World", "nissa_who_shakes_the_world"},
	}

	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q): expected %s, got %s", tt.name, tt.want, got)
		}
	}
}
