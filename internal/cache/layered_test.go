package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestKey_Deterministic(t *testing.T) {
	url := "https://api.scryfall.com/cards/named?exact=Lightning+Bolt"

	if Key(url) != Key(url) {
		t.Error("expected identical keys for identical URLs")
	}
	if Key(url) == Key(url+"x") {
		t.Error("expected distinct keys for distinct URLs")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache := NewDiskCache(t.TempDir(), time.Hour)
	key := Key("https://api.scryfall.com/cards/named?exact=Counterspell")

	if _, found := cache.Get(key); found {
		t.Error("expected miss on empty cache")
	}

	value := []byte(`{"name": "Counterspell"}`)
	if err := cache.Set(key, value, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, found := cache.Get(key)
	if !found {
		t.Fatal("expected hit after set")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("expected %s, got %s", value, got)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	cache := NewDiskCache(t.TempDir(), time.Hour)
	key := Key("https://api.scryfall.com/cards/named?exact=Expired")

	if err := cache.Set(key, []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, found := cache.Get(key); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Hour, dir, time.Hour)
	key := Key("https://api.scryfall.com/cards/named?exact=Sol+Ring")
	value := []byte(`{"name": "Sol Ring"}`)

	// Seed only the disk layer, as a previous process run would have
	disk := NewDiskCache(dir, time.Hour)
	if err := disk.Set(key, value, 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	got, found := layered.Get(key)
	if !found {
		t.Fatal("expected layered cache to fall through to disk")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("expected %s, got %s", value, got)
	}

	// The hit must now be served from memory even after the disk copy
	// disappears
	if err := disk.Delete(key); err != nil {
		t.Fatalf("delete disk copy: %v", err)
	}
	if _, found := layered.Get(key); !found {
		t.Error("expected promoted entry to survive in memory")
	}
}
