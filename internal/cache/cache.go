package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores fetched card lookup responses. The conversion pipeline
// itself never caches; only the remote fetch collaborator does.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a lookup URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "cardir:v1:" + hex.EncodeToString(hash[:])
}
