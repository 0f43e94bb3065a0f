// Package cache provides the layered report cache: identical manuscript
// text and genre short-circuit a full re-analysis.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ReportKey derives the cache key for one analysis run. The key covers
// everything the report depends on: the full text and the genre label.
func ReportKey(text, genre string) string {
	h := sha256.New()
	h.Write([]byte(genre))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "manuscan:v1:" + hex.EncodeToString(h.Sum(nil))
}
