package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Cache is the shell-level result cache. Processing is deterministic, so a
// cached response is byte-identical to a recomputed one; caching is purely
// a transport optimization and the core pipeline never sees it.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from normalized document text and the routing
// threshold in effect. The threshold is part of the key because it shapes
// the response; a runtime threshold change must miss rather than replay a
// decision made under the old value.
func Key(text string, threshold float64) string {
	hash := sha256.Sum256([]byte(text))
	return "fnoltriage:v1:" + hex.EncodeToString(hash[:]) +
		":t=" + strconv.FormatFloat(threshold, 'g', -1, 64)
}
