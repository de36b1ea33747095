package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// SourceKey creates a cache key from a scope and the source text. The scope
// separates results produced under different scanner settings.
func SourceKey(scope, source string) string {
	hash := sha256.Sum256([]byte(source))
	return scope + ":" + hex.EncodeToString(hash[:])
}
