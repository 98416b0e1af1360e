// Package shortlink derives compact shareable tokens from blog slugs.
//
// The hash is intentionally non-cryptographic and collision-prone; tokens
// are resolved by recomputing the hash over the full article set, so two
// slugs hashing to the same token resolve to whichever article the store
// enumerates first.
package shortlink

import (
	"fmt"
	"strings"
)

// Marker prefixes every token. Tokens are always Marker + 8 hex chars.
const Marker = "0x"

// PathPrefix is the URL segment short links live under
const PathPrefix = "blog"

// Hash derives the short-link token for text. The accumulator wraps in
// signed 32-bit arithmetic; tokens produced with wider integers would not
// match links already in circulation.
func Hash(text string) string {
	var h int32
	for _, r := range text {
		h = (h << 5) - h + int32(r)
	}
	// abs in int64: |math.MinInt32| overflows int32
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%s%08x", Marker, v)
}

// Valid reports whether token carries the expected marker
func Valid(token string) bool {
	return strings.HasPrefix(token, Marker)
}

// ShortURL composes the public short URL for a slug
func ShortURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(baseURL, "/"), PathPrefix, Hash(slug))
}
