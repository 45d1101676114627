package storage

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/blake2b"
)

func TestKey(t *testing.T) {
	k := Key(NamespaceCart, "shopper-1")

	assert.True(t, strings.HasPrefix(k, NamespaceCart+":"))
	assert.Len(t, strings.TrimPrefix(k, NamespaceCart+":"), 32)
	assert.NotContains(t, k, "shopper-1")
	assert.Equal(t, k, Key(NamespaceCart, "shopper-1"))
}

func TestKey_Digest(t *testing.T) {
	sum := blake2b.Sum256([]byte("shopper-1"))

	assert.Equal(t, NamespaceWishlist+":"+hex.EncodeToString(sum[:16]), Key(NamespaceWishlist, "shopper-1"))
}

func TestKey_Isolation(t *testing.T) {
	seen := map[string]bool{}
	for _, ns := range []string{NamespaceCart, NamespaceWishlist, NamespaceRecentlyViewed} {
		for _, shopper := range []string{"a", "b"} {
			k := Key(ns, shopper)
			assert.False(t, seen[k], "duplicate key %s", k)
			seen[k] = true
		}
	}
	assert.Len(t, seen, 6)
}
