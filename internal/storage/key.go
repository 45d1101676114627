package storage

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Namespaces of the three per-shopper blobs.
const (
	NamespaceCart           = "preyasi-cart"
	NamespaceWishlist       = "preyasi-wishlist"
	NamespaceRecentlyViewed = "preyasi-recently-viewed"
)

// Key builds "<namespace>:<digest>" where digest is a blake2b-256 of the shopper id
// truncated to 128 bits.
// Raw shopper ids never reach the backend.
func Key(namespace, shopperID string) string {
	sum := blake2b.Sum256([]byte(shopperID))
	return namespace + ":" + hex.EncodeToString(sum[:16])
}
