package wishlist

import "priyasi-storefront/internal/catalog"

// Item is the product as it looked when it was saved. Later catalog changes are
// not reflected.
type Item = catalog.Product

type state struct {
	Items []Item `json:"items"`
}
