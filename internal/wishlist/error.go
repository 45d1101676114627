package wishlist

import "errors"

var ErrInvalidProduct = errors.New("wishlist product needs an id")
