package browse

import "errors"

var (
	ErrInvalidSortOrder  = errors.New("invalid sort order")
	ErrInvalidPriceRange = errors.New("invalid price range")
)
