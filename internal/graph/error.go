package graph

import "errors"

var (
	ErrNoShopper       = errors.New("no shopper bound to request")
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("no variant matches the selected options")
)
