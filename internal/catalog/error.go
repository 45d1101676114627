package catalog

import "errors"

var (
	// -- Input --
	ErrInvalidPrice  = errors.New("invalid price amount")
	ErrInvalidHandle = errors.New("invalid product handle")

	// -- Upstream --
	ErrUnexpectedStatus = errors.New("unexpected storefront status")
	ErrGraphQL          = errors.New("graphql error")
	ErrMalformedBody    = errors.New("malformed storefront response")
)
