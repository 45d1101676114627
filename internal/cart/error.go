package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidLineItem = errors.New("line item needs a product and a variant")

	// -- Resource State --
	ErrLineItemNotFound = errors.New("cart line item not found")
)
