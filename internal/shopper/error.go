package shopper

import "errors"

var (
	ErrMissingSecret = errors.New("shopper token secret is empty")
	ErrInvalidToken  = errors.New("invalid shopper token")
)
