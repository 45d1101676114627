package variant

import "errors"

var (
	ErrNoVariants    = errors.New("product has no variants")
	ErrUnknownOption = errors.New("option not defined on product")
	ErrNoMatch       = errors.New("no variant matches the selected options")
)
