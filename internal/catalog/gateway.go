package catalog

import "context"

// Gateway is the read side of the commerce catalog API.
// FetchProductByHandle returns (nil, nil) when no product has the handle.
type Gateway interface {
	FetchProducts(ctx context.Context, limit int) ([]Product, error)
	FetchProductByHandle(ctx context.Context, handle string) (*Product, error)
}
