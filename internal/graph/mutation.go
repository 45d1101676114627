package graph

import (
	"context"
	"fmt"

	"priyasi-storefront/internal/cart"
	"priyasi-storefront/internal/catalog"
	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/variant"

	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

type AddToCartInput struct {
	Handle    string
	VariantID *gql.ID
	Options   *[]SelectedOptionInput
	Quantity  *int32
}

// resolveVariant picks a variant by explicit id, else by option values, else the
// product's default.
func resolveVariant(p *catalog.Product, id *gql.ID, opts []SelectedOptionInput) (*catalog.Variant, error) {
	if id != nil {
		v, ok := p.VariantByID(string(*id))
		if !ok {
			return nil, ErrVariantNotFound
		}
		return v, nil
	}
	v, err := variant.FromOptions(p, toSelectedOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVariantNotFound, err)
	}
	return v, nil
}

func (r *Resolver) AddToCart(ctx context.Context, args struct{ Input AddToCartInput }) (*cartResolver, error) {
	in := args.Input
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "resolver"),
		zap.String("method", "AddToCart"),
		zap.String("handle", in.Handle),
	)

	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	p := r.Catalog.ProductByHandle(ctx, in.Handle)
	if p == nil {
		return nil, ErrProductNotFound
	}

	var opts []SelectedOptionInput
	if in.Options != nil {
		opts = *in.Options
	}
	v, err := resolveVariant(p, in.VariantID, opts)
	if err != nil {
		log.Info("add to cart rejected", zap.Error(err))
		return nil, err
	}

	qty := 1
	if in.Quantity != nil {
		qty = int(*in.Quantity)
	}
	if err := s.Cart.AddItem(ctx, cart.NewLineItem(p, v, qty)); err != nil {
		return nil, err
	}

	log.Info("added to cart", zap.String("variant_id", v.ID), zap.Int("quantity", qty))
	return newCart(s.Cart), nil
}

type cartLineArgs struct {
	ProductID gql.ID
	VariantID gql.ID
}

func (r *Resolver) UpdateCartQuantity(ctx context.Context, args struct {
	ProductID gql.ID
	VariantID gql.ID
	Quantity  int32
}) (*cartResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	if err := s.Cart.UpdateQuantity(ctx, string(args.ProductID), string(args.VariantID), int(args.Quantity)); err != nil {
		return nil, err
	}
	return newCart(s.Cart), nil
}

func (r *Resolver) RemoveFromCart(ctx context.Context, args cartLineArgs) (*cartResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	if err := s.Cart.RemoveItem(ctx, string(args.ProductID), string(args.VariantID)); err != nil {
		return nil, err
	}
	return newCart(s.Cart), nil
}

func (r *Resolver) ClearCart(ctx context.Context) (*cartResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	s.Cart.Clear(ctx)
	return newCart(s.Cart), nil
}

func (r *Resolver) AddToWishlist(ctx context.Context, args struct{ Handle string }) ([]*productResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	p := r.Catalog.ProductByHandle(ctx, args.Handle)
	if p == nil {
		return nil, ErrProductNotFound
	}
	if err := s.Wishlist.AddItem(ctx, *p); err != nil {
		return nil, err
	}
	return newProducts(s.Wishlist.Items()), nil
}

func (r *Resolver) RemoveFromWishlist(ctx context.Context, args struct{ ProductID gql.ID }) ([]*productResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	s.Wishlist.RemoveItem(ctx, string(args.ProductID))
	return newProducts(s.Wishlist.Items()), nil
}

func (r *Resolver) ClearWishlist(ctx context.Context) ([]*productResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	s.Wishlist.ClearWishlist(ctx)
	return newProducts(s.Wishlist.Items()), nil
}

// ViewProduct records a product detail view and returns the updated history.
func (r *Resolver) ViewProduct(ctx context.Context, args struct{ Handle string }) ([]string, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	s.Recent.AddProduct(ctx, args.Handle)
	return s.Recent.Handles(), nil
}

func (r *Resolver) ClearHistory(ctx context.Context) ([]string, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	s.Recent.ClearHistory(ctx)
	return s.Recent.Handles(), nil
}
