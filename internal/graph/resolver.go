package graph

import (
	"context"
	"net/http"

	"priyasi-storefront/internal/browse"
	"priyasi-storefront/internal/catalog"
	"priyasi-storefront/internal/session"
	"priyasi-storefront/internal/shopper"
	"priyasi-storefront/internal/utils"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Catalog is the read side of the storefront used by the resolvers.
type Catalog interface {
	ListProducts(ctx context.Context, limit int) []catalog.Product
	ProductByHandle(ctx context.Context, handle string) *catalog.Product
	ProductsByHandles(ctx context.Context, handles []string) []catalog.Product
	Search(ctx context.Context, query string, limit int) []catalog.Product
}

type Resolver struct {
	Catalog      Catalog
	Sessions     *session.Factory
	DefaultLimit int
}

// NewSchema parses the storefront schema against r.
func NewSchema(r *Resolver) (*gql.Schema, error) {
	return gql.ParseSchema(schemaSDL, r, gql.MaxDepth(12))
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// session opens the stores of the shopper bound to ctx. Callers must Close it.
func (r *Resolver) session(ctx context.Context) (*session.Session, error) {
	id := shopper.IDFrom(ctx)
	if id == "" {
		return nil, ErrNoShopper
	}
	return r.Sessions.Open(ctx, id), nil
}

// limit picks the page size. Public callers are capped at DefaultLimit; trusted
// internal services may ask for more.
func (r *Resolver) limit(ctx context.Context, l *int32) int {
	n := r.DefaultLimit
	if l != nil && *l > 0 {
		n = int(*l)
	}
	if n > r.DefaultLimit && !utils.IsInternalRequest(ctx) {
		return r.DefaultLimit
	}
	return n
}

type ProductFilter struct {
	Category *string
	MinPrice *float64
	MaxPrice *float64
	Sizes    *[]string
	Sort     *string
}

func (f *ProductFilter) state() (browse.FilterState, error) {
	st := browse.DefaultFilterState()
	if f == nil {
		return st, nil
	}
	if f.Category != nil {
		st.Category = browse.CategoryFromSlug(*f.Category)
	}
	if f.MinPrice != nil {
		st.Price.Min = *f.MinPrice
	}
	if f.MaxPrice != nil {
		st.Price.Max = *f.MaxPrice
	}
	if f.Sizes != nil {
		st.Sizes = *f.Sizes
	}
	if f.Sort != nil {
		order, err := browse.ParseSortOrder(*f.Sort)
		if err != nil {
			return st, err
		}
		st.Sort = order
	}
	return st, st.Validate()
}

func (r *Resolver) Products(ctx context.Context, args struct {
	Filter *ProductFilter
	Limit  *int32
}) ([]*productResolver, error) {
	st, err := args.Filter.state()
	if err != nil {
		return nil, err
	}
	products := r.Catalog.ListProducts(ctx, r.limit(ctx, args.Limit))
	return newProducts(browse.DeriveView(products, st)), nil
}

func (r *Resolver) SearchProducts(ctx context.Context, args struct {
	Query string
	Limit *int32
}) []*productResolver {
	return newProducts(r.Catalog.Search(ctx, args.Query, r.limit(ctx, args.Limit)))
}

func (r *Resolver) Product(ctx context.Context, args struct{ Handle string }) *productResolver {
	p := r.Catalog.ProductByHandle(ctx, args.Handle)
	if p == nil {
		return nil
	}
	return &productResolver{p: *p}
}

type SelectedOptionInput struct {
	Name  string
	Value string
}

func toSelectedOptions(in []SelectedOptionInput) []catalog.SelectedOption {
	out := make([]catalog.SelectedOption, 0, len(in))
	for _, o := range in {
		out = append(out, catalog.SelectedOption{Name: o.Name, Value: o.Value})
	}
	return out
}

// ResolveVariant returns null when the product is unknown or the options match
// no variant.
func (r *Resolver) ResolveVariant(ctx context.Context, args struct {
	Handle  string
	Options []SelectedOptionInput
}) (*variantResolver, error) {
	p := r.Catalog.ProductByHandle(ctx, args.Handle)
	if p == nil {
		return nil, nil
	}
	v, err := resolveVariant(p, nil, args.Options)
	if err != nil {
		return nil, nil
	}
	return &variantResolver{v: *v}, nil
}

func (r *Resolver) Cart(ctx context.Context) (*cartResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return newCart(s.Cart), nil
}

func (r *Resolver) Wishlist(ctx context.Context) ([]*productResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return newProducts(s.Wishlist.Items()), nil
}

func (r *Resolver) IsInWishlist(ctx context.Context, args struct{ ProductID gql.ID }) (bool, error) {
	s, err := r.session(ctx)
	if err != nil {
		return false, err
	}
	defer s.Close()
	return s.Wishlist.IsInWishlist(string(args.ProductID)), nil
}

// RecentlyViewed resolves the stored handles to products, newest first. Handles
// that no longer resolve are skipped.
func (r *Resolver) RecentlyViewed(ctx context.Context) ([]*productResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	handles := s.Recent.Handles()
	if len(handles) == 0 {
		return []*productResolver{}, nil
	}
	return newProducts(r.Catalog.ProductsByHandles(ctx, handles)), nil
}

func (r *Resolver) Sizes() []string {
	return browse.SizeVocabulary
}
