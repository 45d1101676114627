package graph

import (
	"priyasi-storefront/internal/cart"
	"priyasi-storefront/internal/catalog"

	gql "github.com/graph-gophers/graphql-go"
)

type productResolver struct {
	p catalog.Product
}

func newProducts(products []catalog.Product) []*productResolver {
	out := make([]*productResolver, 0, len(products))
	for _, p := range products {
		out = append(out, &productResolver{p: p})
	}
	return out
}

func (r *productResolver) ID() gql.ID          { return gql.ID(r.p.ID) }
func (r *productResolver) Title() string       { return r.p.Title }
func (r *productResolver) Handle() string      { return r.p.Handle }
func (r *productResolver) Description() string { return r.p.Description }
func (r *productResolver) ProductType() string { return r.p.ProductType }

func (r *productResolver) FeaturedImage() *string {
	if url := r.p.FirstImageURL(); url != "" {
		return &url
	}
	return nil
}

func (r *productResolver) Images() []*imageResolver {
	out := make([]*imageResolver, 0, len(r.p.Images))
	for _, img := range r.p.Images {
		out = append(out, &imageResolver{img: img})
	}
	return out
}

func (r *productResolver) PriceRange() *priceRangeResolver {
	return &priceRangeResolver{pr: r.p.PriceRange}
}

func (r *productResolver) Options() []*optionResolver {
	out := make([]*optionResolver, 0, len(r.p.Options))
	for _, o := range r.p.Options {
		out = append(out, &optionResolver{o: o})
	}
	return out
}

func (r *productResolver) Variants() []*variantResolver {
	out := make([]*variantResolver, 0, len(r.p.Variants))
	for _, v := range r.p.Variants {
		out = append(out, &variantResolver{v: v})
	}
	return out
}

type imageResolver struct {
	img catalog.Image
}

func (r *imageResolver) URL() string { return r.img.URL }

func (r *imageResolver) AltText() *string {
	if r.img.AltText == "" {
		return nil
	}
	return &r.img.AltText
}

type priceRangeResolver struct {
	pr catalog.PriceRange
}

func (r *priceRangeResolver) MinVariantPrice() *moneyResolver {
	return &moneyResolver{m: r.pr.MinVariantPrice}
}

type moneyResolver struct {
	m catalog.Money
}

func (r *moneyResolver) Amount() string       { return r.m.Amount }
func (r *moneyResolver) CurrencyCode() string { return r.m.CurrencyCode }
func (r *moneyResolver) Formatted() string    { return r.m.Format() }

type optionResolver struct {
	o catalog.Option
}

func (r *optionResolver) Name() string     { return r.o.Name }
func (r *optionResolver) Values() []string { return r.o.Values }

type variantResolver struct {
	v catalog.Variant
}

func (r *variantResolver) ID() gql.ID             { return gql.ID(r.v.ID) }
func (r *variantResolver) Title() string          { return r.v.Title }
func (r *variantResolver) Price() *moneyResolver  { return &moneyResolver{m: r.v.Price} }
func (r *variantResolver) AvailableForSale() bool { return r.v.AvailableForSale }
func (r *variantResolver) SelectedOptions() []*selectedOptionResolver {
	return newSelectedOptions(r.v.SelectedOptions)
}

type selectedOptionResolver struct {
	o catalog.SelectedOption
}

func newSelectedOptions(opts []catalog.SelectedOption) []*selectedOptionResolver {
	out := make([]*selectedOptionResolver, 0, len(opts))
	for _, o := range opts {
		out = append(out, &selectedOptionResolver{o: o})
	}
	return out
}

func (r *selectedOptionResolver) Name() string  { return r.o.Name }
func (r *selectedOptionResolver) Value() string { return r.o.Value }

type cartResolver struct {
	items    []cart.LineItem
	total    int
	degraded bool
}

func newCart(s *cart.Store) *cartResolver {
	return &cartResolver{items: s.Items(), total: s.TotalQuantity(), degraded: s.Degraded()}
}

func (r *cartResolver) Items() []*cartLineResolver {
	out := make([]*cartLineResolver, 0, len(r.items))
	for _, li := range r.items {
		out = append(out, &cartLineResolver{li: li})
	}
	return out
}

func (r *cartResolver) TotalQuantity() int32 { return int32(r.total) }
func (r *cartResolver) Degraded() bool       { return r.degraded }

type cartLineResolver struct {
	li cart.LineItem
}

func (r *cartLineResolver) ProductID() gql.ID     { return gql.ID(r.li.ProductID) }
func (r *cartLineResolver) ProductTitle() string  { return r.li.ProductTitle }
func (r *cartLineResolver) Handle() string        { return r.li.Handle }
func (r *cartLineResolver) VariantID() gql.ID     { return gql.ID(r.li.VariantID) }
func (r *cartLineResolver) VariantTitle() string  { return r.li.VariantTitle }
func (r *cartLineResolver) Price() *moneyResolver { return &moneyResolver{m: r.li.Price} }
func (r *cartLineResolver) Quantity() int32       { return int32(r.li.Quantity) }

func (r *cartLineResolver) SelectedOptions() []*selectedOptionResolver {
	return newSelectedOptions(r.li.SelectedOptions)
}

func (r *cartLineResolver) Image() *string {
	if r.li.ImageURL == "" {
		return nil
	}
	return &r.li.ImageURL
}
