package browse

import (
	"slices"
	"strings"

	"priyasi-storefront/internal/catalog"

	"github.com/shopspring/decimal"
)

// DeriveView computes the displayed products from the full list. It never mutates
// products. Steps run in a fixed order: category, price, size, sort.
func DeriveView(products []catalog.Product, f FilterState) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))

	lower := decimal.NewFromFloat(f.Price.Min)
	upper := decimal.NewFromFloat(f.Price.Max)
	sizes := make(map[string]struct{}, len(f.Sizes))
	for _, s := range f.Sizes {
		sizes[s] = struct{}{}
	}

	for _, p := range products {
		if !inCategory(p, f.Category) {
			continue
		}
		price, err := p.PriceRange.MinVariantPrice.Decimal()
		if err != nil || price.LessThan(lower) || price.GreaterThan(upper) {
			continue
		}
		if len(sizes) > 0 && !hasSize(p, sizes) {
			continue
		}
		out = append(out, p)
	}

	sortView(out, f.Sort)
	return out
}

func inCategory(p catalog.Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return p.ProductType == category
}

func hasSize(p catalog.Product, sizes map[string]struct{}) bool {
	for _, v := range p.Variants {
		for _, o := range v.SelectedOptions {
			if !strings.EqualFold(o.Name, "size") {
				continue
			}
			if _, ok := sizes[o.Value]; ok {
				return true
			}
		}
	}
	return false
}

// sortView orders in place. "newest" reverses the filtered order: products carry no
// creation time, so upstream order stands in for recency.
func sortView(products []catalog.Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return comparePrice(a, b)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return comparePrice(b, a)
		})
	case SortNewest:
		slices.Reverse(products)
	}
}

// comparePrice compares minimum prices. Unparseable prices are never compared by
// value: they sort after every parseable one and keep their relative order.
func comparePrice(a, b catalog.Product) int {
	pa, errA := a.PriceRange.MinVariantPrice.Decimal()
	pb, errB := b.PriceRange.MinVariantPrice.Decimal()
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return pa.Cmp(pb)
}
