package browse

import (
	"fmt"
	"slices"
	"strings"

	"priyasi-storefront/internal/utils"
)

type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

const (
	CategoryAll = "all"

	// DefaultMaxPrice is the upper end of the price slider.
	DefaultMaxPrice = 10000
)

// SizeVocabulary is the fixed list of sizes the filter panel offers.
var SizeVocabulary = []string{"XS", "S", "M", "L", "XL", "XXL", "Free Size"}

var categorySlugs = map[string]string{
	"kurtas": "Kurta",
	"sarees": "Saree",
}

// PriceRange is an inclusive bound on a product's minimum variant price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FilterState struct {
	Category string     `json:"category"`
	Price    PriceRange `json:"price"`
	Sizes    []string   `json:"sizes"`
	Sort     SortOrder  `json:"sort"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Price:    PriceRange{Min: 0, Max: DefaultMaxPrice},
		Sizes:    []string{},
		Sort:     SortFeatured,
	}
}

// Active reports whether any price or size filter differs from the defaults.
func (f FilterState) Active(maxPrice float64) bool {
	return f.Price.Min != 0 || f.Price.Max != maxPrice || len(f.Sizes) > 0
}

// ParseSortOrder accepts the short and the long spelling of the price orders.
// Empty means featured.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "featured":
		return SortFeatured, nil
	case "newest":
		return SortNewest, nil
	case "price-asc", "price-ascending":
		return SortPriceAsc, nil
	case "price-desc", "price-descending":
		return SortPriceDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
}

// CategoryFromSlug maps a collection route slug to the product type label.
// Unknown slugs are used as the label itself.
func CategoryFromSlug(slug string) string {
	key := utils.Slugify(slug)
	if key == "" || key == CategoryAll {
		return CategoryAll
	}
	if label, ok := categorySlugs[key]; ok {
		return label
	}
	return strings.TrimSpace(slug)
}

// ToggleSize adds size to the selection or removes it if already present.
func ToggleSize(sizes []string, size string) []string {
	if i := slices.Index(sizes, size); i >= 0 {
		return slices.Delete(slices.Clone(sizes), i, i+1)
	}
	return append(slices.Clone(sizes), size)
}

// Validate rejects a price window whose bounds are negative or inverted.
func (f FilterState) Validate() error {
	if f.Price.Min < 0 || f.Price.Max < f.Price.Min {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidPriceRange, f.Price.Min, f.Price.Max)
	}
	return nil
}
