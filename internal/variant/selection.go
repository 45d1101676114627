package variant

import (
	"maps"

	"priyasi-storefront/internal/catalog"
)

// Selection is the option picker state of a product detail or quick view.
// It always holds a variant: it starts on the first listed one and an edit that
// matches nothing keeps the previous variant.
type Selection struct {
	product  *catalog.Product
	selected map[string]string
	current  *catalog.Variant
}

func NewSelection(p *catalog.Product) (*Selection, error) {
	if p == nil || len(p.Variants) == 0 {
		return nil, ErrNoVariants
	}

	first := &p.Variants[0]
	return &Selection{
		product:  p,
		selected: OptionsOf(*first),
		current:  first,
	}, nil
}

// Choose sets one option and re-resolves. It reports whether the variant changed to a
// match; on a miss the chosen value is still recorded but the variant stays put.
func (s *Selection) Choose(name, value string) (bool, error) {
	if !s.product.HasOption(name) {
		return false, ErrUnknownOption
	}

	s.selected[name] = value

	v, ok := Resolve(s.product.Variants, s.selected)
	if !ok {
		return false, nil
	}
	s.current = v
	return true, nil
}

func (s *Selection) Variant() catalog.Variant {
	return *s.current
}

func (s *Selection) Options() map[string]string {
	return maps.Clone(s.selected)
}
