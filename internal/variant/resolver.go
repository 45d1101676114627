package variant

import "priyasi-storefront/internal/catalog"

// Resolve returns the variant whose option set equals selected: same option names,
// same value for each. Order does not matter. The first match wins.
func Resolve(variants []catalog.Variant, selected map[string]string) (*catalog.Variant, bool) {
	for i := range variants {
		if matches(variants[i], selected) {
			return &variants[i], true
		}
	}
	return nil, false
}

func matches(v catalog.Variant, selected map[string]string) bool {
	if len(v.SelectedOptions) != len(selected) {
		return false
	}
	for _, o := range v.SelectedOptions {
		value, ok := selected[o.Name]
		if !ok || value != o.Value {
			return false
		}
	}
	return true
}

// OptionsOf turns a variant's option pairs into a selection map.
func OptionsOf(v catalog.Variant) map[string]string {
	out := make(map[string]string, len(v.SelectedOptions))
	for _, o := range v.SelectedOptions {
		out[o.Name] = o.Value
	}
	return out
}

// FromOptions resolves an explicit option list against the product.
// An empty list means "the default variant", i.e. the first listed one.
func FromOptions(p *catalog.Product, opts []catalog.SelectedOption) (*catalog.Variant, error) {
	if len(p.Variants) == 0 {
		return nil, ErrNoVariants
	}
	if len(opts) == 0 {
		return &p.Variants[0], nil
	}

	selected := make(map[string]string, len(opts))
	for _, o := range opts {
		if !p.HasOption(o.Name) {
			return nil, ErrUnknownOption
		}
		selected[o.Name] = o.Value
	}

	v, ok := Resolve(p.Variants, selected)
	if !ok {
		return nil, ErrNoMatch
	}
	return v, nil
}
