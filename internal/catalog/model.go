package catalog

// Product is a storefront product as the catalog API returns it, flattened out of
// the relay edges/node shape.
type Product struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Handle      string     `json:"handle"`
	Description string     `json:"description"`
	ProductType string     `json:"productType"`
	Images      []Image    `json:"images"`
	PriceRange  PriceRange `json:"priceRange"`
	Options     []Option   `json:"options"`
	Variants    []Variant  `json:"variants"`
}

// Variant is one purchasable combination of option values.
type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
}

type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FirstImageURL returns the first image url or "".
func (p *Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// HasOption reports whether name is one of the product's option axes.
func (p *Product) HasOption(name string) bool {
	for _, o := range p.Options {
		if o.Name == name {
			return true
		}
	}
	return false
}

// VariantByID looks a variant up by id.
func (p *Product) VariantByID(id string) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// OptionValue returns the value the variant carries for the named option.
func (v *Variant) OptionValue(name string) (string, bool) {
	for _, o := range v.SelectedOptions {
		if o.Name == name {
			return o.Value, true
		}
	}
	return "", false
}
