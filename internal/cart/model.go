package cart

import "priyasi-storefront/internal/catalog"

// LineItem is a snapshot of a product variant taken when it was added. It is
// not refreshed when the catalog changes.
type LineItem struct {
	ProductID       string                   `json:"productId"`
	ProductTitle    string                   `json:"productTitle"`
	Handle          string                   `json:"handle"`
	VariantID       string                   `json:"variantId"`
	VariantTitle    string                   `json:"variantTitle"`
	Price           catalog.Money            `json:"price"`
	Quantity        int                      `json:"quantity"`
	SelectedOptions []catalog.SelectedOption `json:"selectedOptions"`
	ImageURL        string                   `json:"image,omitempty"`
}

// state is the persisted blob: {"items":[...]}.
type state struct {
	Items []LineItem `json:"items"`
}

// NewLineItem snapshots product and variant into a line of qty units.
func NewLineItem(p *catalog.Product, v *catalog.Variant, qty int) LineItem {
	return LineItem{
		ProductID:       p.ID,
		ProductTitle:    p.Title,
		Handle:          p.Handle,
		VariantID:       v.ID,
		VariantTitle:    v.Title,
		Price:           v.Price,
		Quantity:        qty,
		SelectedOptions: append([]catalog.SelectedOption(nil), v.SelectedOptions...),
		ImageURL:        p.FirstImageURL(),
	}
}

func (li LineItem) sameLine(productID, variantID string) bool {
	return li.ProductID == productID && li.VariantID == variantID
}
