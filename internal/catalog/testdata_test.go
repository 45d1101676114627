package catalog

func sampleProduct(id, handle, price string) Product {
	return Product{
		ID:          id,
		Title:       "Product " + id,
		Handle:      handle,
		ProductType: "Kurta",
		PriceRange:  PriceRange{MinVariantPrice: Money{Amount: price, CurrencyCode: "INR"}},
		Options:     []Option{{Name: "Size", Values: []string{"S", "M"}}},
		Variants: []Variant{
			{ID: id + "-s", Title: "S", Price: Money{Amount: price, CurrencyCode: "INR"}, AvailableForSale: true,
				SelectedOptions: []SelectedOption{{Name: "Size", Value: "S"}}},
			{ID: id + "-m", Title: "M", Price: Money{Amount: price, CurrencyCode: "INR"}, AvailableForSale: false,
				SelectedOptions: []SelectedOption{{Name: "Size", Value: "M"}}},
		},
	}
}
