package catalog

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type productsData struct {
	Products struct {
		Edges []struct {
			Node productNode `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

type productData struct {
	Product *productNode `json:"product"`
}

type productNode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Handle      string `json:"handle"`
	ProductType string `json:"productType"`
	PriceRange  struct {
		MinVariantPrice Money `json:"minVariantPrice"`
	} `json:"priceRange"`
	Images struct {
		Edges []struct {
			Node Image `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node Variant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
	Options []Option `json:"options"`
}

func mapProduct(n productNode) Product {
	p := Product{
		ID:          n.ID,
		Title:       n.Title,
		Handle:      n.Handle,
		Description: n.Description,
		ProductType: n.ProductType,
		PriceRange:  PriceRange{MinVariantPrice: n.PriceRange.MinVariantPrice},
		Images:      make([]Image, 0, len(n.Images.Edges)),
		Variants:    make([]Variant, 0, len(n.Variants.Edges)),
		Options:     n.Options,
	}

	for _, e := range n.Images.Edges {
		p.Images = append(p.Images, e.Node)
	}
	for _, e := range n.Variants.Edges {
		v := e.Node
		if v.SelectedOptions == nil {
			v.SelectedOptions = []SelectedOption{}
		}
		p.Variants = append(p.Variants, v)
	}
	if p.Options == nil {
		p.Options = []Option{}
	}

	return p
}

func mapProducts(d productsData) []Product {
	out := make([]Product, 0, len(d.Products.Edges))
	for _, e := range d.Products.Edges {
		out = append(out, mapProduct(e.Node))
	}
	return out
}
