package catalog

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// storefrontSchema is the slice of the Shopify Storefront schema the queries below touch.
const storefrontSchema = `
scalar URL
scalar Decimal

enum CurrencyCode { USD INR EUR GBP AUD CAD }

type Query {
  products(first: Int, after: String, query: String): ProductConnection!
  product(id: ID, handle: String): Product
}

type PageInfo {
  hasNextPage: Boolean!
  endCursor: String
}

type ProductConnection {
  edges: [ProductEdge!]!
  pageInfo: PageInfo!
}

type ProductEdge {
  cursor: String!
  node: Product!
}

type Product {
  id: ID!
  title: String!
  description: String!
  handle: String!
  productType: String!
  priceRange: ProductPriceRange!
  images(first: Int): ImageConnection!
  variants(first: Int): ProductVariantConnection!
  options: [ProductOption!]!
}

type ProductPriceRange {
  minVariantPrice: MoneyV2!
  maxVariantPrice: MoneyV2!
}

type MoneyV2 {
  amount: Decimal!
  currencyCode: CurrencyCode!
}

type ImageConnection { edges: [ImageEdge!]! }
type ImageEdge { node: Image! }
type Image {
  url: URL!
  altText: String
}

type ProductVariantConnection { edges: [ProductVariantEdge!]! }
type ProductVariantEdge { node: ProductVariant! }
type ProductVariant {
  id: ID!
  title: String!
  price: MoneyV2!
  availableForSale: Boolean!
  selectedOptions: [SelectedOption!]!
}

type SelectedOption {
  name: String!
  value: String!
}

type ProductOption {
  name: String!
  values: [String!]!
}
`

const productFields = `
fragment ProductFields on Product {
  id
  title
  description
  handle
  productType
  priceRange {
    minVariantPrice { amount currencyCode }
  }
  images(first: 5) {
    edges { node { url altText } }
  }
  variants(first: 10) {
    edges {
      node {
        id
        title
        price { amount currencyCode }
        availableForSale
        selectedOptions { name value }
      }
    }
  }
  options { name values }
}
`

var (
	productsQuery = mustValidate(`
query GetProducts($first: Int!) {
  products(first: $first) {
    edges { node { ...ProductFields } }
  }
}
` + productFields)

	productByHandleQuery = mustValidate(`
query GetProductByHandle($handle: String!) {
  product(handle: $handle) { ...ProductFields }
}
` + productFields)
)

// mustValidate checks a query document against the schema fragment at init time.
func mustValidate(query string) string {
	if err := validateQuery(query); err != nil {
		panic(err)
	}
	return query
}

func validateQuery(query string) error {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "storefront.graphql", Input: storefrontSchema})
	if err != nil {
		return fmt.Errorf("load storefront schema: %w", err)
	}
	if _, errs := gqlparser.LoadQuery(schema, query); len(errs) > 0 {
		return fmt.Errorf("invalid storefront query: %w", errs)
	}
	return nil
}
