package graph

const schemaSDL = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	products(filter: ProductFilter, limit: Int): [Product!]!
	searchProducts(query: String!, limit: Int): [Product!]!
	product(handle: String!): Product
	resolveVariant(handle: String!, options: [SelectedOptionInput!]!): Variant
	cart: Cart!
	wishlist: [Product!]!
	isInWishlist(productId: ID!): Boolean!
	recentlyViewed: [Product!]!
	sizes: [String!]!
}

type Mutation {
	addToCart(input: AddToCartInput!): Cart!
	updateCartQuantity(productId: ID!, variantId: ID!, quantity: Int!): Cart!
	removeFromCart(productId: ID!, variantId: ID!): Cart!
	clearCart: Cart!
	addToWishlist(handle: String!): [Product!]!
	removeFromWishlist(productId: ID!): [Product!]!
	clearWishlist: [Product!]!
	viewProduct(handle: String!): [String!]!
	clearHistory: [String!]!
}

input ProductFilter {
	category: String
	minPrice: Float
	maxPrice: Float
	sizes: [String!]
	sort: String
}

input SelectedOptionInput {
	name: String!
	value: String!
}

input AddToCartInput {
	handle: String!
	variantId: ID
	options: [SelectedOptionInput!]
	quantity: Int
}

type Product {
	id: ID!
	title: String!
	handle: String!
	description: String!
	productType: String!
	featuredImage: String
	images: [Image!]!
	priceRange: PriceRange!
	options: [ProductOption!]!
	variants: [Variant!]!
}

type Image {
	url: String!
	altText: String
}

type PriceRange {
	minVariantPrice: Money!
}

type Money {
	amount: String!
	currencyCode: String!
	formatted: String!
}

type ProductOption {
	name: String!
	values: [String!]!
}

type Variant {
	id: ID!
	title: String!
	price: Money!
	availableForSale: Boolean!
	selectedOptions: [SelectedOption!]!
}

type SelectedOption {
	name: String!
	value: String!
}

type Cart {
	items: [CartLine!]!
	totalQuantity: Int!
	degraded: Boolean!
}

type CartLine {
	productId: ID!
	productTitle: String!
	handle: String!
	variantId: ID!
	variantTitle: String!
	price: Money!
	quantity: Int!
	selectedOptions: [SelectedOption!]!
	image: String
}
`
