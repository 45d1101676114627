package graph

import (
	"context"
	"sync"
	"testing"

	"priyasi-storefront/internal/catalog"
	"priyasi-storefront/internal/session"
	"priyasi-storefront/internal/shopper"
	"priyasi-storefront/internal/storage"
	"priyasi-storefront/internal/utils"

	"github.com/99designs/gqlgen/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListProducts(ctx context.Context, limit int) []catalog.Product {
	return m.Called(ctx, limit).Get(0).([]catalog.Product)
}

func (m *MockCatalog) ProductByHandle(ctx context.Context, handle string) *catalog.Product {
	p, _ := m.Called(ctx, handle).Get(0).(*catalog.Product)
	return p
}

func (m *MockCatalog) ProductsByHandles(ctx context.Context, handles []string) []catalog.Product {
	return m.Called(ctx, handles).Get(0).([]catalog.Product)
}

func (m *MockCatalog) Search(ctx context.Context, query string, limit int) []catalog.Product {
	return m.Called(ctx, query, limit).Get(0).([]catalog.Product)
}

func kurta() *catalog.Product {
	inr := func(a string) catalog.Money { return catalog.Money{Amount: a, CurrencyCode: "INR"} }
	return &catalog.Product{
		ID:          "p-kurta",
		Title:       "Anarkali Kurta",
		Handle:      "anarkali-kurta",
		ProductType: "Kurta",
		Images:      []catalog.Image{{URL: "https://cdn/kurta.jpg"}},
		PriceRange:  catalog.PriceRange{MinVariantPrice: inr("1299.00")},
		Options: []catalog.Option{
			{Name: "Size", Values: []string{"S", "M"}},
			{Name: "Color", Values: []string{"Red", "Blue"}},
		},
		Variants: []catalog.Variant{
			{ID: "v-S-Red", Title: "S / Red", Price: inr("1299.00"), AvailableForSale: true,
				SelectedOptions: []catalog.SelectedOption{{Name: "Size", Value: "S"}, {Name: "Color", Value: "Red"}}},
			{ID: "v-M-Blue", Title: "M / Blue", Price: inr("1399.00"), AvailableForSale: true,
				SelectedOptions: []catalog.SelectedOption{{Name: "Size", Value: "M"}, {Name: "Color", Value: "Blue"}}},
		},
	}
}

func saree() *catalog.Product {
	return &catalog.Product{
		ID:          "p-saree",
		Title:       "Chanderi Saree",
		Handle:      "chanderi-saree",
		ProductType: "Saree",
		PriceRange:  catalog.PriceRange{MinVariantPrice: catalog.Money{Amount: "4500.00", CurrencyCode: "INR"}},
		Options:     []catalog.Option{{Name: "Size", Values: []string{"Free Size"}}},
		Variants: []catalog.Variant{{ID: "v-saree", Title: "Free Size", AvailableForSale: true,
			Price:           catalog.Money{Amount: "4500.00", CurrencyCode: "INR"},
			SelectedOptions: []catalog.SelectedOption{{Name: "Size", Value: "Free Size"}}}},
	}
}

func asShopper(id string) client.Option {
	return func(bd *client.Request) {
		bd.HTTP = bd.HTTP.WithContext(shopper.WithID(bd.HTTP.Context(), id))
	}
}

func newTestClient(t *testing.T, cat Catalog, opts ...client.Option) *client.Client {
	t.Helper()
	schema, err := NewSchema(&Resolver{
		Catalog:      cat,
		Sessions:     session.NewFactory(storage.NewMemoryBackend()),
		DefaultLimit: 50,
	})
	require.NoError(t, err)
	return client.New(Handler(schema), opts...)
}

type cartResp struct {
	TotalQuantity int  `json:"totalQuantity"`
	Degraded      bool `json:"degraded"`
	Items         []struct {
		VariantID string `json:"variantId"`
		Quantity  int    `json:"quantity"`
		Price     struct {
			Formatted string `json:"formatted"`
		} `json:"price"`
	} `json:"items"`
}

const cartFields = `totalQuantity degraded items { variantId quantity price { formatted } }`

func TestSchemaParses(t *testing.T) {
	_, err := NewSchema(&Resolver{})
	assert.NoError(t, err)
}

func TestQuery_Products(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("ListProducts", mock.Anything, 50).Return([]catalog.Product{*kurta(), *saree()})
	c := newTestClient(t, cat)

	t.Run("Filtered and sorted", func(t *testing.T) {
		var resp struct {
			Products []struct {
				Handle string `json:"handle"`
			} `json:"products"`
		}
		err := c.Post(`query($f: ProductFilter) { products(filter: $f) { handle } }`, &resp,
			client.Var("f", map[string]any{"category": "sarees", "sort": "price-desc"}))

		require.NoError(t, err)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "chanderi-saree", resp.Products[0].Handle)
	})

	t.Run("No filter keeps upstream order", func(t *testing.T) {
		var resp struct {
			Products []struct {
				Handle        string  `json:"handle"`
				FeaturedImage *string `json:"featuredImage"`
			} `json:"products"`
		}
		err := c.Post(`{ products { handle featuredImage } }`, &resp)

		require.NoError(t, err)
		require.Len(t, resp.Products, 2)
		assert.Equal(t, "anarkali-kurta", resp.Products[0].Handle)
		require.NotNil(t, resp.Products[0].FeaturedImage)
		assert.Nil(t, resp.Products[1].FeaturedImage)
	})

	t.Run("Bad sort order", func(t *testing.T) {
		var resp map[string]any
		err := c.Post(`{ products(filter: {sort: "cheapest"}) { handle } }`, &resp)

		assert.Error(t, err)
	})

	t.Run("Inverted price window", func(t *testing.T) {
		var resp map[string]any
		err := c.Post(`{ products(filter: {minPrice: 500.0, maxPrice: 100.0}) { handle } }`, &resp)

		assert.Error(t, err)
	})
}

func TestQuery_ProductAndVariant(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("ProductByHandle", mock.Anything, "anarkali-kurta").Return(kurta())
	cat.On("ProductByHandle", mock.Anything, "gone").Return(nil)
	c := newTestClient(t, cat)

	t.Run("Product", func(t *testing.T) {
		var resp struct {
			Product struct {
				Title      string `json:"title"`
				PriceRange struct {
					MinVariantPrice struct {
						Formatted string `json:"formatted"`
					} `json:"minVariantPrice"`
				} `json:"priceRange"`
			} `json:"product"`
		}
		err := c.Post(`{ product(handle: "anarkali-kurta") { title priceRange { minVariantPrice { formatted } } } }`, &resp)

		require.NoError(t, err)
		assert.Equal(t, "Anarkali Kurta", resp.Product.Title)
		assert.Equal(t, "INR 1299.00", resp.Product.PriceRange.MinVariantPrice.Formatted)
	})

	t.Run("Missing product is null", func(t *testing.T) {
		var resp struct {
			Product *struct {
				Title string `json:"title"`
			} `json:"product"`
		}
		err := c.Post(`{ product(handle: "gone") { title } }`, &resp)

		require.NoError(t, err)
		assert.Nil(t, resp.Product)
	})

	t.Run("Resolve variant", func(t *testing.T) {
		var resp struct {
			ResolveVariant *struct {
				ID string `json:"id"`
			} `json:"resolveVariant"`
		}
		err := c.Post(`{ resolveVariant(handle: "anarkali-kurta", options: [{name: "Color", value: "Blue"}, {name: "Size", value: "M"}]) { id } }`, &resp)

		require.NoError(t, err)
		require.NotNil(t, resp.ResolveVariant)
		assert.Equal(t, "v-M-Blue", resp.ResolveVariant.ID)
	})

	t.Run("Unsold combination is null", func(t *testing.T) {
		var resp struct {
			ResolveVariant *struct {
				ID string `json:"id"`
			} `json:"resolveVariant"`
		}
		err := c.Post(`{ resolveVariant(handle: "anarkali-kurta", options: [{name: "Size", value: "S"}, {name: "Color", value: "Blue"}]) { id } }`, &resp)

		require.NoError(t, err)
		assert.Nil(t, resp.ResolveVariant)
	})
}

func TestMutation_Cart(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("ProductByHandle", mock.Anything, "anarkali-kurta").Return(kurta())
	cat.On("ProductByHandle", mock.Anything, "gone").Return(nil)
	c := newTestClient(t, cat, asShopper("shopper-1"))

	t.Run("Add by options", func(t *testing.T) {
		var resp struct {
			AddToCart cartResp `json:"addToCart"`
		}
		err := c.Post(`mutation { addToCart(input: {handle: "anarkali-kurta", options: [{name: "Size", value: "M"}, {name: "Color", value: "Blue"}], quantity: 2}) { `+cartFields+` } }`, &resp)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.AddToCart.TotalQuantity)
		require.Len(t, resp.AddToCart.Items, 1)
		assert.Equal(t, "v-M-Blue", resp.AddToCart.Items[0].VariantID)
		assert.Equal(t, "INR 1399.00", resp.AddToCart.Items[0].Price.Formatted)
	})

	t.Run("Add same line increments", func(t *testing.T) {
		var resp struct {
			AddToCart cartResp `json:"addToCart"`
		}
		err := c.Post(`mutation { addToCart(input: {handle: "anarkali-kurta", variantId: "v-M-Blue"}) { `+cartFields+` } }`, &resp)

		require.NoError(t, err)
		require.Len(t, resp.AddToCart.Items, 1)
		assert.Equal(t, 3, resp.AddToCart.Items[0].Quantity)
	})

	t.Run("Default variant", func(t *testing.T) {
		var resp struct {
			AddToCart cartResp `json:"addToCart"`
		}
		err := c.Post(`mutation { addToCart(input: {handle: "anarkali-kurta"}) { `+cartFields+` } }`, &resp)

		require.NoError(t, err)
		assert.Len(t, resp.AddToCart.Items, 2)
		assert.Equal(t, 4, resp.AddToCart.TotalQuantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		var resp map[string]any
		err := c.Post(`mutation { addToCart(input: {handle: "gone"}) { totalQuantity } }`, &resp)

		assert.ErrorContains(t, err, ErrProductNotFound.Error())
	})

	t.Run("Unknown variant", func(t *testing.T) {
		var resp map[string]any
		err := c.Post(`mutation { addToCart(input: {handle: "anarkali-kurta", variantId: "nope"}) { totalQuantity } }`, &resp)

		assert.ErrorContains(t, err, ErrVariantNotFound.Error())
	})

	t.Run("Cart persists across requests", func(t *testing.T) {
		var resp struct {
			Cart cartResp `json:"cart"`
		}
		require.NoError(t, c.Post(`{ cart { `+cartFields+` } }`, &resp))

		assert.Equal(t, 4, resp.Cart.TotalQuantity)
		assert.False(t, resp.Cart.Degraded)
	})

	t.Run("Update to zero removes", func(t *testing.T) {
		var resp struct {
			UpdateCartQuantity cartResp `json:"updateCartQuantity"`
		}
		err := c.Post(`mutation { updateCartQuantity(productId: "p-kurta", variantId: "v-M-Blue", quantity: 0) { `+cartFields+` } }`, &resp)

		require.NoError(t, err)
		require.Len(t, resp.UpdateCartQuantity.Items, 1)
		assert.Equal(t, "v-S-Red", resp.UpdateCartQuantity.Items[0].VariantID)
	})

	t.Run("Remove and clear", func(t *testing.T) {
		var removed struct {
			RemoveFromCart cartResp `json:"removeFromCart"`
		}
		require.NoError(t, c.Post(`mutation { removeFromCart(productId: "p-kurta", variantId: "v-S-Red") { `+cartFields+` } }`, &removed))
		assert.Empty(t, removed.RemoveFromCart.Items)

		var cleared struct {
			ClearCart cartResp `json:"clearCart"`
		}
		require.NoError(t, c.Post(`mutation { clearCart { `+cartFields+` } }`, &cleared))
		assert.Equal(t, 0, cleared.ClearCart.TotalQuantity)
	})
}

func TestMutation_WishlistAndHistory(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("ProductByHandle", mock.Anything, "anarkali-kurta").Return(kurta())
	cat.On("ProductsByHandles", mock.Anything, []string{"chanderi-saree", "anarkali-kurta"}).
		Return([]catalog.Product{*saree(), *kurta()})
	c := newTestClient(t, cat, asShopper("shopper-2"))

	type wishResp struct {
		ID string `json:"id"`
	}

	t.Run("Wishlist add twice keeps one", func(t *testing.T) {
		var resp struct {
			AddToWishlist []wishResp `json:"addToWishlist"`
		}
		require.NoError(t, c.Post(`mutation { addToWishlist(handle: "anarkali-kurta") { id } }`, &resp))
		require.NoError(t, c.Post(`mutation { addToWishlist(handle: "anarkali-kurta") { id } }`, &resp))

		assert.Len(t, resp.AddToWishlist, 1)

		var check struct {
			IsInWishlist bool `json:"isInWishlist"`
		}
		require.NoError(t, c.Post(`{ isInWishlist(productId: "p-kurta") }`, &check))
		assert.True(t, check.IsInWishlist)
	})

	t.Run("Wishlist remove and clear", func(t *testing.T) {
		var removed struct {
			RemoveFromWishlist []wishResp `json:"removeFromWishlist"`
		}
		require.NoError(t, c.Post(`mutation { removeFromWishlist(productId: "p-kurta") { id } }`, &removed))
		assert.Empty(t, removed.RemoveFromWishlist)

		var cleared struct {
			ClearWishlist []wishResp `json:"clearWishlist"`
		}
		require.NoError(t, c.Post(`mutation { clearWishlist { id } }`, &cleared))
		assert.Empty(t, cleared.ClearWishlist)
	})

	t.Run("Recently viewed", func(t *testing.T) {
		var viewed struct {
			ViewProduct []string `json:"viewProduct"`
		}
		require.NoError(t, c.Post(`mutation { viewProduct(handle: "anarkali-kurta") }`, &viewed))
		require.NoError(t, c.Post(`mutation { viewProduct(handle: "chanderi-saree") }`, &viewed))
		assert.Equal(t, []string{"chanderi-saree", "anarkali-kurta"}, viewed.ViewProduct)

		var resp struct {
			RecentlyViewed []struct {
				Handle string `json:"handle"`
			} `json:"recentlyViewed"`
		}
		require.NoError(t, c.Post(`{ recentlyViewed { handle } }`, &resp))
		require.Len(t, resp.RecentlyViewed, 2)
		assert.Equal(t, "chanderi-saree", resp.RecentlyViewed[0].Handle)

		var cleared struct {
			ClearHistory []string `json:"clearHistory"`
		}
		require.NoError(t, c.Post(`mutation { clearHistory }`, &cleared))
		assert.Empty(t, cleared.ClearHistory)
	})
}

func TestQuery_RequiresShopper(t *testing.T) {
	c := newTestClient(t, new(MockCatalog))

	var resp map[string]any
	err := c.Post(`{ cart { totalQuantity } }`, &resp)

	assert.ErrorContains(t, err, ErrNoShopper.Error())
}

func TestQuery_SearchAndSizes(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("Search", mock.Anything, "saree", 5).Return([]catalog.Product{*saree()})
	c := newTestClient(t, cat)

	var resp struct {
		SearchProducts []struct {
			Title string `json:"title"`
		} `json:"searchProducts"`
		Sizes []string `json:"sizes"`
	}
	require.NoError(t, c.Post(`{ searchProducts(query: "saree", limit: 5) { title } sizes }`, &resp))

	require.Len(t, resp.SearchProducts, 1)
	assert.Equal(t, "Chanderi Saree", resp.SearchProducts[0].Title)
	assert.Contains(t, resp.Sizes, "Free Size")
	cat.AssertExpectations(t)
}

func TestQuery_LimitCap(t *testing.T) {
	query := `{ searchProducts(query: "saree", limit: 500) { title } }`
	var resp map[string]any

	t.Run("Public callers are capped", func(t *testing.T) {
		cat := new(MockCatalog)
		cat.On("Search", mock.Anything, "saree", 50).Return([]catalog.Product{})

		require.NoError(t, newTestClient(t, cat).Post(query, &resp))
		cat.AssertExpectations(t)
	})

	t.Run("Internal callers may exceed the default", func(t *testing.T) {
		cat := new(MockCatalog)
		cat.On("Search", mock.Anything, "saree", 500).Return([]catalog.Product{})
		internal := func(bd *client.Request) {
			bd.HTTP = bd.HTTP.WithContext(utils.WithInternalRequest(bd.HTTP.Context()))
		}

		require.NoError(t, newTestClient(t, cat, internal).Post(query, &resp))
		cat.AssertExpectations(t)
	})
}

func TestMutation_OverlappingAddsKeepEveryLine(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("ProductByHandle", mock.Anything, "anarkali-kurta").Return(kurta())
	c := newTestClient(t, cat, asShopper("shopper-1"))

	var wg sync.WaitGroup
	for _, variantID := range []string{"v-S-Red", "v-M-Blue"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var resp map[string]any
			assert.NoError(t, c.Post(`mutation { addToCart(input: {handle: "anarkali-kurta", variantId: "`+variantID+`"}) { totalQuantity } }`, &resp))
		}()
	}
	wg.Wait()

	var resp struct {
		Cart cartResp `json:"cart"`
	}
	require.NoError(t, c.Post(`{ cart { `+cartFields+` } }`, &resp))
	assert.Len(t, resp.Cart.Items, 2)
	assert.Equal(t, 2, resp.Cart.TotalQuantity)
}
