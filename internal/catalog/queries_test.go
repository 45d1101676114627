package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	t.Run("Shipped queries are valid", func(t *testing.T) {
		assert.NoError(t, validateQuery(productsQuery))
		assert.NoError(t, validateQuery(productByHandleQuery))
	})

	t.Run("Unknown field is rejected", func(t *testing.T) {
		err := validateQuery(`query { products(first: 1) { edges { node { vendor } } } }`)
		assert.Error(t, err)
	})

	t.Run("Syntax error is rejected", func(t *testing.T) {
		err := validateQuery(`query { products(first: 1) { `)
		assert.Error(t, err)
	})
}
