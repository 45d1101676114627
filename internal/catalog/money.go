package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount as the decimal string the API sends plus its currency code.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Decimal parses the amount. Callers treat a parse failure as "no usable price".
func (m Money) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(m.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, m.Amount)
	}
	return d, nil
}

// Format renders the display price, e.g. "INR 1200.00". Unparseable amounts are shown verbatim.
func (m Money) Format() string {
	d, err := m.Decimal()
	if err != nil {
		return strings.TrimSpace(m.CurrencyCode + " " + m.Amount)
	}
	if m.CurrencyCode == "" {
		return d.StringFixed(2)
	}
	return m.CurrencyCode + " " + d.StringFixed(2)
}
