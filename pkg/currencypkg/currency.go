// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/shopspring/decimal"
)

// Constants for all supported currencies.
const (
	USD = "USD"
	EUR = "EUR"
	PLN = "PLN"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	USD,
	EUR,
	PLN,
}

// IsSupportedCurrency returns true if the currncy is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

var (
	// ErrNotInitialized indicates that no rate table has been loaded.
	ErrNotInitialized = errors.New("exchange rates are not initialized")
	// ErrUnknownPair indicates that the rate table has no entry for the pair.
	ErrUnknownPair = errors.New("unknown currency pair")
	// ErrNegativeValue indicates a negative exchange value.
	ErrNegativeValue = errors.New("value must be positive")
)

// Rate holds the exchange rate for one currency pair. Reverse is used for
// conversions in the opposite direction.
type Rate struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Rate    decimal.Decimal `json:"rate"`
	Reverse decimal.Decimal `json:"reverse"`
}

// Exchange converts amounts between currencies using a loaded rate table.
type Exchange struct {
	rates []Rate
}

// NewExchangeFromFile loads the rate table from a JSON file.
func NewExchangeFromFile(fileName string) (*Exchange, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var rates []Rate
	if err := json.Unmarshal(content, &rates); err != nil {
		return nil, err
	}

	return &Exchange{rates: rates}, nil
}

// NewExchange returns an Exchange over the given rate table.
func NewExchange(rates []Rate) *Exchange {
	return &Exchange{rates: rates}
}

func (e *Exchange) rate(from, to string) (decimal.Decimal, error) {
	if e == nil || e.rates == nil {
		return decimal.Decimal{}, ErrNotInitialized
	}

	for _, r := range e.rates {
		if r.From == from && r.To == to {
			return r.Rate, nil
		}

		if r.From == to && r.To == from {
			return r.Reverse, nil
		}
	}

	return decimal.Decimal{}, ErrUnknownPair
}

// Convert returns the value converted from one currency to another.
func (e *Exchange) Convert(from, to string, value decimal.Decimal) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Decimal{}, ErrNegativeValue
	}

	rate, err := e.rate(from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return rate.Mul(value), nil
}
