package currencypkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testRates() []Rate {
	return []Rate{
		{
			From:    EUR,
			To:      USD,
			Rate:    decimal.RequireFromString("1.08"),
			Reverse: decimal.RequireFromString("0.93"),
		},
		{
			From:    USD,
			To:      PLN,
			Rate:    decimal.RequireFromString("4.0"),
			Reverse: decimal.RequireFromString("0.25"),
		},
	}
}

func TestIsSupportedCurrency(t *testing.T) {
	t.Parallel()

	for _, c := range SupportedCurrencies {
		require.True(t, IsSupportedCurrency(c))
	}

	require.False(t, IsSupportedCurrency("RMB"))
	require.False(t, IsSupportedCurrency(""))
}

func TestConvert(t *testing.T) {
	t.Parallel()

	e := NewExchange(testRates())

	testCases := []struct {
		name      string
		from      string
		to        string
		value     string
		want      string
		wantError error
	}{
		{name: "DirectRate", from: EUR, to: USD, value: "100", want: "108"},
		{name: "ReverseRate", from: USD, to: EUR, value: "100", want: "93"},
		{name: "SecondPair", from: USD, to: PLN, value: "10", want: "40"},
		{name: "UnknownPair", from: EUR, to: PLN, value: "100", wantError: ErrUnknownPair},
		{name: "NegativeValue", from: EUR, to: USD, value: "-1", wantError: ErrNegativeValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Convert(tc.from, tc.to, decimal.RequireFromString(tc.value))
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}

			require.NoError(t, err)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestConvertNotInitialized(t *testing.T) {
	t.Parallel()

	var e *Exchange

	_, err := e.Convert(EUR, USD, decimal.RequireFromString("1"))
	require.ErrorIs(t, err, ErrNotInitialized)

	_, err = (&Exchange{}).Convert(EUR, USD, decimal.RequireFromString("1"))
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestNewExchangeFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rates.json")

	content := `[{"from":"EUR","to":"USD","rate":"1.08","reverse":"0.93"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	e, err := NewExchangeFromFile(path)
	require.NoError(t, err)

	got, err := e.Convert(EUR, USD, decimal.RequireFromString("100"))
	require.NoError(t, err)
	require.True(t, got.Equal(decimal.RequireFromString("108")))

	_, err = NewExchangeFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
