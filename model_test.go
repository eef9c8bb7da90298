package rates_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/exchange-rates"
)

func TestDailyRates_JSON(t *testing.T) {
	asserts := require.New(t)
	day := rates.DailyRates{
		Date: "19.10.2026",
		Rates: map[rates.Currency]rates.RatePair{
			rates.USD: {Sale: decimal.RequireFromString("41.25"), Purchase: decimal.RequireFromString("41.1")},
		},
	}

	payload, err := json.Marshal(rates.Report{day})
	asserts.NoError(err)
	asserts.JSONEq(`[{"19.10.2026":{"USD":{"sale":41.25,"purchase":41.1}}}]`, string(payload))
	asserts.Contains(string(payload), `"sale":41.25`)

	var decoded rates.Report
	asserts.NoError(json.Unmarshal(payload, &decoded))
	asserts.Len(decoded, 1)
	asserts.Equal("19.10.2026", decoded[0].Date)
	asserts.True(decoded[0].Rates[rates.USD].Sale.Equal(decimal.RequireFromString("41.25")))
}

func TestReport_JSON_UnsupportedCurrency(t *testing.T) {
	asserts := require.New(t)
	report := rates.Report{
		{
			Date: "01.12.2023",
			Rates: map[rates.Currency]rates.RatePair{
				"PLN": {Sale: decimal.RequireFromString("9.1674"), Purchase: decimal.RequireFromString("9.1674")},
			},
		},
	}

	payload, err := json.Marshal(report)
	asserts.NoError(err)
	asserts.JSONEq(`[{"01.12.2023":{"PLN":{"sale":9.1674,"purchase":9.1674}}}]`, string(payload))

	var decoded rates.Report
	asserts.NoError(json.Unmarshal(payload, &decoded))
	asserts.Len(decoded, 1)
	asserts.Contains(decoded[0].Rates, rates.Currency("PLN"))
	asserts.True(decoded[0].Rates["PLN"].Purchase.Equal(decimal.RequireFromString("9.1674")))
}
