package rates

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type (
	// Rate is a single row of the bank's daily exchange table, quoted against UAH.
	Rate struct {
		Currency     Currency
		SaleNB       decimal.Decimal
		PurchaseNB   decimal.Decimal
		Sale         decimal.NullDecimal
		Purchase     decimal.NullDecimal
		BaseCurrency string
	}

	RatePair struct {
		Sale     decimal.Decimal `json:"sale"`
		Purchase decimal.Decimal `json:"purchase"`
	}

	DailyRates struct {
		Date  string
		Rates map[Currency]RatePair
	}

	// Report is ordered newest date first.
	Report []DailyRates

	Conversion struct {
		Currency Currency        `json:"currency"`
		Date     string          `json:"date"`
		Amount   decimal.Decimal `json:"amount"`
		Bought   decimal.Decimal `json:"bought"`
		Sold     decimal.Decimal `json:"sold"`
	}
)

// MarshalJSON writes the rates as JSON numbers.
func (r RatePair) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sale     json.RawMessage `json:"sale"`
		Purchase json.RawMessage `json:"purchase"`
	}{
		Sale:     json.RawMessage(r.Sale.String()),
		Purchase: json.RawMessage(r.Purchase.String()),
	})
}

// MarshalJSON encodes the day as {"<date>": {"<currency>": {"sale": .., "purchase": ..}}}.
func (d DailyRates) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[Currency]RatePair{d.Date: d.Rates})
}

func (d *DailyRates) UnmarshalJSON(data []byte) error {
	var raw map[string]map[Currency]RatePair

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for date, rates := range raw {
		d.Date = date
		d.Rates = rates
	}

	return nil
}
