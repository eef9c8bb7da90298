package rates

import (
	"fmt"
	"strings"
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	CHF Currency = "CHF"
	GBP Currency = "GBP"
	PLZ Currency = "PLZ"
	SEK Currency = "SEK"
	XAU Currency = "XAU"
	CAD Currency = "CAD"
)

// SupportedCurrencies is the set of currencies a caller is allowed to ask for.
var SupportedCurrencies = []Currency{USD, EUR, CHF, GBP, PLZ, SEK, XAU, CAD}

func ConvertToCurrenciesFromStringSlice(strings []string) ([]Currency, error) {
	currencies := make([]Currency, 0, len(strings))

	for _, str := range strings {
		c, err := ConvertToCurrencyFromString(str)
		if err != nil {
			return nil, err
		}

		currencies = append(currencies, c)
	}

	return currencies, nil
}

func ConvertToCurrencyFromString(str string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(str)))

	for _, supported := range SupportedCurrencies {
		if c == supported {
			return c, nil
		}
	}

	return "", fmt.Errorf("value %s is not valid Currency", str)
}

func SupportedCurrenciesString() string {
	values := make([]string, 0, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		values = append(values, string(c))
	}

	return strings.Join(values, ", ")
}

// UnmarshalText normalizes the code without checking it against
// SupportedCurrencies, so reports holding any bank currency decode.
func (c *Currency) UnmarshalText(text []byte) error {
	*c = Currency(strings.ToUpper(strings.TrimSpace(string(text))))

	return nil
}

func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c Currency) String() string {
	return string(c)
}
