package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	rates "github.com/malusev998/exchange-rates"
)

const conversionPrecision = 6

var (
	ErrCurrencyNotFound  = errors.New("rate for the currency is not found")
	ErrNoFetcherProvided = errors.New("no fetcher provided")
	ErrNegativeAmount    = errors.New("amount must not be negative")
)

// ConversionService turns an amount of foreign currency into UAH using the
// national bank rates published for a given day.
type ConversionService struct {
	Fetcher rates.Fetcher
	Logger  zerolog.Logger
}

var _ rates.Converter = ConversionService{}

func (c ConversionService) Convert(ctx context.Context, amount decimal.Decimal, currency rates.Currency, date time.Time) (rates.Conversion, error) {
	if c.Fetcher == nil {
		return rates.Conversion{}, ErrNoFetcherProvided
	}

	if amount.IsNegative() {
		return rates.Conversion{}, ErrNegativeAmount
	}

	formattedDate := rates.FormatDate(date)

	fetched, err := c.Fetcher.Fetch(ctx, date)
	if err != nil {
		return rates.Conversion{}, err
	}

	for _, rate := range fetched {
		if rate.Currency != currency {
			continue
		}

		conversion := rates.Conversion{
			Currency: currency,
			Date:     formattedDate,
			Amount:   amount,
			Bought:   convert(amount, rate.PurchaseNB),
			Sold:     convert(amount, rate.SaleNB),
		}

		c.Logger.Debug().
			Str("currency", currency.String()).
			Str("date", formattedDate).
			Str("amount", amount.String()).
			Msg("amount converted")

		return conversion, nil
	}

	return rates.Conversion{}, fmt.Errorf("%s on %s: %w", currency, formattedDate, ErrCurrencyNotFound)
}

func convert(value, rate decimal.Decimal) decimal.Decimal {
	return value.Mul(rate).Round(conversionPrecision)
}
