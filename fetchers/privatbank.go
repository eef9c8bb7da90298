package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	rates "github.com/malusev998/exchange-rates"
)

type (
	Config struct {
		URL     string
		Timeout time.Duration
		Client  *http.Client
		Logger  zerolog.Logger
	}

	// PrivatBankFetcher reads the archive of daily exchange rates published by PrivatBank.
	PrivatBankFetcher struct {
		url    string
		client *http.Client
		logger zerolog.Logger
	}

	privatBankResponse struct {
		Date         string            `json:"date"`
		Bank         string            `json:"bank"`
		BaseCurrency int               `json:"baseCurrency"`
		BaseLit      string            `json:"baseCurrencyLit"`
		ExchangeRate []privatBankEntry `json:"exchangeRate"`
	}

	privatBankEntry struct {
		BaseCurrency   string              `json:"baseCurrency"`
		Currency       string              `json:"currency"`
		SaleRateNB     decimal.Decimal     `json:"saleRateNB"`
		PurchaseRateNB decimal.Decimal     `json:"purchaseRateNB"`
		SaleRate       decimal.NullDecimal `json:"saleRate"`
		PurchaseRate   decimal.NullDecimal `json:"purchaseRate"`
	}
)

var _ rates.Fetcher = (*PrivatBankFetcher)(nil)

func NewPrivatBankFetcher(config Config) *PrivatBankFetcher {
	url := config.URL

	if url == "" {
		url = PrivatBankURL
	}

	client := config.Client

	if client == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultRequestTimeout
		}

		client = &http.Client{Timeout: timeout}
	}

	return &PrivatBankFetcher{
		url:    strings.TrimRight(url, "/"),
		client: client,
		logger: config.Logger.With().Str("component", "privatbank").Logger(),
	}
}

// Fetch returns every rate the bank published for date. A day with no
// published table yields an empty slice.
func (p *PrivatBankFetcher) Fetch(ctx context.Context, date time.Time) ([]rates.Rate, error) {
	formattedDate := rates.FormatDate(date)

	req, err := getData(ctx, p.url+PrivatBankRatesPath)
	if err != nil {
		return nil, err
	}

	// The API expects a bare `json` flag, which url.Values cannot encode.
	req.URL.RawQuery = "json&date=" + formattedDate

	p.logger.Debug().Str("date", formattedDate).Str("url", req.URL.String()).Msg("fetching exchange rates")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates for %s: %w", formattedDate, err)
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, fmt.Errorf("exchange rates for %s returned status %d: %w", formattedDate, res.StatusCode, err)
	}

	var data privatBankResponse

	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding exchange rates for %s: %w", formattedDate, err)
	}

	result := make([]rates.Rate, 0, len(data.ExchangeRate))

	for _, entry := range data.ExchangeRate {
		if entry.Currency == "" {
			continue
		}

		result = append(result, rates.Rate{
			Currency:     rates.Currency(strings.ToUpper(entry.Currency)),
			SaleNB:       entry.SaleRateNB,
			PurchaseNB:   entry.PurchaseRateNB,
			Sale:         entry.SaleRate,
			Purchase:     entry.PurchaseRate,
			BaseCurrency: entry.BaseCurrency,
		})
	}

	p.logger.Debug().Str("date", formattedDate).Int("rates", len(result)).Msg("exchange rates fetched")

	return result, nil
}
