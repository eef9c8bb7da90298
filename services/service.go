package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	rates "github.com/malusev998/exchange-rates"
)

// AnalyzerService collects the daily rates of the requested currencies for
// the last few days, one request per day issued in parallel.
type AnalyzerService struct {
	Fetcher rates.Fetcher
	Now     func() time.Time
	Logger  zerolog.Logger
}

var _ rates.Analyzer = AnalyzerService{}

func (a AnalyzerService) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}

	return a.Now()
}

func fetchAll(ctx context.Context, fetcher rates.Fetcher, dates []time.Time) ([][]rates.Rate, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([][]rates.Rate, len(dates))

	for i, date := range dates {
		idx, day := i, date
		g.Go(func() error {
			fetched, err := fetcher.Fetch(ctx, day)
			if err != nil {
				return err
			}

			results[idx] = fetched

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func filterRates(fetched []rates.Rate, wanted map[rates.Currency]struct{}) map[rates.Currency]rates.RatePair {
	filtered := make(map[rates.Currency]rates.RatePair)

	for _, rate := range fetched {
		if _, ok := wanted[rate.Currency]; !ok {
			continue
		}

		filtered[rate.Currency] = rates.RatePair{
			Sale:     rate.SaleNB,
			Purchase: rate.PurchaseNB,
		}
	}

	return filtered
}

// Analyze returns one entry per day, newest first, for at most rates.MaxDays
// days. Days on which none of the currencies were published are left out.
// The first failed request cancels the rest and its error is returned.
func (a AnalyzerService) Analyze(ctx context.Context, days int, currencies []rates.Currency) (rates.Report, error) {
	if a.Fetcher == nil {
		return nil, ErrNoFetcherProvided
	}

	dates := rates.Dates(a.now(), days)
	report := make(rates.Report, 0, len(dates))

	if len(dates) == 0 {
		return report, nil
	}

	logger := a.Logger.With().
		Str("component", "analyzer").
		Str("run", uuid.New().String()).
		Logger()

	logger.Debug().Int("days", len(dates)).Interface("currencies", currencies).Msg("collecting exchange rates")

	fetched, err := fetchAll(ctx, a.Fetcher, dates)
	if err != nil {
		logger.Error().Err(err).Msg("failed to collect exchange rates")
		return nil, err
	}

	wanted := make(map[rates.Currency]struct{}, len(currencies))
	for _, c := range currencies {
		wanted[c] = struct{}{}
	}

	for i, date := range dates {
		filtered := filterRates(fetched[i], wanted)
		if len(filtered) == 0 {
			continue
		}

		report = append(report, rates.DailyRates{
			Date:  rates.FormatDate(date),
			Rates: filtered,
		})
	}

	logger.Debug().Int("entries", len(report)).Msg("exchange rates collected")

	return report, nil
}
