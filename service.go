package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, date time.Time) ([]Rate, error)
	}

	Analyzer interface {
		Analyze(ctx context.Context, days int, currencies []Currency) (Report, error)
	}

	Converter interface {
		Convert(ctx context.Context, amount decimal.Decimal, currency Currency, date time.Time) (Conversion, error)
	}
)
