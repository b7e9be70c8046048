// Package market fetches quotes, price history and fundamentals from an
// external data source. Two implementations exist: direct Yahoo Finance
// access and a JSON client for the legacy Python quote sidecar.
package market

import (
	"context"
	"errors"

	"github.com/stockpulse/stockpulse/internal/models"
)

// ErrNoData reports that the provider had nothing for the requested
// symbol. Handlers translate it to 404; every other provider error is an
// upstream failure.
var ErrNoData = errors.New("no data found")

// Provider is the market-data source used by the service layer.
// Returned records carry no ID or timestamp; the caller stamps and
// stores them.
type Provider interface {
	Name() string
	Quote(ctx context.Context, ticker string) (models.StockData, error)
	History(ctx context.Context, ticker, period string) ([]models.HistoricalPoint, error)
	Fundamentals(ctx context.Context, ticker string) (models.FundamentalData, error)
}
