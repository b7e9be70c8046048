package market

import (
	"context"
	"fmt"
	"sync"

	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/symbols"
)

// FakeProvider serves canned data for tests. The zero value returns
// ErrNoData for everything.
type FakeProvider struct {
	mu sync.Mutex

	Quotes       map[string]models.StockData
	Points       []models.HistoricalPoint
	Ratios       map[string]models.FundamentalData
	Err          error
	QuoteCalls   int
	HistoryCalls int
}

func (f *FakeProvider) Name() string { return "fake" }

func (f *FakeProvider) Quote(ctx context.Context, ticker string) (models.StockData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.QuoteCalls++
	if f.Err != nil {
		return models.StockData{}, f.Err
	}
	q, ok := f.Quotes[symbols.Normalize(ticker)]
	if !ok {
		return models.StockData{}, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	return q, nil
}

func (f *FakeProvider) History(ctx context.Context, ticker, period string) ([]models.HistoricalPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HistoryCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Points) == 0 {
		return nil, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	out := make([]models.HistoricalPoint, len(f.Points))
	copy(out, f.Points)
	return out, nil
}

func (f *FakeProvider) Fundamentals(ctx context.Context, ticker string) (models.FundamentalData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return models.FundamentalData{}, f.Err
	}
	r, ok := f.Ratios[symbols.Normalize(ticker)]
	if !ok {
		return models.FundamentalData{}, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	return r, nil
}

var _ Provider = (*FakeProvider)(nil)
