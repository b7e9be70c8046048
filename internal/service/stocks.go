package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/symbols"
)

// Quote returns the cached snapshot when it is younger than the quote
// TTL, otherwise fetches a fresh one. Concurrent refreshes for the same
// symbol collapse into a single provider call.
func (s *Service) Quote(ctx context.Context, ticker string) (models.StockData, error) {
	sym := symbols.Normalize(ticker)
	if cached, ok := s.store.GetStock(sym); ok && s.now().Sub(cached.CreatedAt) < s.quoteTTL {
		return cached, nil
	}

	v, err, _ := s.group.Do("quote:"+sym, func() (interface{}, error) {
		data, err := s.provider.Quote(ctx, sym)
		if err != nil {
			return nil, err
		}
		data.CreatedAt = s.now()
		return s.store.PutStock(data), nil
	})
	if err != nil {
		return models.StockData{}, err
	}
	return v.(models.StockData), nil
}

// History returns the price series for a UI period token. A series that
// collapsed to a single bar is padded into a synthetic intraday curve
// so the chart has something to draw.
func (s *Service) History(ctx context.Context, ticker, period string) ([]models.HistoricalPoint, error) {
	sym := symbols.Normalize(ticker)
	points, err := s.provider.History(ctx, sym, period)
	if err != nil {
		return nil, err
	}
	if len(points) == 1 {
		s.log.WithFields(logrus.Fields{
			"symbol": sym,
			"period": period,
		}).Warn("single-bar history, padding with synthetic intraday points")
		points = syntheticDay(points[0])
	}
	return points, nil
}

// syntheticDay fans a lone closing price out into seven hourly points
// ending at the real price.
func syntheticDay(p models.HistoricalPoint) []models.HistoricalPoint {
	day := p.Date
	if i := strings.IndexByte(day, ' '); i >= 0 {
		day = day[:i]
	}
	factors := []float64{0.998, 1.002, 0.999, 1.001, 0.997, 1.003, 1.0}
	out := make([]models.HistoricalPoint, 0, len(factors))
	for i, f := range factors {
		out = append(out, models.HistoricalPoint{
			Date:      fmt.Sprintf("%s %02d:00", day, 9+i),
			Price:     p.Price * f,
			Synthetic: true,
		})
	}
	return out
}

// Recent lists the most recently fetched quote snapshots, newest first.
func (s *Service) Recent() []models.StockData {
	return s.store.RecentStocks(10)
}

// Search matches the query against the listed NSE symbols.
func (s *Service) Search(query string) []symbols.Match {
	return symbols.Search(query)
}

// Fundamentals returns cached ratios when fresh, refreshing from the
// provider at most once per TTL window per symbol.
func (s *Service) Fundamentals(ctx context.Context, ticker string) (models.FundamentalData, error) {
	sym := symbols.Normalize(ticker)
	if cached, ok := s.store.GetFundamentals(sym); ok && s.now().Sub(cached.LastUpdated) < s.fundamentalsTTL {
		return cached, nil
	}

	v, err, _ := s.group.Do("fundamentals:"+sym, func() (interface{}, error) {
		data, err := s.provider.Fundamentals(ctx, sym)
		if err != nil {
			return nil, err
		}
		data.LastUpdated = s.now()
		return s.store.PutFundamentals(data), nil
	})
	if err != nil {
		return models.FundamentalData{}, err
	}
	return v.(models.FundamentalData), nil
}
