package market

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	"github.com/stockpulse/stockpulse/internal/format"
	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/symbols"
)

// YahooProvider reads quotes and charts straight from Yahoo Finance.
//
// The underlying client has no context support, so ctx is honored only
// between calls, not inside them.
type YahooProvider struct {
	// DailyOnly restricts every history period to daily bars instead of
	// the interval-aware windows.
	DailyOnly bool
}

func NewYahooProvider(dailyOnly bool) *YahooProvider {
	return &YahooProvider{DailyOnly: dailyOnly}
}

func (p *YahooProvider) Name() string { return "yahoo" }

func (p *YahooProvider) Quote(ctx context.Context, ticker string) (models.StockData, error) {
	yahooSym := symbols.Resolve(ticker)

	// A five calendar-day window of daily bars always spans at least two
	// trading sessions, which is what the change computation needs.
	end := time.Now()
	start := end.AddDate(0, 0, -5)
	bars, err := fetchBars(yahooSym, start, end, datetime.OneDay)
	if err != nil {
		return models.StockData{}, fmt.Errorf("chart %s: %w", yahooSym, err)
	}
	if len(bars) == 0 {
		return models.StockData{}, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}

	last := bars[len(bars)-1]
	prev := last
	if len(bars) > 1 {
		prev = bars[len(bars)-2]
	}
	// Bars carry decimal prices; keep the change arithmetic exact and
	// convert to float only at the edge.
	price, _ := last.Close.Float64()
	change, _ := last.Close.Sub(prev.Close).Float64()
	changePct := 0.0
	if !prev.Close.IsZero() {
		changePct, _ = last.Close.Sub(prev.Close).Div(prev.Close).Mul(decimal.NewFromInt(100)).Float64()
	}

	eq, err := equity.Get(yahooSym)
	if err != nil {
		return models.StockData{}, fmt.Errorf("equity %s: %w", yahooSym, err)
	}
	name := eq.LongName
	if name == "" {
		name = eq.ShortName
	}
	if name == "" {
		name = symbols.Normalize(ticker)
	}

	var marketCap *float64
	if eq.MarketCap > 0 {
		v := float64(eq.MarketCap)
		marketCap = &v
	}
	var peRatio *float64
	if eq.TrailingPE != 0 && !math.IsNaN(eq.TrailingPE) {
		v := eq.TrailingPE
		peRatio = &v
	}

	open, _ := last.Open.Float64()
	high, _ := last.High.Float64()
	low, _ := last.Low.Float64()
	volume := float64(last.Volume)

	return models.StockData{
		Symbol:        symbols.Normalize(ticker),
		Name:          name,
		Price:         price,
		OpenPrice:     open,
		HighPrice:     high,
		LowPrice:      low,
		Volume:        format.Volume(&volume),
		Change:        change,
		ChangePercent: changePct,
		MarketCap:     format.MarketCap(marketCap),
		PERatio:       peRatio,
	}, nil
}

func (p *YahooProvider) History(ctx context.Context, ticker, period string) ([]models.HistoricalPoint, error) {
	yahooSym := symbols.Resolve(ticker)
	now := time.Now()
	start, interval, intraday := historyWindow(period, p.DailyOnly, now)

	bars, err := fetchBars(yahooSym, start, now, interval)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", yahooSym, err)
	}
	if intraday && len(bars) == 0 {
		// Intraday bars are often missing outside market hours; fall
		// back to a daily view of the last few sessions.
		bars, err = fetchBars(yahooSym, now.AddDate(0, 0, -5), now, datetime.OneDay)
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", yahooSym, err)
		}
		intraday = false
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}

	layout := "2006-01-02"
	if intraday && period == "1D" {
		layout = "2006-01-02 15:04"
	}
	points := make([]models.HistoricalPoint, 0, len(bars))
	for _, b := range bars {
		price, _ := b.Close.Float64()
		points = append(points, models.HistoricalPoint{
			Date:  time.Unix(int64(b.Timestamp), 0).Format(layout),
			Price: price,
		})
	}
	return points, nil
}

func (p *YahooProvider) Fundamentals(ctx context.Context, ticker string) (models.FundamentalData, error) {
	yahooSym := symbols.Resolve(ticker)
	eq, err := equity.Get(yahooSym)
	if err != nil {
		return models.FundamentalData{}, fmt.Errorf("equity %s: %w", yahooSym, err)
	}
	if eq == nil {
		return models.FundamentalData{}, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	// Ratios Yahoo does not expose stay at zero.
	return models.FundamentalData{
		StockSymbol:   symbols.Normalize(ticker),
		PERatio:       eq.TrailingPE,
		EPS:           eq.EpsTrailingTwelveMonths,
		BookValue:     eq.BookValue,
		PriceToBook:   eq.PriceToBook,
		DividendYield: eq.TrailingAnnualDividendYield,
	}, nil
}

// historyWindow maps a UI period token to a chart request. Unknown
// tokens behave like 1D.
func historyWindow(period string, dailyOnly bool, now time.Time) (start time.Time, interval datetime.Interval, intraday bool) {
	if dailyOnly {
		switch period {
		case "1W":
			return now.AddDate(0, 0, -5), datetime.OneDay, false
		case "1M":
			return now.AddDate(0, -1, 0), datetime.OneDay, false
		case "1Y":
			return now.AddDate(-1, 0, 0), datetime.OneDay, false
		default:
			return now.AddDate(0, 0, -1), datetime.OneDay, false
		}
	}
	switch period {
	case "1W":
		return now.AddDate(0, 0, -7), datetime.OneHour, true
	case "1M":
		return now.AddDate(0, -1, 0), datetime.OneDay, false
	case "1Y":
		return now.AddDate(-1, 0, 0), datetime.OneDay, false
	default:
		return now.AddDate(0, 0, -1), datetime.FiveMins, true
	}
}

func fetchBars(symbol string, start, end time.Time, interval datetime.Interval) ([]finance.ChartBar, error) {
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: interval,
	})
	var bars []finance.ChartBar
	for iter.Next() {
		bars = append(bars, *iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return bars, nil
}
