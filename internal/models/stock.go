package models

import "time"

// StockData is a normalized quote snapshot for one NSE symbol.
type StockData struct {
	ID            int       `json:"id"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OpenPrice     float64   `json:"openPrice"`
	HighPrice     float64   `json:"highPrice"`
	LowPrice      float64   `json:"lowPrice"`
	Volume        string    `json:"volume"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	MarketCap     *string   `json:"marketCap,omitempty"`
	PERatio       *float64  `json:"peRatio,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HistoricalPoint is one bar of a price series. Synthetic marks
// placeholder points generated to keep a chart drawable when the
// provider returned a single bar; callers must be able to tell them
// apart from real data.
type HistoricalPoint struct {
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

// FundamentalData is a snapshot of valuation and balance-sheet ratios.
type FundamentalData struct {
	StockSymbol     string    `json:"stockSymbol"`
	MarketCap       float64   `json:"marketCap"`
	PERatio         float64   `json:"peRatio"`
	PEGRatio        float64   `json:"pegRatio"`
	BookValue       float64   `json:"bookValue"`
	DividendYield   float64   `json:"dividendYield"`
	ROE             float64   `json:"roe"`
	DebtToEquity    float64   `json:"debtToEquity"`
	CurrentRatio    float64   `json:"currentRatio"`
	RevenueGrowth   float64   `json:"revenueGrowth"`
	ProfitMargin    float64   `json:"profitMargin"`
	OperatingMargin float64   `json:"operatingMargin"`
	EPS             float64   `json:"eps"`
	PriceToBook     float64   `json:"priceToBook"`
	PriceToSales    float64   `json:"priceToSales"`
	QuickRatio      float64   `json:"quickRatio"`
	ReturnOnAssets  float64   `json:"returnOnAssets"`
	LastUpdated     time.Time `json:"lastUpdated"`
}
