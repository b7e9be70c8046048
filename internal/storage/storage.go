// Package storage keeps all service state in guarded in-memory maps.
// Nothing survives a restart; the store exists so a process-lifetime
// cache has one owner instead of package-level globals.
package storage

import "github.com/stockpulse/stockpulse/internal/models"

// StockStore caches quote snapshots keyed by symbol.
type StockStore interface {
	PutStock(stock models.StockData) models.StockData
	GetStock(symbol string) (models.StockData, bool)
	RecentStocks(limit int) []models.StockData
}

// SentimentStore keeps at most one analysis per symbol.
type SentimentStore interface {
	PutSentiment(s models.SentimentAnalysis) models.SentimentAnalysis
	GetSentiment(symbol string) (models.SentimentAnalysis, bool)
}

// TranscriptStore accumulates generated transcripts per symbol in
// arrival order.
type TranscriptStore interface {
	AppendTranscript(t models.EarningsCallTranscript) models.EarningsCallTranscript
	GetTranscript(symbol, quarter, year string) (models.EarningsCallTranscript, bool)
	LatestTranscript(symbol string) (models.EarningsCallTranscript, bool)
}

// FundamentalsStore caches fundamental snapshots keyed by symbol.
type FundamentalsStore interface {
	PutFundamentals(f models.FundamentalData) models.FundamentalData
	GetFundamentals(symbol string) (models.FundamentalData, bool)
}

// Store is the full storage surface used by the service layer. The
// in-memory implementation can be swapped for a real key-value store
// without touching callers.
type Store interface {
	StockStore
	SentimentStore
	TranscriptStore
	FundamentalsStore
}
