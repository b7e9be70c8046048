package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/stockpulse/stockpulse/internal/models"
)

// MemoryStore is the in-process Store implementation. All maps are
// unbounded; entries are superseded, never evicted.
type MemoryStore struct {
	mu           sync.RWMutex
	nextID       int
	stocks       map[string]models.StockData
	sentiments   map[string]models.SentimentAnalysis
	transcripts  map[string][]models.EarningsCallTranscript
	fundamentals map[string]models.FundamentalData
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:       1,
		stocks:       make(map[string]models.StockData),
		sentiments:   make(map[string]models.SentimentAnalysis),
		transcripts:  make(map[string][]models.EarningsCallTranscript),
		fundamentals: make(map[string]models.FundamentalData),
	}
}

// nextIDLocked hands out process-local record IDs. Callers hold mu.
func (m *MemoryStore) nextIDLocked() int {
	id := m.nextID
	m.nextID++
	return id
}

// PutStock stores a quote snapshot, assigning an ID and stamping
// CreatedAt unless the caller already did.
func (m *MemoryStore) PutStock(stock models.StockData) models.StockData {
	m.mu.Lock()
	defer m.mu.Unlock()

	stock.ID = m.nextIDLocked()
	if stock.CreatedAt.IsZero() {
		stock.CreatedAt = time.Now()
	}
	m.stocks[stock.Symbol] = stock
	return stock
}

func (m *MemoryStore) GetStock(symbol string) (models.StockData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.stocks[symbol]
	return s, ok
}

// RecentStocks returns up to limit cached quotes, most recently fetched
// first.
func (m *MemoryStore) RecentStocks(limit int) []models.StockData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.StockData, 0, len(m.stocks))
	for _, s := range m.stocks {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

func (m *MemoryStore) PutSentiment(s models.SentimentAnalysis) models.SentimentAnalysis {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.nextIDLocked()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	m.sentiments[s.StockSymbol] = s
	return s
}

func (m *MemoryStore) GetSentiment(symbol string) (models.SentimentAnalysis, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sentiments[symbol]
	return s, ok
}

func (m *MemoryStore) AppendTranscript(t models.EarningsCallTranscript) models.EarningsCallTranscript {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.nextIDLocked()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	m.transcripts[t.StockSymbol] = append(m.transcripts[t.StockSymbol], t)
	return t
}

func (m *MemoryStore) GetTranscript(symbol, quarter, year string) (models.EarningsCallTranscript, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.transcripts[symbol] {
		if t.Quarter == quarter && t.Year == year {
			return t, true
		}
	}
	return models.EarningsCallTranscript{}, false
}

func (m *MemoryStore) LatestTranscript(symbol string) (models.EarningsCallTranscript, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ts := m.transcripts[symbol]
	if len(ts) == 0 {
		return models.EarningsCallTranscript{}, false
	}
	return ts[len(ts)-1], true
}

func (m *MemoryStore) PutFundamentals(f models.FundamentalData) models.FundamentalData {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f.LastUpdated.IsZero() {
		f.LastUpdated = time.Now()
	}
	m.fundamentals[f.StockSymbol] = f
	return f
}

func (m *MemoryStore) GetFundamentals(symbol string) (models.FundamentalData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.fundamentals[symbol]
	return f, ok
}
