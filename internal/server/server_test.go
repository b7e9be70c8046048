package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpulse/stockpulse/config"
	"github.com/stockpulse/stockpulse/internal/market"
	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/service"
	"github.com/stockpulse/stockpulse/internal/storage"
)

type stubLLM struct {
	analysis   models.SentimentAnalysis
	transcript string
	summary    string
	err        error
}

func (s *stubLLM) AnalyzeSentiment(ctx context.Context, symbol, transcript string) (models.SentimentAnalysis, error) {
	if s.err != nil {
		return models.SentimentAnalysis{}, s.err
	}
	out := s.analysis
	out.StockSymbol = symbol
	out.TranscriptText = transcript
	return out, nil
}

func (s *stubLLM) GenerateTranscript(ctx context.Context, companyName, quarter, year string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.transcript, nil
}

func (s *stubLLM) SummarizeTranscript(ctx context.Context, transcript string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func newTestAPI(provider market.Provider, llm service.LLM) *API {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := storage.NewMemoryStore()
	svc := service.New(store, provider, llm, log, 5*time.Minute, time.Hour)

	cfg := &config.Config{Port: "0"}
	return NewAPI(cfg, svc, log)
}

func doRequest(t *testing.T, api *API, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	api.Handler().ServeHTTP(rr, req)
	return rr
}

func TestGetStock(t *testing.T) {
	provider := &market.FakeProvider{
		Quotes: map[string]models.StockData{
			"TCS": {Symbol: "TCS", Name: "Tata Consultancy Services", Price: 3500, Volume: "2.5L"},
		},
	}
	api := newTestAPI(provider, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/tcs", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.StockData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "TCS", got.Symbol)
	assert.Equal(t, 3500.0, got.Price)
}

func TestGetStockNotFound(t *testing.T) {
	api := newTestAPI(&market.FakeProvider{}, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/NOPE", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "NOPE")
}

func TestRecentNotShadowedBySymbolRoute(t *testing.T) {
	api := newTestAPI(&market.FakeProvider{}, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/recent", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.StockData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Empty(t, got)
}

func TestSearch(t *testing.T) {
	api := newTestAPI(&market.FakeProvider{}, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/search/bank", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "HDFCBANK", got[0]["symbol"])
}

func TestHistory(t *testing.T) {
	provider := &market.FakeProvider{
		Points: []models.HistoricalPoint{
			{Date: "2025-07-17", Price: 99},
			{Date: "2025-07-18", Price: 100},
		},
	}
	api := newTestAPI(provider, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/TCS/history?period=1M", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.HistoricalPoint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestFundamentals(t *testing.T) {
	provider := &market.FakeProvider{
		Ratios: map[string]models.FundamentalData{
			"TCS": {StockSymbol: "TCS", PERatio: 30},
		},
	}
	api := newTestAPI(provider, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/TCS/fundamentals", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.FundamentalData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 30.0, got.PERatio)
}

func TestAnalyzeValidation(t *testing.T) {
	api := newTestAPI(&market.FakeProvider{}, &stubLLM{})

	rr := doRequest(t, api, http.MethodPost, "/api/stocks/TCS/analyze", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, api, http.MethodPost, "/api/stocks/TCS/analyze", []byte(`not json`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAnalyzeAndFetchSentiment(t *testing.T) {
	llm := &stubLLM{analysis: models.SentimentAnalysis{SentimentScore: 8, Confidence: 0.9, Summary: "good"}}
	api := newTestAPI(&market.FakeProvider{}, llm)

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/TCS/sentiment", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	body, _ := json.Marshal(models.AnalyzeRequest{Transcript: "we grew revenue"})
	rr = doRequest(t, api, http.MethodPost, "/api/stocks/TCS/analyze", body)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/stocks/TCS/sentiment", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.SentimentAnalysis
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 8.0, got.SentimentScore)
	assert.Equal(t, "we grew revenue", got.TranscriptText)
}

func TestEarningsFlow(t *testing.T) {
	provider := &market.FakeProvider{
		Quotes: map[string]models.StockData{
			"TCS": {Symbol: "TCS", Name: "Tata Consultancy Services"},
		},
	}
	llm := &stubLLM{transcript: "CEO: Welcome.", summary: "Revenue grew."}
	api := newTestAPI(provider, llm)

	rr := doRequest(t, api, http.MethodGet, "/api/stocks/TCS/earnings/latest", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, api, http.MethodPost, "/api/stocks/TCS/earnings/generate", []byte(`{"quarter":"2"}`))
	require.Equal(t, http.StatusBadRequest, rr.Code, "year is required")

	body, _ := json.Marshal(models.GenerateRequest{Quarter: "2", Year: "2025"})
	rr = doRequest(t, api, http.MethodPost, "/api/stocks/TCS/earnings/generate", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var generated models.EarningsCallTranscript
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &generated))
	assert.Equal(t, "CEO: Welcome.", generated.Transcript)
	assert.Len(t, generated.Speakers, 3)

	rr = doRequest(t, api, http.MethodGet, "/api/stocks/TCS/earnings/2/2025", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/stocks/TCS/earnings/latest", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/stocks/TCS/earnings/2/2025/summary", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var summary map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, "Revenue grew.", summary["summary"])

	rr = doRequest(t, api, http.MethodGet, "/api/stocks/TCS/earnings/4/2024", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpstreamFailureIsServerError(t *testing.T) {
	llm := &stubLLM{err: context.DeadlineExceeded}
	api := newTestAPI(&market.FakeProvider{}, llm)

	body, _ := json.Marshal(models.AnalyzeRequest{Transcript: "text"})
	rr := doRequest(t, api, http.MethodPost, "/api/stocks/TCS/analyze", body)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCORSPreflightWithoutCredentials(t *testing.T) {
	api := newTestAPI(&market.FakeProvider{}, &stubLLM{})
	handler := withCORS(api.Handler())

	req := httptest.NewRequest(http.MethodOptions, "/api/stocks/TCS", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"),
		"wildcard origin must not be combined with allowed credentials")
}

func TestHealth(t *testing.T) {
	api := newTestAPI(&market.FakeProvider{}, &stubLLM{})

	rr := doRequest(t, api, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got["status"])
}
