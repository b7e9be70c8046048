package service

import (
	"context"
	"fmt"

	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/symbols"
)

// AnalyzeSentiment scores a transcript with the LLM and stores the
// result, replacing any earlier analysis for the symbol.
func (s *Service) AnalyzeSentiment(ctx context.Context, ticker, transcript string) (models.SentimentAnalysis, error) {
	sym := symbols.Normalize(ticker)
	analysis, err := s.llm.AnalyzeSentiment(ctx, sym, transcript)
	if err != nil {
		return models.SentimentAnalysis{}, err
	}
	analysis.CreatedAt = s.now()
	return s.store.PutSentiment(analysis), nil
}

// Sentiment returns the stored analysis for a symbol.
func (s *Service) Sentiment(ticker string) (models.SentimentAnalysis, error) {
	sym := symbols.Normalize(ticker)
	analysis, ok := s.store.GetSentiment(sym)
	if !ok {
		return models.SentimentAnalysis{}, fmt.Errorf("no sentiment analysis for %s: %w", sym, ErrNotFound)
	}
	return analysis, nil
}

// GenerateTranscript asks the LLM for a synthetic earnings call and
// stores it. The company name comes from the cached quote when
// available, otherwise from a fresh fetch.
func (s *Service) GenerateTranscript(ctx context.Context, ticker, quarter, year string) (models.EarningsCallTranscript, error) {
	sym := symbols.Normalize(ticker)

	companyName := sym
	if cached, ok := s.store.GetStock(sym); ok {
		companyName = cached.Name
	} else {
		data, err := s.Quote(ctx, sym)
		if err != nil {
			return models.EarningsCallTranscript{}, err
		}
		companyName = data.Name
	}

	text, err := s.llm.GenerateTranscript(ctx, companyName, quarter, year)
	if err != nil {
		return models.EarningsCallTranscript{}, err
	}

	return s.store.AppendTranscript(models.EarningsCallTranscript{
		StockSymbol: sym,
		Quarter:     quarter,
		Year:        year,
		Transcript:  text,
		Speakers:    defaultSpeakers(),
		CreatedAt:   s.now(),
	}), nil
}

// Transcript returns the stored transcript for an exact quarter/year.
func (s *Service) Transcript(ticker, quarter, year string) (models.EarningsCallTranscript, error) {
	sym := symbols.Normalize(ticker)
	t, ok := s.store.GetTranscript(sym, quarter, year)
	if !ok {
		return models.EarningsCallTranscript{}, fmt.Errorf("no earnings call transcript for %s Q%s %s: %w", sym, quarter, year, ErrNotFound)
	}
	return t, nil
}

// LatestTranscript returns the most recently generated transcript for a
// symbol.
func (s *Service) LatestTranscript(ticker string) (models.EarningsCallTranscript, error) {
	sym := symbols.Normalize(ticker)
	t, ok := s.store.LatestTranscript(sym)
	if !ok {
		return models.EarningsCallTranscript{}, fmt.Errorf("no earnings call transcript for %s: %w", sym, ErrNotFound)
	}
	return t, nil
}

// SummarizeTranscript condenses a stored transcript for a quarter.
func (s *Service) SummarizeTranscript(ctx context.Context, ticker, quarter, year string) (string, error) {
	t, err := s.Transcript(ticker, quarter, year)
	if err != nil {
		return "", err
	}
	return s.llm.SummarizeTranscript(ctx, t.Transcript)
}

func defaultSpeakers() []models.Speaker {
	return []models.Speaker{
		{Name: "CEO", Role: "Chief Executive Officer"},
		{Name: "CFO", Role: "Chief Financial Officer"},
		{Name: "Analyst", Role: "Financial Analyst"},
	}
}
