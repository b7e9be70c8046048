// Package service implements the application operations behind the HTTP
// handlers: cached quote lookups, history, symbol search, fundamentals
// and the earnings-call LLM flows.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/stockpulse/stockpulse/internal/market"
	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/storage"
)

// ErrNotFound reports a lookup miss in local storage. Provider misses
// surface as market.ErrNoData instead.
var ErrNotFound = errors.New("not found")

// LLM is the slice of the AI client the service needs. Kept as an
// interface so tests can substitute a canned model.
type LLM interface {
	AnalyzeSentiment(ctx context.Context, symbol, transcript string) (models.SentimentAnalysis, error)
	GenerateTranscript(ctx context.Context, companyName, quarter, year string) (string, error)
	SummarizeTranscript(ctx context.Context, transcript string) (string, error)
}

type Service struct {
	store    storage.Store
	provider market.Provider
	llm      LLM
	log      logrus.FieldLogger

	quoteTTL        time.Duration
	fundamentalsTTL time.Duration

	group singleflight.Group

	// now is swappable so staleness tests can move the clock.
	now func() time.Time
}

func New(store storage.Store, provider market.Provider, llm LLM, log logrus.FieldLogger, quoteTTL, fundamentalsTTL time.Duration) *Service {
	return &Service{
		store:           store,
		provider:        provider,
		llm:             llm,
		log:             log,
		quoteTTL:        quoteTTL,
		fundamentalsTTL: fundamentalsTTL,
		now:             time.Now,
	}
}
