package market

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/symbols"
)

// RemoteProvider talks to the Python quote sidecar over HTTP. The
// sidecar already applies symbol resolution and display formatting, so
// responses map onto the models almost one to one.
type RemoteProvider struct {
	client *resty.Client
}

func NewRemoteProvider(baseURL string) *RemoteProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	return &RemoteProvider{client: client}
}

func (p *RemoteProvider) Name() string { return "remote" }

func (p *RemoteProvider) Quote(ctx context.Context, ticker string) (models.StockData, error) {
	var out models.StockData
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/stock/" + symbols.Normalize(ticker))
	if err != nil {
		return models.StockData{}, fmt.Errorf("sidecar quote %s: %w", ticker, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.StockData{}, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	if !resp.IsSuccess() {
		return models.StockData{}, fmt.Errorf("sidecar quote %s: status %d: %s", ticker, resp.StatusCode(), resp.String())
	}
	return out, nil
}

func (p *RemoteProvider) History(ctx context.Context, ticker, period string) ([]models.HistoricalPoint, error) {
	var out []models.HistoricalPoint
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("period", period).
		SetResult(&out).
		Get("/history/" + symbols.Normalize(ticker))
	if err != nil {
		return nil, fmt.Errorf("sidecar history %s: %w", ticker, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("sidecar history %s: status %d: %s", ticker, resp.StatusCode(), resp.String())
	}
	return out, nil
}

func (p *RemoteProvider) Fundamentals(ctx context.Context, ticker string) (models.FundamentalData, error) {
	var out models.FundamentalData
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/fundamentals/" + symbols.Normalize(ticker))
	if err != nil {
		return models.FundamentalData{}, fmt.Errorf("sidecar fundamentals %s: %w", ticker, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.FundamentalData{}, fmt.Errorf("%w for symbol %s", ErrNoData, ticker)
	}
	if !resp.IsSuccess() {
		return models.FundamentalData{}, fmt.Errorf("sidecar fundamentals %s: status %d: %s", ticker, resp.StatusCode(), resp.String())
	}
	out.StockSymbol = symbols.Normalize(ticker)
	return out, nil
}
