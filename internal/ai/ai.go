// Package ai wraps the chat-model calls used for earnings-call text:
// sentiment analysis, transcript generation and summarization.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	aclopenai "github.com/cloudwego/eino-ext/libs/acl/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"

	"github.com/stockpulse/stockpulse/config"
	"github.com/stockpulse/stockpulse/internal/models"
)

// Client runs the LLM operations. The analyzer model is pinned to JSON
// output for sentiment analysis; the generator produces free text.
type Client struct {
	analyzer  model.BaseChatModel
	generator model.BaseChatModel
	log       logrus.FieldLogger
}

// New builds a Client for the configured provider. OpenAI-compatible
// endpoints get a dedicated JSON-mode model for analysis; DeepSeek
// relies on the prompt to keep the output parseable.
func New(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		analyzer, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.LLMModel,
			ResponseFormat: &aclopenai.ChatCompletionResponseFormat{
				Type: aclopenai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("init analyzer model: %w", err)
		}
		generator, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.LLMModel,
		})
		if err != nil {
			return nil, fmt.Errorf("init generator model: %w", err)
		}
		return &Client{analyzer: analyzer, generator: generator, log: log}, nil
	case "deepseek":
		dcfg := &deepseek.ChatModelConfig{
			APIKey: cfg.DeepSeekAPIKey,
			Model:  cfg.LLMModel,
		}
		if cfg.LLMBaseURL != "" {
			dcfg.BaseURL = cfg.LLMBaseURL
		}
		cm, err := deepseek.NewChatModel(ctx, dcfg)
		if err != nil {
			return nil, fmt.Errorf("init deepseek model: %w", err)
		}
		return &Client{analyzer: cm, generator: cm, log: log}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

// NewWithModels is for tests.
func NewWithModels(analyzer, generator model.BaseChatModel, log logrus.FieldLogger) *Client {
	return &Client{analyzer: analyzer, generator: generator, log: log}
}

// sentimentResponse mirrors the JSON schema requested from the model.
// Pointers distinguish a missing field from a zero value.
type sentimentResponse struct {
	SentimentScore *float64 `json:"sentimentScore"`
	PositiveCount  *int     `json:"positiveCount"`
	NeutralCount   *int     `json:"neutralCount"`
	NegativeCount  *int     `json:"negativeCount"`
	Confidence     *float64 `json:"confidence"`
	Summary        *string  `json:"summary"`
	KeyHighlights  []string `json:"keyHighlights"`
	RiskFactors    []string `json:"riskFactors"`
}

// AnalyzeSentiment scores a transcript. The returned record carries no
// ID or timestamp; the caller stores it.
func (c *Client) AnalyzeSentiment(ctx context.Context, symbol, transcript string) (models.SentimentAnalysis, error) {
	msg, err := c.analyzer.Generate(ctx, []*schema.Message{
		schema.SystemMessage(sentimentSystemPrompt),
		schema.UserMessage(fmt.Sprintf(sentimentUserPromptFmt, symbol, transcript)),
	}, model.WithTemperature(0.3))
	if err != nil {
		return models.SentimentAnalysis{}, fmt.Errorf("sentiment analysis failed: %w", err)
	}

	var resp sentimentResponse
	if err := json.Unmarshal([]byte(stripFences(msg.Content)), &resp); err != nil {
		return models.SentimentAnalysis{}, fmt.Errorf("sentiment analysis failed: parse response: %w", err)
	}
	if resp.SentimentScore == nil || resp.PositiveCount == nil || resp.NeutralCount == nil ||
		resp.NegativeCount == nil || resp.Confidence == nil || resp.Summary == nil {
		return models.SentimentAnalysis{}, fmt.Errorf("sentiment analysis failed: response missing required fields")
	}

	return models.SentimentAnalysis{
		StockSymbol:    symbol,
		TranscriptText: transcript,
		SentimentScore: clamp(*resp.SentimentScore, 1, 10),
		PositiveCount:  max(*resp.PositiveCount, 0),
		NeutralCount:   max(*resp.NeutralCount, 0),
		NegativeCount:  max(*resp.NegativeCount, 0),
		Confidence:     clamp(*resp.Confidence, 0, 1),
		Summary:        *resp.Summary,
		KeyHighlights:  resp.KeyHighlights,
		RiskFactors:    resp.RiskFactors,
	}, nil
}

// GenerateTranscript produces a synthetic earnings-call transcript for
// the given company and quarter.
func (c *Client) GenerateTranscript(ctx context.Context, companyName, quarter, year string) (string, error) {
	msg, err := c.generator.Generate(ctx, []*schema.Message{
		schema.SystemMessage(fmt.Sprintf(transcriptSystemPromptFmt, companyName, quarter, year)),
		schema.UserMessage(fmt.Sprintf(transcriptUserPromptFmt, companyName, quarter, year)),
	}, model.WithTemperature(0.7), model.WithMaxTokens(2000))
	if err != nil {
		return "", fmt.Errorf("generate transcript: %w", err)
	}
	if strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("generate transcript: empty model response")
	}
	return msg.Content, nil
}

// SummarizeTranscript condenses a transcript into a few paragraphs.
func (c *Client) SummarizeTranscript(ctx context.Context, transcript string) (string, error) {
	msg, err := c.generator.Generate(ctx, []*schema.Message{
		schema.SystemMessage(summarySystemPrompt),
		schema.UserMessage(fmt.Sprintf(summaryUserPromptFmt, transcript)),
	}, model.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("summarize transcript: %w", err)
	}
	if strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("summarize transcript: empty model response")
	}
	return msg.Content, nil
}

// stripFences removes a markdown code fence wrapper, which some models
// add around JSON even when asked not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
