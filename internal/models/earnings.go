package models

import "time"

// SentimentAnalysis is the LLM verdict on one earnings-call transcript.
// A symbol keeps at most one analysis; re-analysing overwrites it.
type SentimentAnalysis struct {
	ID             int       `json:"id"`
	StockSymbol    string    `json:"stockSymbol"`
	TranscriptText string    `json:"transcriptText"`
	SentimentScore float64   `json:"sentimentScore"`
	PositiveCount  int       `json:"positiveCount"`
	NeutralCount   int       `json:"neutralCount"`
	NegativeCount  int       `json:"negativeCount"`
	Confidence     float64   `json:"confidence"`
	Summary        string    `json:"summary"`
	KeyHighlights  []string  `json:"keyHighlights"`
	RiskFactors    []string  `json:"riskFactors"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Speaker names one participant of an earnings call.
type Speaker struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// EarningsCallTranscript is a generated transcript for one quarter.
// Transcripts accumulate per symbol in arrival order.
type EarningsCallTranscript struct {
	ID          int       `json:"id"`
	StockSymbol string    `json:"stockSymbol"`
	Quarter     string    `json:"quarter"`
	Year        string    `json:"year"`
	Transcript  string    `json:"transcript"`
	Speakers    []Speaker `json:"speakers"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AnalyzeRequest is the body of POST /api/stocks/{symbol}/analyze.
type AnalyzeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// GenerateRequest is the body of POST /api/stocks/{symbol}/earnings/generate.
type GenerateRequest struct {
	Quarter string `json:"quarter" validate:"required"`
	Year    string `json:"year" validate:"required"`
}
