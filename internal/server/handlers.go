package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/stockpulse/stockpulse/internal/market"
	"github.com/stockpulse/stockpulse/internal/models"
	"github.com/stockpulse/stockpulse/internal/service"
)

// statusFor maps service errors onto the response taxonomy: data that
// does not exist is 404, everything else is an upstream failure.
func statusFor(err error) int {
	if errors.Is(err, market.ErrNoData) || errors.Is(err, service.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, context string) {
	code := statusFor(err)
	a.log.WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": code,
	}).WithError(err).Error(context)
	respondWithError(w, code, fmt.Sprintf("%s: %v", context, err))
}

func (a *API) stockHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	data, err := a.svc.Quote(r.Context(), symbol)
	if err != nil {
		a.fail(w, r, err, "Failed to fetch stock data")
		return
	}
	respondWithJSON(w, http.StatusOK, data)
}

func (a *API) historyHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "1D"
	}
	points, err := a.svc.History(r.Context(), symbol, period)
	if err != nil {
		a.fail(w, r, err, "Failed to fetch historical data")
		return
	}
	respondWithJSON(w, http.StatusOK, points)
}

func (a *API) searchHandler(w http.ResponseWriter, r *http.Request) {
	matches := a.svc.Search(mux.Vars(r)["query"])
	respondWithJSON(w, http.StatusOK, matches)
}

func (a *API) recentHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.Recent())
}

func (a *API) fundamentalsHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	data, err := a.svc.Fundamentals(r.Context(), symbol)
	if err != nil {
		a.fail(w, r, err, "Failed to fetch fundamentals")
		return
	}
	respondWithJSON(w, http.StatusOK, data)
}

func (a *API) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "transcript is required")
		return
	}

	analysis, err := a.svc.AnalyzeSentiment(r.Context(), symbol, req.Transcript)
	if err != nil {
		a.fail(w, r, err, "Sentiment analysis failed")
		return
	}
	respondWithJSON(w, http.StatusOK, analysis)
}

func (a *API) sentimentHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	analysis, err := a.svc.Sentiment(symbol)
	if err != nil {
		a.fail(w, r, err, "No sentiment analysis found")
		return
	}
	respondWithJSON(w, http.StatusOK, analysis)
}

func (a *API) generateTranscriptHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "quarter and year are required")
		return
	}

	transcript, err := a.svc.GenerateTranscript(r.Context(), symbol, req.Quarter, req.Year)
	if err != nil {
		a.fail(w, r, err, "Failed to generate transcript")
		return
	}
	respondWithJSON(w, http.StatusOK, transcript)
}

func (a *API) transcriptHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transcript, err := a.svc.Transcript(vars["symbol"], vars["quarter"], vars["year"])
	if err != nil {
		a.fail(w, r, err, "No earnings call transcript found")
		return
	}
	respondWithJSON(w, http.StatusOK, transcript)
}

func (a *API) latestTranscriptHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	transcript, err := a.svc.LatestTranscript(symbol)
	if err != nil {
		a.fail(w, r, err, "No earnings call transcript found")
		return
	}
	respondWithJSON(w, http.StatusOK, transcript)
}

func (a *API) summaryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	summary, err := a.svc.SummarizeTranscript(r.Context(), vars["symbol"], vars["quarter"], vars["year"])
	if err != nil {
		a.fail(w, r, err, "Failed to summarize transcript")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (a *API) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "nse-stock-analysis-api",
	})
}
