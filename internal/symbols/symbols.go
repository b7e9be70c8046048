// Package symbols maps NSE tickers to the Yahoo Finance instrument
// identifiers the market providers understand.
package symbols

import "strings"

// Match is a search hit. Name mirrors the symbol until a proper
// company-name index exists.
type Match struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// MaxSearchResults caps autocomplete responses.
const MaxSearchResults = 10

// nseStocks lists the known NSE tickers in table order. Search results
// follow this order, so keep it stable.
var nseStocks = []string{
	"RELIANCE",
	"TCS",
	"INFY",
	"HDFCBANK",
	"ICICIBANK",
	"BHARTIARTL",
	"KOTAKBANK",
	"LT",
	"ASIANPAINT",
	"MARUTI",
	"SBIN",
	"BAJFINANCE",
	"WIPRO",
	"ULTRACEMCO",
	"ONGC",
	"ADANIENT",
	"TATAMOTORS",
	"AXISBANK",
	"TITAN",
	"POWERGRID",
	"NTPC",
	"NESTLEIND",
	"JSWSTEEL",
	"HINDALCO",
	"COALINDIA",
	"DRREDDY",
	"BAJAJFINSV",
	"BRITANNIA",
	"CIPLA",
	"GRASIM",
	"TECHM",
	"SUNPHARMA",
	"APOLLOHOSP",
	"INDUSINDBK",
	"HCLTECH",
	"DIVISLAB",
	"TATASTEEL",
	"HEROMOTOCO",
	"EICHERMOT",
	"SHREECEM",
	"UPL",
	"BAJAJ-AUTO",
	"BPCL",
	"IOC",
	"TATACONSUM",
	"GODREJCP",
	"DABUR",
	"MCDOWELL-N",
	"SIEMENS",
	"PGHH",
	"PIDILITIND",
	"AMBUJACEM",
	"BANKBARODA",
	"CANBK",
	"VEDL",
	"SAIL",
}

var yahooSymbols = func() map[string]string {
	m := make(map[string]string, len(nseStocks))
	for _, s := range nseStocks {
		m[s] = s + ".NS"
	}
	return m
}()

// Normalize upper-cases a ticker for use as a storage or cache key.
func Normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Resolve converts an NSE ticker to its Yahoo Finance symbol. Unknown
// tickers fall back to the standard NSE exchange suffix.
func Resolve(ticker string) string {
	t := Normalize(ticker)
	if ys, ok := yahooSymbols[t]; ok {
		return ys
	}
	return t + ".NS"
}

// Search returns the registry entries whose symbol contains the query as
// a substring, in table order, capped at MaxSearchResults. An empty query
// matches every entry.
func Search(query string) []Match {
	q := Normalize(query)

	matches := make([]Match, 0, MaxSearchResults)
	for _, sym := range nseStocks {
		if !strings.Contains(sym, q) {
			continue
		}
		matches = append(matches, Match{Symbol: sym, Name: sym})
		if len(matches) == MaxSearchResults {
			break
		}
	}
	return matches
}
