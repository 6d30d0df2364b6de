package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is an Alpha Vantage REST API client. It performs no retries and no
// caching; callers decide how to degrade when a request fails.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Alpha Vantage client
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log.With().Str("client", "alphavantage").Logger(),
	}
}

// GlobalQuote fetches the current quote for a symbol.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var parsed globalQuoteResponse
	if err := c.get(ctx, url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
	}, &parsed); err != nil {
		return nil, err
	}

	if msg := firstNonEmpty(parsed.Note, parsed.Information); msg != "" {
		return nil, fmt.Errorf("alphavantage rejected quote request for %s: %s", symbol, msg)
	}
	if parsed.GlobalQuote.Price == "" {
		return nil, fmt.Errorf("no quote data available for %s", symbol)
	}

	price, err := strconv.ParseFloat(parsed.GlobalQuote.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote price for %s: %w", symbol, err)
	}

	quote := &Quote{
		Symbol:        symbol,
		Price:         price,
		ChangePercent: parsed.GlobalQuote.ChangePercent,
	}
	if v, err := strconv.ParseFloat(parsed.GlobalQuote.Change, 64); err == nil {
		quote.Change = v
	}
	if v, err := strconv.ParseFloat(parsed.GlobalQuote.PreviousClose, 64); err == nil {
		quote.PreviousClose = v
	}
	if v, err := strconv.ParseInt(parsed.GlobalQuote.Volume, 10, 64); err == nil {
		quote.Volume = v
	}

	return quote, nil
}

// DailySeries fetches up to the last `days` daily closing prices for a
// symbol, ordered oldest to newest.
func (c *Client) DailySeries(ctx context.Context, symbol string, days int) ([]float64, error) {
	bars, err := c.DatedDailySeries(ctx, symbol, days)
	if err != nil {
		return nil, err
	}

	closes := make([]float64, 0, len(bars))
	for _, bar := range bars {
		closes = append(closes, bar.Close)
	}
	return closes, nil
}

// DatedDailySeries fetches up to the last `days` daily bars for a symbol,
// ordered oldest to newest, keeping the trading date of each close.
func (c *Client) DatedDailySeries(ctx context.Context, symbol string, days int) ([]DailyBar, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var parsed dailySeriesResponse
	if err := c.get(ctx, url.Values{
		"function":   {"TIME_SERIES_DAILY"},
		"symbol":     {symbol},
		"outputsize": {"compact"},
	}, &parsed); err != nil {
		return nil, err
	}

	if msg := firstNonEmpty(parsed.Note, parsed.Information); msg != "" {
		return nil, fmt.Errorf("alphavantage rejected series request for %s: %s", symbol, msg)
	}
	if len(parsed.TimeSeries) == 0 {
		return nil, fmt.Errorf("no historical data available for %s", symbol)
	}

	dates := make([]string, 0, len(parsed.TimeSeries))
	for date := range parsed.TimeSeries {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	bars := make([]DailyBar, 0, len(dates))
	for _, date := range dates {
		v, err := strconv.ParseFloat(parsed.TimeSeries[date].Close, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse close for %s on %s: %w", symbol, date, err)
		}
		bars = append(bars, DailyBar{Date: date, Close: v})
	}

	return bars, nil
}

// get performs a GET against the API and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("function", params.Get("function")).
		Str("symbol", params.Get("symbol")).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Alpha Vantage request")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
