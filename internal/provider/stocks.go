package provider

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/metrics"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// chartResponse holds the fields consumed from the Yahoo v8 chart endpoint
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string   `json:"symbol"`
				Currency           string   `json:"currency"`
				LongName           string   `json:"longName"`
				ShortName          string   `json:"shortName"`
				RegularMarketPrice float64  `json:"regularMarketPrice"`
				ChartPreviousClose float64  `json:"chartPreviousClose"`
				PreviousClose      *float64 `json:"previousClose"`
				MarketCap          *int64   `json:"marketCap"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// StockClient fetches the latest price and previous close for a ticker
type StockClient struct {
	config     *config.StocksConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewStockClient creates a new equities client
func NewStockClient(cfg *config.StocksConfig, logger *zap.Logger) *StockClient {
	return &StockClient{
		config:     cfg,
		httpClient: newHTTPClient(cfg.Timeout),
		logger:     logger.With(zap.String("component", "provider.stocks")),
	}
}

// Fetch returns a quote for symbol
func (c *StockClient) Fetch(ctx context.Context, symbol string) (*model.StockQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	params := url.Values{}
	params.Set("range", "1d")
	params.Set("interval", "1d")
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		strings.TrimRight(c.config.APIBase, "/"), url.PathEscape(symbol), params.Encode())

	var data chartResponse
	if err := getJSON(ctx, c.httpClient, NameStocks, endpoint, &data); err != nil {
		return nil, err
	}
	if data.Chart.Error != nil {
		return nil, fmt.Errorf("quote for %s: %s: %w", symbol, data.Chart.Error.Description, ErrNoData)
	}
	if len(data.Chart.Result) == 0 || data.Chart.Result[0].Meta.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("quote for %s: %w", symbol, ErrNoData)
	}

	meta := data.Chart.Result[0].Meta
	price := meta.RegularMarketPrice
	prevClose := meta.ChartPreviousClose
	if meta.PreviousClose != nil {
		prevClose = *meta.PreviousClose
	}
	if prevClose == 0 {
		prevClose = price
	}

	change := price - prevClose
	changePercent := 0.0
	if prevClose != 0 {
		changePercent = change / prevClose * 100
	}

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}
	if name == "" {
		name = symbol
	}
	currency := meta.Currency
	if currency == "" {
		currency = "USD"
	}

	return &model.StockQuote{
		Symbol:        symbol,
		Name:          name,
		Price:         round2(price),
		Change:        round2(change),
		ChangePercent: round2(changePercent),
		Currency:      currency,
		MarketCap:     meta.MarketCap,
	}, nil
}

// Lookup is Fetch with failures degraded to absence
func (c *StockClient) Lookup(ctx context.Context, symbol string) (*model.StockQuote, bool) {
	started := time.Now()
	q, err := c.Fetch(ctx, symbol)
	if err != nil {
		metrics.ObserveProvider(NameStocks, metrics.OutcomeUnavailable, started)
		c.logger.Warn("stock lookup failed", zap.String("symbol", symbol), zap.Error(err))
		return nil, false
	}
	metrics.ObserveProvider(NameStocks, metrics.OutcomeOK, started)
	return q, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
