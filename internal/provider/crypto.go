package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/metrics"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// coinGeckoIDs maps ticker symbols to CoinGecko coin ids
var coinGeckoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"LTC":   "litecoin",
	"XRP":   "ripple",
	"DOGE":  "dogecoin",
	"SOL":   "solana",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
}

// CoinID returns the CoinGecko id for symbol, lower-casing unknown symbols
func CoinID(symbol string) string {
	if id, ok := coinGeckoIDs[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

type coinPrice struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
	USDMarketCap float64 `json:"usd_market_cap"`
}

// CryptoClient fetches USD prices from the CoinGecko simple price API
type CryptoClient struct {
	config     *config.CryptoConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCryptoClient creates a new CoinGecko client
func NewCryptoClient(cfg *config.CryptoConfig, logger *zap.Logger) *CryptoClient {
	return &CryptoClient{
		config:     cfg,
		httpClient: newHTTPClient(cfg.Timeout),
		logger:     logger.With(zap.String("component", "provider.crypto")),
	}
}

// Fetch returns the USD quote for symbol
func (c *CryptoClient) Fetch(ctx context.Context, symbol string) (*model.CryptoQuote, error) {
	id := CoinID(symbol)

	params := url.Values{}
	params.Set("ids", id)
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")
	params.Set("include_market_cap", "true")
	endpoint := fmt.Sprintf("%s/simple/price?%s", strings.TrimRight(c.config.APIBase, "/"), params.Encode())

	var data map[string]coinPrice
	if err := getJSON(ctx, c.httpClient, NameCrypto, endpoint, &data); err != nil {
		return nil, err
	}

	price, ok := data[id]
	if !ok {
		return nil, fmt.Errorf("price for %s: %w", id, ErrNoData)
	}

	return &model.CryptoQuote{
		Symbol:    strings.ToUpper(symbol),
		Price:     price.USD,
		Change24h: price.USD24hChange,
		MarketCap: price.USDMarketCap,
	}, nil
}

// Lookup is Fetch with failures degraded to absence
func (c *CryptoClient) Lookup(ctx context.Context, symbol string) (*model.CryptoQuote, bool) {
	started := time.Now()
	q, err := c.Fetch(ctx, symbol)
	if err != nil {
		metrics.ObserveProvider(NameCrypto, metrics.OutcomeUnavailable, started)
		c.logger.Warn("crypto lookup failed", zap.String("symbol", symbol), zap.Error(err))
		return nil, false
	}
	metrics.ObserveProvider(NameCrypto, metrics.OutcomeOK, started)
	return q, true
}
