package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/intent"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/provider"
)

// ClockSource reads the current time in several zones
type ClockSource interface {
	Read() *model.ClockReading
}

// WeatherSource looks up current conditions for a city
type WeatherSource interface {
	Lookup(ctx context.Context, city string) (*model.Weather, bool)
}

// StockSource looks up an equities quote by ticker
type StockSource interface {
	Lookup(ctx context.Context, symbol string) (*model.StockQuote, bool)
}

// CryptoSource looks up a coin quote by symbol
type CryptoSource interface {
	Lookup(ctx context.Context, symbol string) (*model.CryptoQuote, bool)
}

// TelemetrySource samples host resource usage
type TelemetrySource interface {
	Lookup(ctx context.Context) (*model.SystemStats, bool)
}

// Sources are the data providers available to the composer. A nil source
// disables its detector.
type Sources struct {
	Clock     ClockSource
	Weather   WeatherSource
	Stocks    StockSource
	Crypto    CryptoSource
	Telemetry TelemetrySource
}

// PromptBundle is everything sent to the model for one utterance
type PromptBundle struct {
	Persona  string
	Snippets []model.Snippet
	// Names holds the provider name of each entry in Snippets
	Names []string
	Turns []model.Turn
}

// SystemPrompt joins the persona and each snippet block
func (b *PromptBundle) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(b.Persona)
	for _, s := range b.Snippets {
		sb.WriteString("\n\n")
		sb.WriteString(s.Summary())
	}
	return sb.String()
}

type fetchFunc func(ctx context.Context) (model.Snippet, bool)

// detector decides synchronously whether it applies and returns the fetch to run
type detector struct {
	name string
	plan func(u intent.Utterance) fetchFunc
}

// ComposerConfig holds enrichment limits
type ComposerConfig struct {
	Persona string
	Timeout time.Duration
	Workers int
}

// Composer builds the system prompt from the persona and live data
type Composer struct {
	persona   string
	timeout   time.Duration
	workers   int
	detectors []detector
	logger    *zap.Logger
}

// NewComposer creates a composer. Detectors run in the order time, weather,
// equities, crypto, telemetry and their blocks keep that order.
func NewComposer(cfg ComposerConfig, src Sources, logger *zap.Logger) *Composer {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	c := &Composer{
		persona: cfg.Persona,
		timeout: cfg.Timeout,
		workers: cfg.Workers,
		logger:  logger.With(zap.String("component", "composer")),
	}
	c.detectors = buildDetectors(src)
	return c
}

func buildDetectors(src Sources) []detector {
	var ds []detector

	if src.Clock != nil {
		ds = append(ds, detector{name: provider.NameClock, plan: func(u intent.Utterance) fetchFunc {
			if !intent.WantsTime(u) {
				return nil
			}
			return func(context.Context) (model.Snippet, bool) {
				return src.Clock.Read(), true
			}
		}})
	}

	if src.Weather != nil {
		ds = append(ds, detector{name: provider.NameWeather, plan: func(u intent.Utterance) fetchFunc {
			city, ok := intent.ExtractCity(u)
			if !ok {
				return nil
			}
			return func(ctx context.Context) (model.Snippet, bool) {
				w, ok := src.Weather.Lookup(ctx, city)
				if !ok {
					return nil, false
				}
				return w, true
			}
		}})
	}

	if src.Stocks != nil {
		ds = append(ds, detector{name: provider.NameStocks, plan: func(u intent.Utterance) fetchFunc {
			symbol, ok := intent.StockSymbol(u)
			if !ok {
				return nil
			}
			return func(ctx context.Context) (model.Snippet, bool) {
				q, ok := src.Stocks.Lookup(ctx, symbol)
				if !ok {
					return nil, false
				}
				return q, true
			}
		}})
	}

	if src.Crypto != nil {
		ds = append(ds, detector{name: provider.NameCrypto, plan: func(u intent.Utterance) fetchFunc {
			symbol, ok := intent.CryptoSymbol(u)
			if !ok {
				return nil
			}
			return func(ctx context.Context) (model.Snippet, bool) {
				q, ok := src.Crypto.Lookup(ctx, symbol)
				if !ok {
					return nil, false
				}
				return q, true
			}
		}})
	}

	if src.Telemetry != nil {
		ds = append(ds, detector{name: provider.NameTelemetry, plan: func(u intent.Utterance) fetchFunc {
			if !intent.WantsSystemInfo(u) {
				return nil
			}
			return func(ctx context.Context) (model.Snippet, bool) {
				s, ok := src.Telemetry.Lookup(ctx)
				if !ok {
					return nil, false
				}
				return s, true
			}
		}})
	}

	return ds
}

// Compose runs every triggered detector concurrently under one deadline and
// returns the bundle for u with the given history.
func (c *Composer) Compose(ctx context.Context, u intent.Utterance, turns []model.Turn) *PromptBundle {
	bundle := &PromptBundle{Persona: c.persona, Turns: turns}

	fetches := make([]fetchFunc, len(c.detectors))
	triggered := 0
	for i, d := range c.detectors {
		if f := d.plan(u); f != nil {
			fetches[i] = f
			triggered++
		}
	}
	if triggered == 0 {
		return bundle
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	slots := make([]model.Snippet, len(c.detectors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, f := range fetches {
		if f == nil {
			continue
		}
		i, f := i, f
		g.Go(func() error {
			if s, ok := f(gctx); ok {
				slots[i] = s
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, s := range slots {
		if s == nil {
			continue
		}
		bundle.Snippets = append(bundle.Snippets, s)
		bundle.Names = append(bundle.Names, c.detectors[i].name)
	}

	c.logger.Debug("context composed",
		zap.Int("triggered", triggered),
		zap.Strings("snippets", bundle.Names))
	return bundle
}
