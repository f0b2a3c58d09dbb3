package provider

import (
	"context"
	"errors"
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

// openWeatherResponse holds the fields consumed from /weather
type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// WeatherClient fetches current conditions from OpenWeather in metric units
type WeatherClient struct {
	config     *config.WeatherConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWeatherClient creates a new OpenWeather client
func NewWeatherClient(cfg *config.WeatherConfig, logger *zap.Logger) *WeatherClient {
	return &WeatherClient{
		config:     cfg,
		httpClient: newHTTPClient(cfg.Timeout),
		logger:     logger.With(zap.String("component", "provider.weather")),
	}
}

// IsEnabled returns whether an API key is configured
func (c *WeatherClient) IsEnabled() bool {
	return c.config.Enabled
}

// Fetch returns current weather for city
func (c *WeatherClient) Fetch(ctx context.Context, city string) (*model.Weather, error) {
	if !c.config.Enabled {
		return nil, ErrDisabled
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.config.APIKey)
	params.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/weather?%s", strings.TrimRight(c.config.APIBase, "/"), params.Encode())

	var data openWeatherResponse
	if err := getJSON(ctx, c.httpClient, NameWeather, endpoint, &data); err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("weather for %q: %w", city, ErrNoData)
	}

	w := &model.Weather{
		City:        data.Name,
		Country:     data.Sys.Country,
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Humidity:    data.Main.Humidity,
		Description: data.Weather[0].Description,
		Main:        data.Weather[0].Main,
	}
	if data.Wind != nil {
		w.WindSpeed = data.Wind.Speed
	}
	return w, nil
}

// Lookup is Fetch with failures degraded to absence
func (c *WeatherClient) Lookup(ctx context.Context, city string) (*model.Weather, bool) {
	started := time.Now()
	w, err := c.Fetch(ctx, city)
	if err != nil {
		if errors.Is(err, ErrDisabled) {
			metrics.ObserveProvider(NameWeather, metrics.OutcomeDisabled, started)
			return nil, false
		}
		metrics.ObserveProvider(NameWeather, metrics.OutcomeUnavailable, started)
		c.logger.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return nil, false
	}
	metrics.ObserveProvider(NameWeather, metrics.OutcomeOK, started)
	return w, true
}
