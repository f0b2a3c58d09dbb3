package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeather_Summary(t *testing.T) {
	wind := 3.6
	w := &Weather{
		City:        "Tokyo",
		Country:     "JP",
		Temperature: 21.5,
		FeelsLike:   20,
		Humidity:    65,
		Description: "light rain",
		WindSpeed:   &wind,
	}

	got := w.Summary()
	assert.Contains(t, got, "Current weather in Tokyo, JP:")
	assert.Contains(t, got, "Temperature: 21.5°C (feels like 20°C)")
	assert.Contains(t, got, "Condition: Light Rain")
	assert.Contains(t, got, "Humidity: 65%")
	assert.Contains(t, got, "Wind Speed: 3.6 m/s")
}

func TestWeather_SummaryWithoutWind(t *testing.T) {
	w := &Weather{City: "Paris", Country: "FR", Description: "clear sky"}
	assert.Contains(t, w.Summary(), "Wind Speed: N/A m/s")
}

func TestStockQuote_Summary(t *testing.T) {
	mc := int64(2950000000000)
	q := &StockQuote{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Price:         189.84,
		Change:        1.84,
		ChangePercent: 0.98,
		Currency:      "USD",
		MarketCap:     &mc,
	}

	got := q.Summary()
	assert.Contains(t, got, "Current stock data for Apple Inc. (AAPL):")
	assert.Contains(t, got, "Price: $189.84 USD")
	assert.Contains(t, got, "Change: $1.84 (+0.98%)")
	assert.Contains(t, got, "Market Cap: $2,950,000,000,000")

	q.MarketCap = nil
	assert.NotContains(t, q.Summary(), "Market Cap")
}

func TestCryptoQuote_Summary(t *testing.T) {
	q := &CryptoQuote{Symbol: "BTC", Price: 67123.456, Change24h: -1.5, MarketCap: 1320000000000}

	got := q.Summary()
	assert.Contains(t, got, "Current cryptocurrency data for BTC:")
	assert.Contains(t, got, "Price: $67,123.46 USD")
	assert.Contains(t, got, "24h Change: -1.50%")
	assert.Contains(t, got, "Market Cap: $1,320,000,000,000")
}

func TestSystemStats_Summary(t *testing.T) {
	s := &SystemStats{
		CPUPercent:    12.34,
		MemoryTotal:   16 * gib,
		MemoryUsed:    7*gib + 512,
		MemoryPercent: 43.75,
		DiskTotal:     500 * gib,
		DiskUsed:      100 * gib,
		Platform:      "Linux",
	}

	got := s.Summary()
	assert.Contains(t, got, "CPU Usage: 12.3%")
	assert.Contains(t, got, "Memory: 7 GB/16 GB (43.8%)")
	assert.Contains(t, got, "Disk: 100 GB/500 GB (20.0%)")
	assert.Contains(t, got, "Platform: Linux")
}

func TestClockReading_Summary(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	c := &ClockReading{
		Local:  at,
		UTC:    at,
		Cities: []CityTime{{City: "London", Zone: "Europe/London", Time: at}},
	}

	got := c.Summary()
	assert.True(t, strings.HasPrefix(got, "Current time information (for reference):\n"))
	assert.Contains(t, got, "Local time: 02:07 PM, Tuesday, March 05, 2024")
	assert.Contains(t, got, "London: 02:07 PM, Tuesday, March 05, 2024 (Europe/London)")
}

func TestReply_ToResponse(t *testing.T) {
	plain := Reply{Message: "hello"}
	assert.Equal(t, ChatResponse{Response: "hello", SessionID: "s1"}, plain.ToResponse("s1"))

	nav := Reply{Message: "Opening Github for you", Action: &Action{Type: ActionOpenWebsite, URL: "https://github.com"}}
	resp := nav.ToResponse("s1")
	assert.Equal(t, "open_website", resp.Action)
	assert.Equal(t, "https://github.com", resp.URL)
}
