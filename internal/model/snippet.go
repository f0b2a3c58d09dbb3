package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ClockLayout renders times as "03:04 PM, Monday, January 02, 2006"
const ClockLayout = "03:04 PM, Monday, January 02, 2006"

const gib = 1 << 30

// Snippet is a provider result that can be rendered into the system prompt
type Snippet interface {
	Summary() string
}

// CityTime is the current time in one named timezone
type CityTime struct {
	City string
	Zone string
	Time time.Time
}

// ClockReading holds local, UTC and per-city times taken at one instant
type ClockReading struct {
	Local  time.Time
	UTC    time.Time
	Cities []CityTime
}

// Summary renders the clock block
func (c *ClockReading) Summary() string {
	var b strings.Builder
	b.WriteString("Current time information (for reference):\n")
	fmt.Fprintf(&b, "Local time: %s\n", c.Local.Format(ClockLayout))
	fmt.Fprintf(&b, "UTC: %s\n", c.UTC.Format(ClockLayout))
	for _, city := range c.Cities {
		fmt.Fprintf(&b, "%s: %s (%s)\n", city.City, city.Time.Format(ClockLayout), city.Zone)
	}
	return b.String()
}

// Weather is the normalized current-conditions record for one city
type Weather struct {
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Temperature float64  `json:"temperature"`
	FeelsLike   float64  `json:"feels_like"`
	Humidity    int      `json:"humidity"`
	Description string   `json:"description"`
	Main        string   `json:"main"`
	WindSpeed   *float64 `json:"wind_speed,omitempty"`
}

// Summary renders the weather block
func (w *Weather) Summary() string {
	wind := "N/A"
	if w.WindSpeed != nil {
		wind = formatFloat(*w.WindSpeed)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current weather in %s, %s:\n", w.City, w.Country)
	fmt.Fprintf(&b, "Temperature: %s°C (feels like %s°C)\n", formatFloat(w.Temperature), formatFloat(w.FeelsLike))
	fmt.Fprintf(&b, "Condition: %s\n", cases.Title(language.English).String(w.Description))
	fmt.Fprintf(&b, "Humidity: %d%%\n", w.Humidity)
	fmt.Fprintf(&b, "Wind Speed: %s m/s\n", wind)
	return b.String()
}

// StockQuote is the normalized equities record for one ticker
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Currency      string  `json:"currency"`
	MarketCap     *int64  `json:"market_cap,omitempty"`
}

// Summary renders the equities block
func (q *StockQuote) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current stock data for %s (%s):\n", q.Name, q.Symbol)
	fmt.Fprintf(&b, "Price: $%.2f %s\n", q.Price, q.Currency)
	fmt.Fprintf(&b, "Change: $%.2f (%+.2f%%)\n", q.Change, q.ChangePercent)
	if q.MarketCap != nil && *q.MarketCap > 0 {
		fmt.Fprintf(&b, "Market Cap: $%s\n", printer().Sprintf("%d", *q.MarketCap))
	}
	return b.String()
}

// CryptoQuote is the normalized record for one coin priced in USD
type CryptoQuote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	MarketCap float64 `json:"market_cap"`
}

// Summary renders the cryptocurrency block
func (q *CryptoQuote) Summary() string {
	p := printer()
	var b strings.Builder
	fmt.Fprintf(&b, "Current cryptocurrency data for %s:\n", q.Symbol)
	fmt.Fprintf(&b, "Price: $%s USD\n", p.Sprintf("%.2f", q.Price))
	fmt.Fprintf(&b, "24h Change: %+.2f%%\n", q.Change24h)
	if q.MarketCap > 0 {
		fmt.Fprintf(&b, "Market Cap: $%s\n", p.Sprintf("%.0f", q.MarketCap))
	}
	return b.String()
}

// SystemStats is one telemetry sample of the host
type SystemStats struct {
	CPUPercent      float64 `json:"cpu_percent"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryUsed      uint64  `json:"memory_used"`
	MemoryPercent   float64 `json:"memory_percent"`
	DiskTotal       uint64  `json:"disk_total"`
	DiskUsed        uint64  `json:"disk_used"`
	DiskFree        uint64  `json:"disk_free"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version,omitempty"`
}

// DiskPercent is used/total as a percentage
func (s *SystemStats) DiskPercent() float64 {
	if s.DiskTotal == 0 {
		return 0
	}
	return float64(s.DiskUsed) / float64(s.DiskTotal) * 100
}

// Summary renders the system information block with whole-gigabyte totals
func (s *SystemStats) Summary() string {
	var b strings.Builder
	b.WriteString("Current system information:\n")
	fmt.Fprintf(&b, "CPU Usage: %.1f%%\n", s.CPUPercent)
	fmt.Fprintf(&b, "Memory: %d GB/%d GB (%.1f%%)\n", s.MemoryUsed/gib, s.MemoryTotal/gib, s.MemoryPercent)
	fmt.Fprintf(&b, "Disk: %d GB/%d GB (%.1f%%)\n", s.DiskUsed/gib, s.DiskTotal/gib, s.DiskPercent())
	fmt.Fprintf(&b, "Platform: %s\n", s.Platform)
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}
