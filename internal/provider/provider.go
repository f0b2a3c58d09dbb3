// Package provider fetches live data used to enrich the system prompt.
//
// Every provider exposes Fetch, which returns an error, and Lookup, which
// logs the error, records metrics and reports only presence or absence.
// A failed lookup is never surfaced to the user.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider names used in logs and metrics
const (
	NameClock     = "clock"
	NameWeather   = "weather"
	NameStocks    = "stocks"
	NameCrypto    = "crypto"
	NameTelemetry = "telemetry"
)

// userAgent is sent because some quote endpoints reject blank agents
const userAgent = "Mozilla/5.0 (compatible; jarvis-assistant/1.0)"

var (
	// ErrDisabled means the provider is not configured
	ErrDisabled = errors.New("provider disabled")
	// ErrNoData means the upstream answered but had nothing for the key
	ErrNoData = errors.New("no data")
)

// StatusError is a non-200 upstream response
type StatusError struct {
	Provider string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API returned status %d", e.Provider, e.Code)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET and decodes a 200 response into out
func getJSON(ctx context.Context, client *http.Client, provider, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Provider: provider, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
