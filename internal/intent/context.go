package intent

import (
	"strings"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/utils"
)

// Keyword sets that switch on each context detector. Keywords match at a
// word start, symbols and names match whole words.
var (
	TimeKeywords    = []string{"time", "date", "when", "what day"}
	WeatherKeywords = []string{"weather", "temperature", "hot", "cold", "rain", "sunny", "cloudy"}
	StockKeywords   = []string{"stock", "price", "share", "ticker", "market"}
	CryptoKeywords  = []string{"bitcoin", "btc", "ethereum", "eth", "crypto", "cryptocurrency"}
	SystemKeywords  = []string{"system", "cpu", "memory", "ram", "disk", "storage", "performance"}
)

var cityPatterns = []string{
	"weather in ", "weather at ", "temperature in ", "temperature at ",
	"hot in ", "cold in ", "rain in ", "sunny in ", "cloudy in ",
}

// CommonCities is scanned when no "weather in X" style pattern is present
var CommonCities = []string{
	"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad",
	"london", "paris", "tokyo", "new york", "los angeles", "chicago",
	"sydney", "melbourne", "toronto", "vancouver", "dubai", "singapore",
}

// commonStocks is scanned in order; the first name or ticker present wins
var commonStocks = []string{
	"apple", "aapl", "google", "googl", "microsoft", "msft",
	"tesla", "tsla", "amazon", "amzn", "meta", "nvidia", "nvda",
}

var stockSymbols = map[string]string{
	"apple":     "AAPL",
	"google":    "GOOGL",
	"microsoft": "MSFT",
	"tesla":     "TSLA",
	"amazon":    "AMZN",
	"meta":      "META",
	"nvidia":    "NVDA",
	"netflix":   "NFLX",
	"spotify":   "SPOT",
}

var cryptoSymbols = []string{"btc", "eth", "ada", "sol", "doge"}

var cryptoNames = map[string]string{
	"btc":  "bitcoin",
	"eth":  "ethereum",
	"ada":  "cardano",
	"sol":  "solana",
	"doge": "dogecoin",
}

// WantsTime reports whether the time/date block should be added
func WantsTime(u Utterance) bool {
	return utils.AnyWordPrefix(u.Lower, TimeKeywords)
}

// WantsWeather reports whether the utterance mentions weather at all
func WantsWeather(u Utterance) bool {
	return utils.AnyWordPrefix(u.Lower, WeatherKeywords)
}

// WantsSystemInfo reports whether host telemetry should be added
func WantsSystemInfo(u Utterance) bool {
	return utils.AnyWordPrefix(u.Lower, SystemKeywords)
}

// ExtractCity finds the city a weather question is about. The first
// preposition pattern present decides; the city is the original-case text
// after it, cut at the next '?', '.' or '!'. Without a usable pattern the
// common-city list is scanned.
func ExtractCity(u Utterance) (string, bool) {
	if !WantsWeather(u) {
		return "", false
	}

	for _, pattern := range cityPatterns {
		i := utils.IndexFold(u.Raw, pattern)
		if i < 0 {
			continue
		}
		rest := u.Raw[i+len(pattern):]
		city := strings.TrimSpace(utils.CutAt(rest, "?.!"))
		city = strings.TrimRight(city, " ,;:")
		if city != "" {
			return city, true
		}
		break
	}

	for _, city := range CommonCities {
		if utils.HasWord(u.Lower, city) {
			return city, true
		}
	}
	return "", false
}

// StockSymbol returns the ticker for the first known company mentioned in an
// equities question.
func StockSymbol(u Utterance) (string, bool) {
	if !utils.AnyWordPrefix(u.Lower, StockKeywords) {
		return "", false
	}
	for _, name := range commonStocks {
		if utils.HasWord(u.Lower, name) {
			return TickerFor(name), true
		}
	}
	return "", false
}

// TickerFor maps a company name to its ticker, upper-casing unknown names
func TickerFor(name string) string {
	if sym, ok := stockSymbols[strings.ToLower(name)]; ok {
		return sym
	}
	return strings.ToUpper(name)
}

// CryptoSymbol returns the upper-case symbol of the first coin mentioned,
// by symbol or full name, in a crypto question.
func CryptoSymbol(u Utterance) (string, bool) {
	if !utils.AnyWordPrefix(u.Lower, CryptoKeywords) {
		return "", false
	}
	for _, sym := range cryptoSymbols {
		if utils.HasWord(u.Lower, sym) || utils.HasWord(u.Lower, cryptoNames[sym]) {
			return strings.ToUpper(sym), true
		}
	}
	return "", false
}
