package intent

import (
	"strings"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// Site is a website the assistant can navigate to
type Site struct {
	Name string
	URL  string
}

// Sites is iterated in order; the first name found in the text wins.
var Sites = []Site{
	{Name: "youtube", URL: "https://youtube.com"},
	{Name: "google", URL: "https://google.com"},
	{Name: "github", URL: "https://github.com"},
	{Name: "stackoverflow", URL: "https://stackoverflow.com"},
}

// MatchWebsite fires when the text contains "open" and a known site name
func MatchWebsite(u Utterance) (model.Intent, bool) {
	if !strings.Contains(u.Lower, "open") {
		return model.Intent{}, false
	}
	for _, site := range Sites {
		if strings.Contains(u.Lower, site.Name) {
			return model.Intent{
				Kind: model.IntentWebsiteOpen,
				Site: site.Name,
				URL:  site.URL,
			}, true
		}
	}
	return model.Intent{}, false
}
