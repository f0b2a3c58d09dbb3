package action

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// OpenWebsite returns the navigation reply for a website intent. The client
// is responsible for actually opening the URL.
func OpenWebsite(site, url string) (string, *model.Action) {
	msg := fmt.Sprintf("Opening %s for you", cases.Title(language.English).String(site))
	return msg, &model.Action{Type: model.ActionOpenWebsite, URL: url}
}
