package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

func classify(text string) model.Intent {
	return NewRouter().Classify(NewUtterance(text))
}

func TestRouter_Website(t *testing.T) {
	tests := []struct {
		name string
		text string
		site string
		url  string
	}{
		{"plain", "Open YouTube", "youtube", "https://youtube.com"},
		{"extra words", "could you please open github for me right now", "github", "https://github.com"},
		{"table order wins", "open stackoverflow or google", "google", "https://google.com"},
		{"suffix", "open stackoverflow.com", "stackoverflow", "https://stackoverflow.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.text)
			assert.Equal(t, model.IntentWebsiteOpen, got.Kind)
			assert.Equal(t, tt.site, got.Site)
			assert.Equal(t, tt.url, got.URL)
			assert.Equal(t, "website", got.Rule)
		})
	}
}

func TestRouter_SiteWithoutOpenIsConversational(t *testing.T) {
	got := classify("what is google's market cap")
	assert.Equal(t, model.IntentConversational, got.Kind)
}

func TestRouter_WebsiteBeforeSystem(t *testing.T) {
	got := classify("open browser and go to youtube")
	assert.Equal(t, model.IntentWebsiteOpen, got.Kind)
}

func TestRouter_Folder(t *testing.T) {
	tests := []struct {
		text    string
		name    string
		missing bool
	}{
		{`create folder "Projects"`, "Projects", false},
		{`Create folder "My Tax Docs 2024" please`, "My Tax Docs 2024", false},
		{"create folder called Taxes", "Taxes", false},
		{"make folder called Summer Photos.", "Summer Photos", false},
		{"new folder reports", "reports", false},
		{"create folder", "", true},
		{`create folder ""`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := classify(tt.text)
			assert.Equal(t, model.IntentFolderCreate, got.Kind)
			assert.Equal(t, tt.name, got.Param)
			assert.Equal(t, tt.missing, got.Missing)
		})
	}
}

func TestRouter_AppLaunch(t *testing.T) {
	tests := []struct {
		text    string
		app     string
		missing bool
	}{
		{"open calculator", "calculator", false},
		{"Please open notepad", "notepad", false},
		{"open file manager now", "file manager", false},
		{"open browser", "browser", false},
		{"open application xyz", "xyz", false},
		{"launch app Calculator", "calculator", false},
		{"start application spotify.", "spotify", false},
		{"launch app", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := classify(tt.text)
			assert.Equal(t, model.IntentAppLaunch, got.Kind)
			assert.Equal(t, tt.app, got.Param)
			assert.Equal(t, tt.missing, got.Missing)
		})
	}
}

func TestRouter_SystemUnsupported(t *testing.T) {
	for _, text := range []string{
		"launch apple music",
		"open applications folder",
		"start apple pay",
	} {
		t.Run(text, func(t *testing.T) {
			got := classify(text)
			assert.Equal(t, model.IntentSystemUnsupported, got.Kind)
			assert.Equal(t, "system", got.Rule)
			assert.False(t, got.Missing)
		})
	}
}

func TestExtractAppName(t *testing.T) {
	name, ok := ExtractAppName("please launch app Spotify")
	require.True(t, ok)
	assert.Equal(t, "spotify", name)

	_, ok = ExtractAppName("launch app")
	assert.False(t, ok)

	_, ok = ExtractAppName("launch apple music")
	assert.False(t, ok)
}

func TestRouter_Conversational(t *testing.T) {
	for _, text := range []string{"tell me a joke", "what's the weather in Tokyo?", ""} {
		assert.Equal(t, model.IntentConversational, classify(text).Kind, text)
	}
}

func TestRouter_CustomRulesUnsupported(t *testing.T) {
	r := NewRouterWithRules([]Rule{{
		Name: "always",
		Match: func(Utterance) (model.Intent, bool) {
			return model.Intent{Kind: model.IntentSystemUnsupported}, true
		},
	}})
	got := r.Classify(NewUtterance("anything"))
	require.Equal(t, model.IntentSystemUnsupported, got.Kind)
	assert.Equal(t, "always", got.Rule)
}

func TestExtractFolderName_Priority(t *testing.T) {
	name, ok := ExtractFolderName(`create folder called Other "Quoted"`)
	require.True(t, ok)
	assert.Equal(t, "Quoted", name, "quotes beat called")

	name, ok = ExtractFolderName("create directory called Archive")
	require.True(t, ok)
	assert.Equal(t, "Archive", name, "called beats the token after directory")

	name, ok = ExtractFolderName("make a directory Music")
	require.True(t, ok)
	assert.Equal(t, "Music", name)
}
