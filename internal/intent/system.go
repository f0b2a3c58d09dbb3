package intent

import (
	"regexp"
	"strings"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/utils"
)

var folderPhrases = []string{"create folder", "make folder", "new folder"}

// appPhrases map fixed launch phrases to logical application names
var appPhrases = []struct {
	phrase string
	app    string
}{
	{"open calculator", "calculator"},
	{"open notepad", "notepad"},
	{"open file manager", "file manager"},
	{"open browser", "browser"},
}

var genericAppPhrases = []string{"open application", "launch app", "start app"}

// genericAppPattern captures whatever follows "open application", "launch app" etc.
var genericAppPattern = regexp.MustCompile(`(?i)\b(?:open|launch|start)\s+app(?:lication)?\b(.*)`)

const trimChars = " \t\"'"

// SystemTriggers lists every phrase that routes an utterance to a system action
func SystemTriggers() []string {
	triggers := append([]string{}, folderPhrases...)
	for _, p := range appPhrases {
		triggers = append(triggers, p.phrase)
	}
	return append(triggers, genericAppPhrases...)
}

// MatchSystem fires on any system trigger phrase. A trigger that no sub-rule
// understands yields IntentSystemUnsupported rather than falling through to
// the language model.
func MatchSystem(u Utterance) (model.Intent, bool) {
	if !utils.ContainsAny(u.Lower, SystemTriggers()) {
		return model.Intent{}, false
	}

	if utils.ContainsAny(u.Lower, folderPhrases) {
		name, ok := ExtractFolderName(u.Raw)
		return model.Intent{Kind: model.IntentFolderCreate, Param: name, Missing: !ok}, true
	}

	for _, p := range appPhrases {
		if strings.Contains(u.Lower, p.phrase) {
			return model.Intent{Kind: model.IntentAppLaunch, Param: p.app}, true
		}
	}

	if utils.ContainsAny(u.Lower, genericAppPhrases) {
		name, found := appNameAfterPhrase(u.Raw)
		if !found {
			// "launch apple music": the trigger is only a substring of another word
			return model.Intent{Kind: model.IntentSystemUnsupported}, true
		}
		return model.Intent{Kind: model.IntentAppLaunch, Param: name, Missing: name == ""}, true
	}

	return model.Intent{Kind: model.IntentSystemUnsupported}, true
}

// ExtractFolderName pulls a folder name out of original-case text, trying in
// order: the first double-quoted span, the words after "called", and the
// token after "folder" or "directory".
func ExtractFolderName(raw string) (string, bool) {
	if start := strings.IndexByte(raw, '"'); start >= 0 {
		if end := strings.IndexByte(raw[start+1:], '"'); end > 0 {
			name := raw[start+1 : start+1+end]
			if strings.TrimSpace(name) != "" {
				return name, true
			}
		}
	}

	words := strings.Fields(raw)

	for i, w := range words {
		if strings.EqualFold(w, "called") && i+1 < len(words) {
			if name := cleanName(strings.Join(words[i+1:], " ")); name != "" {
				return name, true
			}
		}
	}

	for i, w := range words {
		if (strings.EqualFold(w, "folder") || strings.EqualFold(w, "directory")) && i+1 < len(words) {
			if name := cleanName(words[i+1]); name != "" {
				return name, true
			}
		}
	}

	return "", false
}

// ExtractAppName returns the lower-cased application named after a generic
// launch phrase such as "open application xyz".
func ExtractAppName(raw string) (string, bool) {
	name, _ := appNameAfterPhrase(raw)
	return name, name != ""
}

// appNameAfterPhrase reports whether a whole-word generic launch phrase is
// present and returns the cleaned name after it, which may be empty.
func appNameAfterPhrase(raw string) (name string, found bool) {
	m := genericAppPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.ToLower(cleanName(m[1])), true
}

func cleanName(s string) string {
	s = strings.Trim(s, trimChars)
	s = strings.TrimRight(s, ".?!,;:")
	return strings.Trim(s, trimChars)
}
