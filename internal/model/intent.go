package model

// IntentKind tags the variant carried by an Intent
type IntentKind int

const (
	// IntentConversational falls through to the language model.
	IntentConversational IntentKind = iota
	// IntentWebsiteOpen asks the client to navigate to a fixed site.
	IntentWebsiteOpen
	// IntentFolderCreate creates a directory under the base folder.
	IntentFolderCreate
	// IntentAppLaunch launches a local application.
	IntentAppLaunch
	// IntentSystemUnsupported matched a system trigger no handler understands.
	IntentSystemUnsupported
)

// String returns the label used in logs, metrics and the interaction log
func (k IntentKind) String() string {
	switch k {
	case IntentWebsiteOpen:
		return "website_open"
	case IntentFolderCreate:
		return "folder_create"
	case IntentAppLaunch:
		return "app_launch"
	case IntentSystemUnsupported:
		return "system_unsupported"
	default:
		return "conversational"
	}
}

// IsSystemAction reports whether the intent performs a local side effect
func (k IntentKind) IsSystemAction() bool {
	return k == IntentFolderCreate || k == IntentAppLaunch || k == IntentSystemUnsupported
}

// Intent is the single classification selected for an utterance
type Intent struct {
	Kind IntentKind `json:"kind"`
	Rule string     `json:"rule,omitempty"` // name of the rule that matched

	// WebsiteOpen
	Site string `json:"site,omitempty"`
	URL  string `json:"url,omitempty"`

	// FolderCreate / AppLaunch
	Param   string `json:"param,omitempty"`
	Missing bool   `json:"missing,omitempty"` // parameter required but not found
}
