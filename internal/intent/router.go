// Package intent classifies utterances and extracts their parameters.
//
// Classification is first-match-wins over an ordered rule list: website
// rules, then system-action rules, then the conversational fallback.
package intent

import (
	"strings"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// Utterance is one piece of user text. Lower is used for matching and Raw for
// extracting parameters whose casing matters.
type Utterance struct {
	Raw   string
	Lower string
}

// NewUtterance trims text and precomputes its lower-case form
func NewUtterance(text string) Utterance {
	raw := strings.TrimSpace(text)
	return Utterance{Raw: raw, Lower: strings.ToLower(raw)}
}

// Rule is one entry of the ordered classification table
type Rule struct {
	Name  string
	Match func(u Utterance) (model.Intent, bool)
}

// Router evaluates rules in order and returns the first match
type Router struct {
	rules []Rule
}

// NewRouter creates a router with the default rule order
func NewRouter() *Router {
	return NewRouterWithRules(DefaultRules())
}

// NewRouterWithRules creates a router over a custom rule list
func NewRouterWithRules(rules []Rule) *Router {
	return &Router{rules: rules}
}

// DefaultRules returns website rules before system-action rules
func DefaultRules() []Rule {
	return []Rule{
		{Name: "website", Match: MatchWebsite},
		{Name: "system", Match: MatchSystem},
	}
}

// Classify returns exactly one intent for u
func (r *Router) Classify(u Utterance) model.Intent {
	for _, rule := range r.rules {
		if in, ok := rule.Match(u); ok {
			in.Rule = rule.Name
			return in
		}
	}
	return model.Intent{Kind: model.IntentConversational}
}
