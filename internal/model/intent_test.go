package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentKind_IsSystemAction(t *testing.T) {
	tests := []struct {
		kind IntentKind
		want bool
	}{
		{IntentConversational, false},
		{IntentWebsiteOpen, false},
		{IntentFolderCreate, true},
		{IntentAppLaunch, true},
		{IntentSystemUnsupported, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsSystemAction())
		})
	}
}
