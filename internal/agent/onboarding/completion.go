package onboarding

import (
	"strings"

	"github.com/skillbridge/server/internal/agent/model"
)

// CompletionSentinel is the literal token a generator may embed in its text
// to flag that onboarding has finished. Any generator wired into the engine
// must honor this contract if it wants to signal completion through free
// text; the structured Reply.Signal channel is the preferred path and the
// sentinel scan is kept as a compatibility shim.
const CompletionSentinel = "ONBOARDING_COMPLETE"

// DetectCompletion reports whether a reply signals the end of onboarding.
// The structured signal wins; the sentinel scan covers generators that can
// only emit free text.
func DetectCompletion(r *model.Reply) bool {
	if r == nil {
		return false
	}
	if r.Signal == model.SignalOnboardingComplete {
		return true
	}
	return strings.Contains(r.Text, CompletionSentinel)
}

// StripSentinel removes the sentinel token (and any dangling whitespace)
// from user-visible text.
func StripSentinel(text string) string {
	if !strings.Contains(text, CompletionSentinel) {
		return text
	}
	text = strings.ReplaceAll(text, CompletionSentinel, "")
	return strings.TrimSpace(text)
}
