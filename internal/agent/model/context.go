package model

import "strings"

// FrustrationLevel is derived upstream (sentiment analysis or operator
// input); the engine only consumes it and defaults to low.
type FrustrationLevel string

const (
	FrustrationLow    FrustrationLevel = "low"
	FrustrationMedium FrustrationLevel = "medium"
	FrustrationHigh   FrustrationLevel = "high"
)

// ParseFrustration normalises a caller value, falling back to low.
func ParseFrustration(v string) FrustrationLevel {
	switch FrustrationLevel(strings.ToLower(strings.TrimSpace(v))) {
	case FrustrationMedium:
		return FrustrationMedium
	case FrustrationHigh:
		return FrustrationHigh
	default:
		return FrustrationLow
	}
}

// Turn is one prior exchange entry in insertion order.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ConversationContext carries the recent-window view of a conversation that
// routing adjustments are made against. RecentTurns is bounded to the
// configured window (default 3) and ordered oldest first.
type ConversationContext struct {
	RecentTurns   []Turn
	PreviousAgent SpecialistID // empty when no specialist has answered yet
	SessionLength int          // total turn count, not just the window
	Frustration   FrustrationLevel
}

// IsReturningUser reports whether the user has any prior turns.
func (c ConversationContext) IsReturningUser() bool {
	return c.SessionLength > 0
}
