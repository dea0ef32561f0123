package model

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// ProfileStore is the external profile record store. Get returns an error
// satisfying errors.Is(err, redis.Nil)-mapped not-found semantics (errx 404)
// when no profile exists; the orchestrator treats that as "new user".
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Put(ctx context.Context, profile *UserProfile) error
}

// OnboardingStore persists onboarding progress keyed by user id.
type OnboardingStore interface {
	Get(ctx context.Context, userID string) (*OnboardingProgress, error)
	Put(ctx context.Context, progress *OnboardingProgress) error
	Delete(ctx context.Context, userID string) error
}

// ConversationRepository stores the per-user message history.
type ConversationRepository interface {
	// AddMessage appends a message to the user's conversation history.
	AddMessage(ctx context.Context, userID string, message *schema.Message) error

	// LoadHistory retrieves the conversation history for a user.
	LoadHistory(ctx context.Context, userID string) (*ConversationHistory, error)

	// ClearHistory removes all conversation history for a user.
	ClearHistory(ctx context.Context, userID string) error

	// GetMessageCount returns the number of messages in the conversation.
	GetMessageCount(ctx context.Context, userID string) (int, error)
}

// ConversationHistory represents loaded conversation data with metadata.
type ConversationHistory struct {
	UserID   string
	Messages []*schema.Message
}

// AssessmentChecker reports whether a user has completed the skill assessment
// for a subject. Backed by an external assessment service.
type AssessmentChecker interface {
	HasCompletedAssessment(ctx context.Context, userID string, subject Subject) (bool, error)
}

// Signal is a structured marker a responder can attach to its reply instead
// of relying on sentinel phrases buried in free text.
type Signal string

const (
	SignalNone               Signal = ""
	SignalOnboardingComplete Signal = "onboarding_complete"
)

// RouteSignal builds a routing-suggestion signal for the given target.
func RouteSignal(target SpecialistID) Signal {
	return Signal("route:" + string(target))
}

// RouteTarget extracts the suggested target from a route signal.
func (s Signal) RouteTarget() (SpecialistID, bool) {
	raw, ok := strings.CutPrefix(string(s), "route:")
	if !ok {
		return "", false
	}
	return ParseSpecialistID(raw)
}

// Reply is a responder's answer. Text is always user-facing; Signal is the
// structured capability channel (responders that cannot emit signals leave it
// empty and the legacy sentinel scan applies).
type Reply struct {
	Text   string
	Signal Signal
}

// Invoker dispatches a message to one responder and blocks until it answers
// or fails. One invocation per routing decision; the engine retries nothing
// here, it falls back instead.
type Invoker interface {
	Invoke(ctx context.Context, id SpecialistID, message, enhancedContext string) (*Reply, error)
}
