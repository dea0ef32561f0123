// Package orchestrator is the engine's entry point: it gates onboarding,
// runs the classify -> decide -> adjust pipeline, dispatches the chosen
// responder, and assembles the final reply with its fallback policy.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/skillbridge/server/internal/agent/classify"
	"github.com/skillbridge/server/internal/agent/model"
	"github.com/skillbridge/server/internal/agent/route"
	logx "github.com/skillbridge/server/pkg/logger"
)

const genericFallback = "I'm sorry, something went wrong on my side. " +
	"Could you try asking that again in a moment?"

const specialistApology = "I couldn't reach that tutor just now, so let's keep going together. " +
	"Please try again in a moment if you'd like their full answer."

// Config wires the orchestrator's collaborators. All stores are external:
// the orchestrator holds no cross-request state and relies on its caller for
// at-most-one in-flight request per user id.
type Config struct {
	Classifier    *classify.Classifier
	Profiles      model.ProfileStore
	Onboardings   model.OnboardingStore
	Conversations model.ConversationRepository
	Assessments   model.AssessmentChecker
	Invoker       model.Invoker
	ContextWindow int
}

type Orchestrator struct {
	classifier    *classify.Classifier
	profiles      model.ProfileStore
	onboardings   model.OnboardingStore
	conversations model.ConversationRepository
	assessments   model.AssessmentChecker
	invoker       model.Invoker
	window        int
}

func New(cfg Config) (*Orchestrator, error) {
	if cfg.Classifier == nil {
		return nil, fmt.Errorf("classifier is nil")
	}
	if cfg.Profiles == nil || cfg.Onboardings == nil || cfg.Conversations == nil {
		return nil, fmt.Errorf("stores are not properly initialized")
	}
	if cfg.Assessments == nil {
		return nil, fmt.Errorf("assessment checker is nil")
	}
	if cfg.Invoker == nil {
		return nil, fmt.Errorf("invoker is nil")
	}
	window := cfg.ContextWindow
	if window <= 0 {
		window = 3
	}
	return &Orchestrator{
		classifier:    cfg.Classifier,
		profiles:      cfg.Profiles,
		onboardings:   cfg.Onboardings,
		conversations: cfg.Conversations,
		assessments:   cfg.Assessments,
		invoker:       cfg.Invoker,
		window:        window,
	}, nil
}

// Request is one incoming user message. Agent optionally names an explicit
// target, bypassing classification. Frustration is derived upstream and
// defaults to low.
type Request struct {
	UserID      string
	Message     string
	Agent       model.SpecialistID
	Frustration model.FrustrationLevel
}

// Result is the assembled outcome of one turn. Reply is never empty and
// Routing is always populated on the routed path, even when a fallback fired.
type Result struct {
	Reply               string
	AgentUsed           model.SpecialistID
	OnboardingCompleted bool
	Routing             *model.RoutingInfo
}

// Handle processes one message end to end. It is total: every internal
// failure degrades to a friendly reply rather than surfacing to the caller.
func (o *Orchestrator) Handle(ctx context.Context, req Request) *Result {
	if req.Frustration == "" {
		req.Frustration = model.FrustrationLow
	}

	profile := o.loadProfile(ctx, req.UserID)
	convCtx := o.buildContext(ctx, req.UserID, req.Frustration)
	o.recordUserTurn(ctx, req)

	var res *Result
	if !profile.OnboardingCompleted {
		res = o.handleOnboarding(ctx, req, profile)
	} else {
		res = o.handleRouted(ctx, req, profile, convCtx)
	}

	o.recordAssistantTurn(ctx, req.UserID, res)
	return res
}

// loadProfile fetches the profile, creating one on first contact. A store
// failure fails safe toward the friendlier path: the user is treated as new
// and gets onboarding rather than an error.
func (o *Orchestrator) loadProfile(ctx context.Context, userID string) *model.UserProfile {
	profile, err := o.profiles.Get(ctx, userID)
	if err == nil {
		return profile
	}

	profile = model.NewUserProfile(userID)
	if isNotFound(err) {
		if putErr := o.profiles.Put(ctx, profile); putErr != nil {
			logx.Warn().Err(putErr).Str("user_id", userID).Msg("failed to persist new profile")
		}
		return profile
	}

	logx.Warn().Err(err).Str("user_id", userID).Msg("profile store unavailable, treating user as new")
	return profile
}

// buildContext assembles the recent-window conversation view. Store failures
// yield an empty context; routing still works without it.
func (o *Orchestrator) buildContext(ctx context.Context, userID string, frustration model.FrustrationLevel) model.ConversationContext {
	convCtx := model.ConversationContext{Frustration: frustration}

	history, err := o.conversations.LoadHistory(ctx, userID)
	if err != nil {
		logx.Warn().Err(err).Str("user_id", userID).Msg("failed to load conversation history")
		return convCtx
	}

	convCtx.SessionLength = len(history.Messages)

	start := len(history.Messages) - o.window
	if start < 0 {
		start = 0
	}
	for _, msg := range history.Messages[start:] {
		if msg == nil || msg.Content == "" {
			continue
		}
		convCtx.RecentTurns = append(convCtx.RecentTurns, model.Turn{
			Role: string(msg.Role),
			Text: msg.Content,
		})
	}

	// Previous agent: most recent assistant turn that carried an agent tag.
	for i := len(history.Messages) - 1; i >= 0; i-- {
		msg := history.Messages[i]
		if msg == nil || msg.Role != schema.Assistant {
			continue
		}
		if tag, ok := msg.Extra["agent"].(string); ok {
			if id, valid := model.ParseSpecialistID(tag); valid && id.IsSpecialist() {
				convCtx.PreviousAgent = id
				break
			}
		}
	}
	return convCtx
}

// handleRouted runs the normal pipeline for an onboarded user.
func (o *Orchestrator) handleRouted(ctx context.Context, req Request, profile *model.UserProfile, convCtx model.ConversationContext) *Result {
	var adjusted model.AdjustedDecision
	if req.Agent != "" {
		// Explicit target: bypass classification and adjustment.
		decision := route.ExplicitDecision(req.Agent, req.Message)
		adjusted = model.AdjustedDecision{RoutingDecision: decision, EnhancedContext: decision.AgentContext}
	} else {
		adjusted = o.decide(ctx, req, profile, convCtx)
	}

	logx.Debug().
		Str("user_id", req.UserID).
		Str("target", string(adjusted.Target)).
		Float64("confidence", adjusted.Confidence).
		Str("reasoning", adjusted.Reasoning).
		Msg("routing decision")

	res := &Result{
		OnboardingCompleted: true,
		Routing: &model.RoutingInfo{
			Target:     adjusted.Target,
			Confidence: adjusted.Confidence,
			Reasoning:  adjusted.Reasoning,
		},
	}

	if adjusted.Target.IsSpecialist() {
		o.dispatchSpecialist(ctx, req, adjusted, res)
	} else {
		o.dispatchRouter(ctx, req, adjusted, res)
	}

	if len(adjusted.Recommendations) > 0 {
		res.Reply = res.Reply + "\n\n" + strings.Join(adjusted.Recommendations, "\n")
	}
	return res
}

// decide runs classify -> decide -> adjust with boundary recovery: any panic
// inside the pipeline degrades to the router at 0.5 instead of reaching the
// caller.
func (o *Orchestrator) decide(ctx context.Context, req Request, profile *model.UserProfile, convCtx model.ConversationContext) (adjusted model.AdjustedDecision) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("user_id", req.UserID).Msgf("routing pipeline panic recovered: %v", r)
			fallback := route.FallbackDecision(req.Message)
			adjusted = model.AdjustedDecision{RoutingDecision: fallback, EnhancedContext: fallback.AgentContext}
		}
	}()

	classification := o.classifier.Classify(req.Message)
	decision := route.Decide(classification)

	assessmentDone := false
	subject := profile.SelectedSubject
	if subject == "" {
		if s, ok := model.SpecialistSubject(decision.Target); ok {
			subject = s
		}
	}
	if subject != "" {
		done, err := o.assessments.HasCompletedAssessment(ctx, req.UserID, subject)
		if err != nil {
			logx.Warn().Err(err).Str("user_id", req.UserID).Msg("assessment check failed, assuming not completed")
		} else {
			assessmentDone = done
		}
	}

	return route.Adjust(route.AdjustInput{
		Decision:       decision,
		Profile:        profile,
		Context:        convCtx,
		AssessmentDone: assessmentDone,
	})
}

// dispatchSpecialist invokes the chosen specialist and assembles the
// announcement + reply. On failure it falls back once to the router's own
// text plus an apology; the specialist is not retried.
func (o *Orchestrator) dispatchSpecialist(ctx context.Context, req Request, adjusted model.AdjustedDecision, res *Result) {
	announcement := adjusted.Notification
	if announcement == "" {
		announcement = fmt.Sprintf("Connecting you with the %s.", adjusted.Target.DisplayName())
	}

	reply, err := o.invoker.Invoke(ctx, adjusted.Target, req.Message, adjusted.EnhancedContext)
	if err != nil {
		logx.Error().Err(err).
			Str("user_id", req.UserID).
			Str("specialist", string(adjusted.Target)).
			Msg("specialist invocation failed, falling back to router text")
		res.Reply = announcement + "\n\n" + specialistApology
		res.AgentUsed = model.SpecialistRouter
		return
	}

	if target, ok := reply.Signal.RouteTarget(); ok && target != adjusted.Target {
		// Advisory only: a rerouting suggestion from the responder is logged
		// for the next turn's context, never acted on mid-turn.
		logx.Info().
			Str("user_id", req.UserID).
			Str("suggested", string(target)).
			Msg("responder suggested a different target")
	}

	res.Reply = announcement + "\n\n" + reply.Text
	res.AgentUsed = adjusted.Target
}

// dispatchRouter returns the general handler's own response directly.
func (o *Orchestrator) dispatchRouter(ctx context.Context, req Request, adjusted model.AdjustedDecision, res *Result) {
	res.AgentUsed = model.SpecialistRouter

	reply, err := o.invoker.Invoke(ctx, model.SpecialistRouter, req.Message, adjusted.EnhancedContext)
	if err != nil {
		logx.Error().Err(err).Str("user_id", req.UserID).Msg("router invocation failed")
		res.Reply = genericFallback
		return
	}

	if adjusted.NotifyUser && adjusted.Notification != "" {
		res.Reply = adjusted.Notification + "\n\n" + reply.Text
	} else {
		res.Reply = reply.Text
	}
}

func (o *Orchestrator) recordUserTurn(ctx context.Context, req Request) {
	if err := o.conversations.AddMessage(ctx, req.UserID, schema.UserMessage(req.Message)); err != nil {
		logx.Warn().Err(err).Str("user_id", req.UserID).Msg("failed to record user turn")
	}
}

func (o *Orchestrator) recordAssistantTurn(ctx context.Context, userID string, res *Result) {
	msg := schema.AssistantMessage(res.Reply, nil)
	msg.Extra = map[string]any{"agent": string(res.AgentUsed)}
	if err := o.conversations.AddMessage(ctx, userID, msg); err != nil {
		logx.Warn().Err(err).Str("user_id", userID).Msg("failed to record assistant turn")
	}
}
