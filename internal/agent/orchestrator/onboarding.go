package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/skillbridge/server/internal/agent/model"
	"github.com/skillbridge/server/internal/agent/onboarding"
	errx "github.com/skillbridge/server/internal/core/error"
	logx "github.com/skillbridge/server/pkg/logger"
)

// handleOnboarding drives the six-step flow for a user whose profile is not
// yet flagged complete. All onboarding turns are answered by the router
// persona; no specialist is ever invoked here.
func (o *Orchestrator) handleOnboarding(ctx context.Context, req Request, profile *model.UserProfile) *Result {
	progress, err := o.onboardings.Get(ctx, req.UserID)
	if err != nil {
		if !isNotFound(err) {
			logx.Warn().Err(err).Str("user_id", req.UserID).Msg("onboarding store unavailable, restarting flow")
		}
		// First message ever (or lost progress): welcome the user, do not route.
		progress = model.NewOnboardingProgress(req.UserID)
		if putErr := o.onboardings.Put(ctx, progress); putErr != nil {
			logx.Warn().Err(putErr).Str("user_id", req.UserID).Msg("failed to persist onboarding progress")
		}
		text, signaled := o.onboardingGuidance(ctx, model.StepWelcome, progress)
		if signaled {
			// A returning user whose progress record expired: the responder can
			// declare onboarding already done.
			o.completeOnboarding(ctx, progress, profile)
			return &Result{Reply: text, AgentUsed: model.SpecialistRouter, OnboardingCompleted: true}
		}
		return &Result{Reply: text, AgentUsed: model.SpecialistRouter}
	}

	data := onboarding.ExtractStepData(progress, req.Message)
	next, err := onboarding.Advance(progress, data)
	if err != nil {
		// Out-of-order advance: keep the stored record and re-prompt the
		// current step instead of accepting bad state.
		logx.Warn().Err(err).
			Str("user_id", req.UserID).
			Str("current_step", progress.CurrentStep.String()).
			Msg("rejected onboarding advance")
		text, _ := o.onboardingGuidance(ctx, progress.CurrentStep, progress)
		return &Result{Reply: text, AgentUsed: model.SpecialistRouter}
	}

	completed := next.CurrentStep.Terminal()
	text, signaled := o.onboardingGuidance(ctx, next.CurrentStep, next)
	if signaled {
		completed = true
	}

	if completed {
		o.completeOnboarding(ctx, next, profile)
	} else if err := o.onboardings.Put(ctx, next); err != nil {
		logx.Warn().Err(err).Str("user_id", req.UserID).Msg("failed to persist onboarding progress")
	}

	return &Result{
		Reply:               text,
		AgentUsed:           model.SpecialistRouter,
		OnboardingCompleted: completed,
	}
}

// completeOnboarding flags the profile and clears the progress record.
func (o *Orchestrator) completeOnboarding(ctx context.Context, progress *model.OnboardingProgress, profile *model.UserProfile) {
	onboarding.ApplyToProfile(progress, profile)
	if err := o.profiles.Put(ctx, profile); err != nil {
		logx.Error().Err(err).Str("user_id", profile.UserID).Msg("failed to flag profile as onboarded")
	}
	if err := o.onboardings.Delete(ctx, profile.UserID); err != nil {
		logx.Warn().Err(err).Str("user_id", profile.UserID).Msg("failed to delete onboarding progress")
	}
}

// onboardingGuidance produces the user-facing text for a step. The router
// persona rephrases the canonical prompt when generation is available; the
// canonical prompt itself is the fallback. The boolean reports a completion
// signal detected in the generated reply (structured signal or sentinel).
func (o *Orchestrator) onboardingGuidance(ctx context.Context, step model.OnboardingStep, progress *model.OnboardingProgress) (string, bool) {
	prompt := onboarding.PromptFor(step, progress)
	instruction := fmt.Sprintf(
		"You are onboarding a new learner (step %q). Deliver the following message in your own warm words, keeping every question intact:\n%s",
		step, prompt)

	reply, err := o.invoker.Invoke(ctx, model.SpecialistRouter, prompt, instruction)
	if err != nil {
		logx.Warn().Err(err).Str("step", step.String()).Msg("guidance generation failed, using canonical prompt")
		return prompt, false
	}

	return onboarding.StripSentinel(reply.Text), onboarding.DetectCompletion(reply)
}

// isNotFound distinguishes "record absent" from "store down"; both stores
// surface absence as a 404 AppError.
func isNotFound(err error) bool {
	var appErr *errx.AppError
	if errors.As(err, &appErr) {
		return appErr.Status == http.StatusNotFound
	}
	return false
}
