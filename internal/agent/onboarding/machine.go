// Package onboarding implements the six-step first-run flow:
// welcome -> language -> name -> subject -> assessment -> complete.
package onboarding

import (
	"fmt"
	"time"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
)

// Advance moves a progress record to data.Step, writing only the fields data
// supplies, and returns a new record; the input is never mutated.
//
// Order is enforced: the step must be the current step (re-prompt) or its
// immediate successor. Regressions and skips return ErrStepOrder and leave
// the stored record untouched; Restart is the only way back to welcome.
func Advance(p *model.OnboardingProgress, data model.StepData) (*model.OnboardingProgress, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no progress record", errx.ErrStepOrder)
	}
	if data.Step < p.CurrentStep {
		return nil, fmt.Errorf("%w: %s regresses from %s", errx.ErrStepOrder, data.Step, p.CurrentStep)
	}
	if data.Step > p.CurrentStep.Next() {
		return nil, fmt.Errorf("%w: %s skips ahead of %s", errx.ErrStepOrder, data.Step, p.CurrentStep)
	}

	next := *p
	if data.Language != "" {
		next.Language = data.Language
	}
	if data.Name != "" {
		next.Name = data.Name
	}
	if data.Subject != "" {
		next.Subject = data.Subject
	}
	if data.SkillLevel != "" {
		next.SkillLevel = data.SkillLevel
	}
	next.CurrentStep = data.Step
	next.UpdatedAt = time.Now().UTC()
	return &next, nil
}

// Restart discards collected answers and returns a fresh record at welcome.
func Restart(userID string) *model.OnboardingProgress {
	return model.NewOnboardingProgress(userID)
}

// ApplyToProfile copies the collected onboarding answers onto the profile and
// flags it as onboarded. Called once when the flow reaches complete.
func ApplyToProfile(p *model.OnboardingProgress, profile *model.UserProfile) {
	if p.Language != "" {
		profile.PreferredLanguage = p.Language
	}
	if p.Name != "" {
		profile.DisplayName = p.Name
	}
	if p.Subject != "" {
		profile.SelectedSubject = p.Subject
	}
	if p.SkillLevel != "" {
		profile.SkillLevel = p.SkillLevel
	}
	profile.OnboardingCompleted = true
	profile.UpdatedAt = time.Now().UTC()
}
