package model

import (
	"fmt"
	"time"
)

// OnboardingStep is a position in the fixed six-step onboarding sequence.
// Steps only move forward; see onboarding.Advance for the enforcement.
type OnboardingStep int

const (
	StepWelcome OnboardingStep = iota
	StepLanguage
	StepName
	StepSubject
	StepAssessment
	StepComplete
)

var stepNames = map[OnboardingStep]string{
	StepWelcome:    "welcome",
	StepLanguage:   "language",
	StepName:       "name",
	StepSubject:    "subject",
	StepAssessment: "assessment",
	StepComplete:   "complete",
}

func (s OnboardingStep) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Next returns the successor step. Complete is terminal.
func (s OnboardingStep) Next() OnboardingStep {
	if s >= StepComplete {
		return StepComplete
	}
	return s + 1
}

// Terminal reports whether the step ends the onboarding flow.
func (s OnboardingStep) Terminal() bool {
	return s >= StepComplete
}

// MarshalText stores steps by name so the persisted records stay readable.
func (s OnboardingStep) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *OnboardingStep) UnmarshalText(b []byte) error {
	for step, name := range stepNames {
		if name == string(b) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown onboarding step %q", string(b))
}

// OnboardingProgress tracks one user's position in the onboarding flow plus
// the partially collected profile fields. Exclusively written by the
// onboarding state machine; keyed by user id with at most one live record per
// user.
type OnboardingProgress struct {
	UserID      string         `json:"user_id"`
	CurrentStep OnboardingStep `json:"current_step"`
	Language    string         `json:"language,omitempty"`
	Name        string         `json:"name,omitempty"`
	Subject     Subject        `json:"subject,omitempty"`
	SkillLevel  SkillLevel     `json:"skill_level,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewOnboardingProgress creates a fresh record positioned at the welcome step.
func NewOnboardingProgress(userID string) *OnboardingProgress {
	return &OnboardingProgress{
		UserID:      userID,
		CurrentStep: StepWelcome,
		UpdatedAt:   time.Now().UTC(),
	}
}

// StepData carries one onboarding advance: the step to move to and whichever
// collected fields that turn produced. Zero-valued fields are left untouched.
type StepData struct {
	Step       OnboardingStep
	Language   string
	Name       string
	Subject    Subject
	SkillLevel SkillLevel
}
