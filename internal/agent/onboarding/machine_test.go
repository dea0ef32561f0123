package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
)

func TestAdvanceWritesOnlySuppliedFields(t *testing.T) {
	p := model.NewOnboardingProgress("u1")
	p.CurrentStep = model.StepLanguage
	p.Language = "english"

	next, err := Advance(p, model.StepData{Step: model.StepName, Name: "Maria"})
	require.NoError(t, err)

	assert.Equal(t, model.StepName, next.CurrentStep)
	assert.Equal(t, "Maria", next.Name)
	assert.Equal(t, "english", next.Language, "existing fields must survive")
	assert.Equal(t, model.StepLanguage, p.CurrentStep, "input must not be mutated")
}

func TestAdvanceRejectsRegression(t *testing.T) {
	p := model.NewOnboardingProgress("u1")
	p.CurrentStep = model.StepSubject

	_, err := Advance(p, model.StepData{Step: model.StepLanguage})
	assert.ErrorIs(t, err, errx.ErrStepOrder)
}

func TestAdvanceRejectsSkip(t *testing.T) {
	p := model.NewOnboardingProgress("u1")
	p.CurrentStep = model.StepLanguage

	_, err := Advance(p, model.StepData{Step: model.StepAssessment})
	assert.ErrorIs(t, err, errx.ErrStepOrder)
}

func TestAdvanceAllowsReprompt(t *testing.T) {
	p := model.NewOnboardingProgress("u1")
	p.CurrentStep = model.StepSubject

	next, err := Advance(p, model.StepData{Step: model.StepSubject})
	require.NoError(t, err)
	assert.Equal(t, model.StepSubject, next.CurrentStep)
}

func TestAdvanceMonotonicSequence(t *testing.T) {
	// A well-formed walk never observes a decreasing step.
	p := model.NewOnboardingProgress("u1")
	steps := []model.StepData{
		{Step: model.StepLanguage},
		{Step: model.StepName, Language: "english"},
		{Step: model.StepSubject, Name: "Sam"},
		{Step: model.StepAssessment, Subject: model.SubjectHealth},
		{Step: model.StepComplete, SkillLevel: model.SkillBeginner},
	}

	last := p.CurrentStep
	for _, data := range steps {
		next, err := Advance(p, data)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.CurrentStep, last)
		last = next.CurrentStep
		p = next
	}
	assert.True(t, p.CurrentStep.Terminal())
}

func TestApplyToProfile(t *testing.T) {
	p := &model.OnboardingProgress{
		UserID:      "u1",
		CurrentStep: model.StepComplete,
		Language:    "spanish",
		Name:        "Maria",
		Subject:     model.SubjectFinance,
		SkillLevel:  model.SkillIntermediate,
	}
	profile := model.NewUserProfile("u1")

	ApplyToProfile(p, profile)

	assert.True(t, profile.OnboardingCompleted)
	assert.Equal(t, "spanish", profile.PreferredLanguage)
	assert.Equal(t, "Maria", profile.DisplayName)
	assert.Equal(t, model.SubjectFinance, profile.SelectedSubject)
	assert.Equal(t, model.SkillIntermediate, profile.SkillLevel)
}

func TestRestart(t *testing.T) {
	p := Restart("u1")
	assert.Equal(t, model.StepWelcome, p.CurrentStep)
	assert.Equal(t, "u1", p.UserID)
}

func TestExtractStepData(t *testing.T) {
	tests := []struct {
		name    string
		current model.OnboardingStep
		message string
		want    model.StepData
	}{
		{
			name:    "welcome reply carries no data",
			current: model.StepWelcome,
			message: "hello there",
			want:    model.StepData{Step: model.StepLanguage},
		},
		{
			name:    "language answer",
			current: model.StepLanguage,
			message: " English ",
			want:    model.StepData{Step: model.StepName, Language: "English"},
		},
		{
			name:    "name answer",
			current: model.StepName,
			message: "Maria",
			want:    model.StepData{Step: model.StepSubject, Name: "Maria"},
		},
		{
			name:    "name skipped",
			current: model.StepName,
			message: "skip",
			want:    model.StepData{Step: model.StepSubject},
		},
		{
			name:    "subject by cue word",
			current: model.StepSubject,
			message: "I'd like help with my money",
			want:    model.StepData{Step: model.StepAssessment, Subject: model.SubjectFinance},
		},
		{
			name:    "unparseable subject re-prompts",
			current: model.StepSubject,
			message: "hmm not sure",
			want:    model.StepData{Step: model.StepSubject},
		},
		{
			name:    "skill answer completes",
			current: model.StepAssessment,
			message: "total beginner",
			want:    model.StepData{Step: model.StepComplete, SkillLevel: model.SkillBeginner},
		},
		{
			name:    "unparseable skill re-prompts",
			current: model.StepAssessment,
			message: "whatever you think",
			want:    model.StepData{Step: model.StepAssessment},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.OnboardingProgress{UserID: "u1", CurrentStep: tt.current}
			assert.Equal(t, tt.want, ExtractStepData(p, tt.message))
		})
	}
}

func TestDetectCompletion(t *testing.T) {
	assert.False(t, DetectCompletion(nil))
	assert.False(t, DetectCompletion(&model.Reply{Text: "keep going"}))
	assert.True(t, DetectCompletion(&model.Reply{Text: "done! " + CompletionSentinel}))
	assert.True(t, DetectCompletion(&model.Reply{Text: "done", Signal: model.SignalOnboardingComplete}))
}

func TestStripSentinel(t *testing.T) {
	assert.Equal(t, "all set!", StripSentinel("all set! "+CompletionSentinel))
	assert.Equal(t, "no token here", StripSentinel("no token here"))
}

func TestPromptForEachStep(t *testing.T) {
	p := &model.OnboardingProgress{UserID: "u1", Name: "Maria"}
	for step := model.StepWelcome; step <= model.StepComplete; step++ {
		assert.NotEmpty(t, PromptFor(step, p), "step %s", step)
	}
	assert.Contains(t, PromptFor(model.StepSubject, p), "Maria")
}
