package onboarding

import (
	"fmt"

	"github.com/skillbridge/server/internal/agent/model"
)

const welcomePrompt = "Welcome to SkillBridge! I'm here to connect you with a tutor for " +
	"digital skills, personal finance, or everyday health. Before we start I'd like to " +
	"ask you a few quick questions. Send me any message when you're ready."

const languagePrompt = "First things first: which language would you like to learn in?"

const namePrompt = "Great. What name should I call you by? You can also say \"skip\"."

const subjectPrompt = "Which area would you like to work on: digital skills, " +
	"personal finance, or everyday health?"

const assessmentPrompt = "Last question: how experienced are you with that subject? " +
	"Would you say beginner, intermediate, or advanced?"

const completePrompt = "You're all set! Ask me anything and I'll connect you with the right tutor."

// PromptFor returns the guidance shown when the user arrives at a step. The
// text doubles as the fallback when the generated variant is unavailable.
func PromptFor(step model.OnboardingStep, p *model.OnboardingProgress) string {
	switch step {
	case model.StepWelcome:
		return welcomePrompt
	case model.StepLanguage:
		return languagePrompt
	case model.StepName:
		return namePrompt
	case model.StepSubject:
		if p != nil && p.Name != "" {
			return fmt.Sprintf("Nice to meet you, %s! %s", p.Name, subjectPrompt)
		}
		return subjectPrompt
	case model.StepAssessment:
		return assessmentPrompt
	default:
		if p != nil && p.Name != "" {
			return fmt.Sprintf("Thanks, %s! %s", p.Name, completePrompt)
		}
		return completePrompt
	}
}
