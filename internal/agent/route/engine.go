// Package route turns classification scores into routing decisions and
// applies contextual overrides to them.
package route

import (
	"fmt"

	"github.com/skillbridge/server/internal/agent/model"
)

// Confidence bands for the three decision branches.
const (
	strongMatchConfidence  = 0.85
	clarifyConfidence      = 0.5
	generalConfidence      = 0.6
	explicitConfidence     = 1.0
	fallbackConfidence     = 0.5
	frustrationConfidence  = 0.8
	newUserConfidenceBelow = 0.8
)

const clarificationQuestion = "I want to make sure I point you to the right tutor. " +
	"Could you tell me a bit more about what you'd like help with?"

// Decide maps a classification to exactly one routing decision. Total
// function: every classification has a defined branch, no error path.
//
// Bands: a top score of 2 or more routes to the winning specialist at 0.85;
// exactly 1 asks for clarification at 0.5; zero goes to the general router at
// 0.6. Ties at the top resolve in the fixed priority order digital > finance
// > health.
func Decide(c model.ClassificationResult) model.RoutingDecision {
	d := model.RoutingDecision{
		AgentContext: c.Message,
	}

	switch {
	case c.TopScore >= 2:
		subject := topSubject(c.Scores)
		d.Target = model.SubjectSpecialist(subject)
		d.Confidence = strongMatchConfidence
		d.Reasoning = fmt.Sprintf("strong %s signal (score %d of digital=%d finance=%d health=%d)",
			subject, c.TopScore, c.Scores.Digital, c.Scores.Finance, c.Scores.Health)
	case c.TopScore == 1:
		d.Target = model.TargetClarification
		d.Confidence = clarifyConfidence
		d.Reasoning = fmt.Sprintf("weak %s signal, asking for clarification", c.Label)
		d.Clarification = clarificationQuestion
	default:
		d.Target = model.SpecialistRouter
		d.Confidence = generalConfidence
		d.Reasoning = "no subject signal, handling generally"
	}
	return d
}

// topSubject picks the highest-scoring subject, resolving ties in the fixed
// priority order digital > finance > health.
func topSubject(s model.CategoryScores) model.Subject {
	max := s.Max()
	switch {
	case s.Digital == max:
		return model.SubjectDigital
	case s.Finance == max:
		return model.SubjectFinance
	default:
		return model.SubjectHealth
	}
}

// ExplicitDecision builds the decision used when the caller requested a
// target directly, bypassing classification.
func ExplicitDecision(target model.SpecialistID, message string) model.RoutingDecision {
	return model.RoutingDecision{
		Target:       target,
		Confidence:   explicitConfidence,
		Reasoning:    "target explicitly requested by caller",
		AgentContext: message,
	}
}

// FallbackDecision is the boundary-recovery decision used when anything in
// the classify/decide/adjust pipeline fails unexpectedly.
func FallbackDecision(message string) model.RoutingDecision {
	return model.RoutingDecision{
		Target:       model.SpecialistRouter,
		Confidence:   fallbackConfidence,
		Reasoning:    "routing pipeline failure, recovered to general handling",
		AgentContext: message,
	}
}
