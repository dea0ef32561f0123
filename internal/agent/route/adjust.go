package route

import (
	"fmt"
	"strings"

	"github.com/skillbridge/server/internal/agent/model"
)

// AdjustInput bundles everything one adjustment pass looks at.
type AdjustInput struct {
	Decision       model.RoutingDecision
	Profile        *model.UserProfile
	Context        model.ConversationContext
	AssessmentDone bool
}

// adjustRule is one override evaluated against an in-progress adjustment.
// Rules run in declaration order and the first one whose applies predicate
// matches wins; the rest are skipped.
type adjustRule struct {
	name    string
	applies func(in AdjustInput) bool
	apply   func(in AdjustInput, out *model.AdjustedDecision)
}

var adjustRules = []adjustRule{
	{
		name: "frustration_override",
		applies: func(in AdjustInput) bool {
			return in.Context.Frustration == model.FrustrationHigh
		},
		apply: func(in AdjustInput, out *model.AdjustedDecision) {
			out.Target = model.SpecialistRouter
			if out.Confidence < frustrationConfidence {
				out.Confidence = frustrationConfidence
			}
			out.Reasoning = "high frustration, escalating to personalized general help"
			out.NotifyUser = true
			out.Notification = "I can tell this has been frustrating. Let me help you directly so we can sort it out together."
		},
	},
	{
		name: "new_user_prioritization",
		applies: func(in AdjustInput) bool {
			return !in.Context.IsReturningUser() &&
				!in.AssessmentDone &&
				in.Decision.Confidence < newUserConfidenceBelow &&
				in.Decision.Target != model.SpecialistRouter
		},
		apply: func(in AdjustInput, out *model.AdjustedDecision) {
			out.Target = model.SpecialistRouter
			out.Reasoning = "new user without an assessment, starting with general guidance"
			out.Recommendations = append(out.Recommendations,
				"Take a short skill assessment so we can match you with the right tutor.")
		},
	},
	{
		name: "subject_affinity_mismatch",
		applies: func(in AdjustInput) bool {
			if in.Profile == nil || in.Profile.SelectedSubject == "" {
				return false
			}
			return in.Decision.Target != model.SpecialistRouter &&
				model.SubjectSpecialist(in.Profile.SelectedSubject) != in.Decision.Target &&
				in.Decision.Confidence > 0.6 && in.Decision.Confidence < 0.9
		},
		apply: func(in AdjustInput, out *model.AdjustedDecision) {
			// Transparency only: the decided target stays.
			out.NotifyUser = true
			out.Notification = fmt.Sprintf(
				"You usually study %s, but this question looks like one for our %s, so I'm sending you there.",
				in.Profile.SelectedSubject, out.Target.DisplayName())
		},
	},
	{
		name: "specialist_continuity",
		applies: func(in AdjustInput) bool {
			return in.Context.PreviousAgent != "" &&
				in.Context.PreviousAgent != in.Decision.Target &&
				in.Decision.Target != model.SpecialistRouter
		},
		apply: func(in AdjustInput, out *model.AdjustedDecision) {
			out.NotifyUser = true
			out.Notification = fmt.Sprintf("Handing you over from %s to %s.",
				in.Context.PreviousAgent.DisplayName(), out.Target.DisplayName())
		},
	},
}

// Adjust applies the contextual override rules to a routing decision and
// returns a new adjusted decision; the input decision is never mutated. Pure:
// identical inputs always produce an equal result.
func Adjust(in AdjustInput) model.AdjustedDecision {
	out := model.AdjustedDecision{RoutingDecision: in.Decision}

	for _, rule := range adjustRules {
		if rule.applies(in) {
			rule.apply(in, &out)
			break
		}
	}

	// Clarification never reaches an invoker: the router asks the question
	// itself, so fold the pseudo-target back and drop any notification.
	if in.Decision.Target == model.TargetClarification {
		out.Target = model.SpecialistRouter
		out.Reasoning = "unclear intent; router will clarify"
		out.NotifyUser = false
		out.Notification = ""
	}

	out.EnhancedContext = buildEnhancedContext(in, out)
	return out
}

// buildEnhancedContext appends routing diagnostics to the agent context so
// the responder can tailor its answer.
func buildEnhancedContext(in AdjustInput, out model.AdjustedDecision) string {
	var b strings.Builder
	b.WriteString(in.Decision.AgentContext)
	b.WriteString("\n<routing_diagnostics>\n")
	fmt.Fprintf(&b, "frustration_level: %s\n", in.Context.Frustration)
	fmt.Fprintf(&b, "session_length: %d\n", in.Context.SessionLength)
	fmt.Fprintf(&b, "assessment_completed: %t\n", in.AssessmentDone)
	if in.Context.PreviousAgent != "" {
		fmt.Fprintf(&b, "previous_agent: %s\n", in.Context.PreviousAgent)
	}
	fmt.Fprintf(&b, "confidence: %.2f\n", out.Confidence)
	b.WriteString("</routing_diagnostics>")
	return b.String()
}
