package onboarding

import (
	"strings"

	"github.com/skillbridge/server/internal/agent/model"
)

// Cue words accepted as answers to the subject and assessment prompts, in
// addition to the canonical values themselves. Ordered: the first entry whose
// cue appears in the answer wins, mirroring the router's digital > finance >
// health priority.
var (
	subjectCues = []struct {
		subject model.Subject
		cues    []string
	}{
		{model.SubjectDigital, []string{"digital", "computer", "tech", "internet", "phone"}},
		{model.SubjectFinance, []string{"finance", "money", "financial", "budget", "bank"}},
		{model.SubjectHealth, []string{"health", "wellness", "medical", "fitness"}},
	}
	skillCues = []struct {
		level model.SkillLevel
		cues  []string
	}{
		{model.SkillBeginner, []string{"beginner", "just starting", "basics", "not much"}},
		{model.SkillIntermediate, []string{"intermediate", "a bit", "okay", "comfortable"}},
		{model.SkillAdvanced, []string{"advanced", "expert", "confident"}},
	}
)

// ExtractStepData interprets the user's reply to the current step's prompt
// and produces the advance for the next step. Unparseable subject or skill
// answers re-target the current step so the orchestrator re-prompts instead
// of advancing with bad data.
func ExtractStepData(p *model.OnboardingProgress, message string) model.StepData {
	answer := strings.TrimSpace(message)

	switch p.CurrentStep {
	case model.StepWelcome:
		// The welcome reply carries no data; it just starts the flow.
		return model.StepData{Step: model.StepLanguage}

	case model.StepLanguage:
		return model.StepData{Step: model.StepName, Language: answer}

	case model.StepName:
		name := answer
		if strings.EqualFold(name, "skip") || strings.EqualFold(name, "no") {
			name = ""
		}
		return model.StepData{Step: model.StepSubject, Name: name}

	case model.StepSubject:
		if subject, ok := matchSubject(answer); ok {
			return model.StepData{Step: model.StepAssessment, Subject: subject}
		}
		return model.StepData{Step: model.StepSubject}

	case model.StepAssessment:
		if level, ok := matchSkillLevel(answer); ok {
			return model.StepData{Step: model.StepComplete, SkillLevel: level}
		}
		return model.StepData{Step: model.StepAssessment}

	default:
		return model.StepData{Step: model.StepComplete}
	}
}

func matchSubject(answer string) (model.Subject, bool) {
	if subject, ok := model.ParseSubject(answer); ok {
		return subject, true
	}
	lowered := strings.ToLower(answer)
	for _, entry := range subjectCues {
		for _, cue := range entry.cues {
			if strings.Contains(lowered, cue) {
				return entry.subject, true
			}
		}
	}
	return "", false
}

func matchSkillLevel(answer string) (model.SkillLevel, bool) {
	if level, ok := model.ParseSkillLevel(answer); ok {
		return level, true
	}
	lowered := strings.ToLower(answer)
	for _, entry := range skillCues {
		for _, cue := range entry.cues {
			if strings.Contains(lowered, cue) {
				return entry.level, true
			}
		}
	}
	return "", false
}
