package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillbridge/server/internal/agent/model"
)

func TestDecideStrongMatch(t *testing.T) {
	d := Decide(model.ClassificationResult{
		Message:  "How do I set up an email account?",
		Label:    model.IntentDigital,
		TopScore: 2,
		Scores:   model.CategoryScores{Digital: 2},
	})

	assert.Equal(t, model.SpecialistDigitalMentor, d.Target)
	assert.Equal(t, 0.85, d.Confidence)
	assert.NotEmpty(t, d.Reasoning)
	assert.Empty(t, d.Clarification)
	assert.Equal(t, "How do I set up an email account?", d.AgentContext)
}

func TestDecideWeakMatchAsksClarification(t *testing.T) {
	d := Decide(model.ClassificationResult{
		Message:  "money",
		Label:    model.IntentFinance,
		TopScore: 1,
		Scores:   model.CategoryScores{Finance: 1},
	})

	assert.Equal(t, model.TargetClarification, d.Target)
	assert.Equal(t, 0.5, d.Confidence)
	assert.NotEmpty(t, d.Clarification)
}

func TestDecideNoMatchGoesGeneral(t *testing.T) {
	d := Decide(model.ClassificationResult{
		Message: "What's the weather like?",
		Label:   model.IntentNone,
	})

	assert.Equal(t, model.SpecialistRouter, d.Target)
	assert.Equal(t, 0.6, d.Confidence)
	assert.NotEmpty(t, d.Reasoning)
}

func TestDecideTieBreakPriority(t *testing.T) {
	tests := []struct {
		name   string
		scores model.CategoryScores
		want   model.SpecialistID
	}{
		{"digital beats finance", model.CategoryScores{Digital: 2, Finance: 2}, model.SpecialistDigitalMentor},
		{"digital beats health", model.CategoryScores{Digital: 2, Health: 2}, model.SpecialistDigitalMentor},
		{"finance beats health", model.CategoryScores{Finance: 3, Health: 3}, model.SpecialistFinanceGuide},
		{"three way tie", model.CategoryScores{Digital: 2, Finance: 2, Health: 2}, model.SpecialistDigitalMentor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(model.ClassificationResult{TopScore: tt.scores.Max(), Scores: tt.scores})
			assert.Equal(t, tt.want, d.Target)
		})
	}
}

func TestDecideConfidenceBounds(t *testing.T) {
	for top := 0; top <= 5; top++ {
		d := Decide(model.ClassificationResult{
			TopScore: top,
			Scores:   model.CategoryScores{Health: top},
		})
		assert.GreaterOrEqual(t, d.Confidence, 0.0)
		assert.LessOrEqual(t, d.Confidence, 1.0)
	}
}

func TestExplicitDecision(t *testing.T) {
	d := ExplicitDecision(model.SpecialistHealthCoach, "help")
	assert.Equal(t, model.SpecialistHealthCoach, d.Target)
	assert.Equal(t, 1.0, d.Confidence)
}

func TestFallbackDecision(t *testing.T) {
	d := FallbackDecision("help")
	assert.Equal(t, model.SpecialistRouter, d.Target)
	assert.Equal(t, 0.5, d.Confidence)
	assert.NotEmpty(t, d.Reasoning)
}
