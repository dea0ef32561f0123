package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillbridge/server/internal/agent/model"
)

func TestClassifyEmptyMessage(t *testing.T) {
	c := New(model.ClassifierConfig{})

	for _, msg := range []string{"", "   ", "\n\t"} {
		res := c.Classify(msg)
		assert.Equal(t, model.IntentNone, res.Label)
		assert.Equal(t, 0, res.TopScore)
		assert.Equal(t, model.CategoryScores{}, res.Scores)
	}
}

func TestClassifyDigitalQuestion(t *testing.T) {
	c := New(model.ClassifierConfig{})

	res := c.Classify("How do I set up an email account?")
	assert.Equal(t, model.IntentDigital, res.Label)
	assert.GreaterOrEqual(t, res.Scores.Digital, 2)
	assert.Equal(t, res.Scores.Digital, res.TopScore)
}

func TestClassifySingleFinanceKeyword(t *testing.T) {
	c := New(model.ClassifierConfig{})

	res := c.Classify("money")
	assert.Equal(t, model.IntentFinance, res.Label)
	assert.Equal(t, 1, res.TopScore)
	assert.Equal(t, model.CategoryScores{Finance: 1}, res.Scores)
}

func TestClassifyNoMatches(t *testing.T) {
	c := New(model.ClassifierConfig{})

	res := c.Classify("What's the weather like?")
	assert.Equal(t, model.IntentNone, res.Label)
	assert.Equal(t, 0, res.TopScore)
}

func TestClassifyHealthQuestion(t *testing.T) {
	c := New(model.ClassifierConfig{})

	res := c.Classify("My doctor says I should watch my blood pressure and sleep more")
	assert.Equal(t, model.IntentHealth, res.Label)
	assert.GreaterOrEqual(t, res.Scores.Health, 3)
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(model.ClassifierConfig{})

	msgs := []string{
		"How do I set up an email account?",
		"money",
		"budget and savings",
		"",
	}
	for _, msg := range msgs {
		first := c.Classify(msg)
		second := c.Classify(msg)
		assert.Equal(t, first, second, "classification of %q must be pure", msg)
	}
}

func TestClassifyTiePrefersDigital(t *testing.T) {
	c := New(model.ClassifierConfig{})

	// One trigger from each set.
	res := c.Classify("my phone, my money, my health")
	assert.Equal(t, 1, res.Scores.Digital)
	assert.Equal(t, 1, res.Scores.Finance)
	assert.Equal(t, 1, res.Scores.Health)
	assert.Equal(t, model.IntentDigital, res.Label)
}

func TestClassifyExtraTriggers(t *testing.T) {
	c := New(model.ClassifierConfig{ExtraFinance: "crypto, side hustle"})

	res := c.Classify("should I buy crypto with my money")
	assert.Equal(t, model.IntentFinance, res.Label)
	assert.Equal(t, 2, res.Scores.Finance)

	// Duplicates in the extra list must not double count.
	dup := New(model.ClassifierConfig{ExtraFinance: "money, money"})
	assert.Equal(t, 1, dup.Classify("money").Scores.Finance)
}

func TestClassifyRepeatedTriggerCountsOnce(t *testing.T) {
	c := New(model.ClassifierConfig{})

	res := c.Classify("money money money")
	assert.Equal(t, 1, res.Scores.Finance)
}
