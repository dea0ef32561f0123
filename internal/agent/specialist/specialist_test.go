package specialist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/server/internal/agent/model"
)

func TestExtractSignalsRouteTag(t *testing.T) {
	reply := extractSignals("You should talk to our finance tutor. [route:finance_guide]")

	assert.Equal(t, model.RouteSignal(model.SpecialistFinanceGuide), reply.Signal)
	assert.Equal(t, "You should talk to our finance tutor.", reply.Text)

	target, ok := reply.Signal.RouteTarget()
	require.True(t, ok)
	assert.Equal(t, model.SpecialistFinanceGuide, target)
}

func TestExtractSignalsUnknownRouteTagIgnored(t *testing.T) {
	reply := extractSignals("see [route:astrologer] maybe")

	assert.Equal(t, model.SignalNone, reply.Signal)
	// The malformed tag is still stripped from the visible text.
	assert.NotContains(t, reply.Text, "[route:")
}

func TestExtractSignalsCompletionSentinel(t *testing.T) {
	reply := extractSignals("You're all set! ONBOARDING_COMPLETE")

	assert.Equal(t, model.SignalOnboardingComplete, reply.Signal)
	// The sentinel stays in the text for the compatibility scan downstream.
	assert.Contains(t, reply.Text, "ONBOARDING_COMPLETE")
}

func TestExtractSignalsPlainText(t *testing.T) {
	reply := extractSignals("just a normal answer")

	assert.Equal(t, model.SignalNone, reply.Signal)
	assert.Equal(t, "just a normal answer", reply.Text)
}

func TestSystemPromptCoversEveryTarget(t *testing.T) {
	for _, id := range []model.SpecialistID{
		model.SpecialistDigitalMentor,
		model.SpecialistFinanceGuide,
		model.SpecialistHealthCoach,
		model.SpecialistRouter,
	} {
		prompt := systemPrompt(id)
		assert.NotEmpty(t, prompt, "prompt for %s", id)
		assert.Contains(t, prompt, "ONBOARDING_COMPLETE")
	}
}

func TestStaticInvokerDistinctPerTarget(t *testing.T) {
	inv := NewStaticInvoker()
	seen := map[string]model.SpecialistID{}
	for _, id := range []model.SpecialistID{
		model.SpecialistDigitalMentor,
		model.SpecialistFinanceGuide,
		model.SpecialistHealthCoach,
		model.SpecialistRouter,
	} {
		reply, err := inv.Invoke(context.Background(), id, "hi", "")
		require.NoError(t, err)
		require.NotEmpty(t, reply.Text)
		if prev, dup := seen[reply.Text]; dup {
			t.Fatalf("targets %s and %s share reply text", prev, id)
		}
		seen[reply.Text] = id
	}
}
