package specialist

import (
	"context"
	"fmt"

	"github.com/skillbridge/server/internal/agent/model"
)

// StaticInvoker produces deterministic canned replies. It backs local runs
// without an API key and doubles as the test stand-in for the generation
// layer.
type StaticInvoker struct{}

func NewStaticInvoker() *StaticInvoker {
	return &StaticInvoker{}
}

func (s *StaticInvoker) Invoke(ctx context.Context, id model.SpecialistID, message, enhancedContext string) (*model.Reply, error) {
	var text string
	switch id {
	case model.SpecialistDigitalMentor:
		text = "Let's work through this together, one step at a time."
	case model.SpecialistFinanceGuide:
		text = "Good question about your finances. Here's how I'd think about it."
	case model.SpecialistHealthCoach:
		text = "Thanks for asking. Small, steady habits are the best place to start."
	default:
		text = "I'm happy to help with that. Could you tell me a little more about what you're looking for?"
	}
	return &model.Reply{Text: fmt.Sprintf("%s (%s)", text, id.DisplayName())}, nil
}

var _ model.Invoker = (*StaticInvoker)(nil)
