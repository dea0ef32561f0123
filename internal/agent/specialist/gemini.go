package specialist

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
	logx "github.com/skillbridge/server/pkg/logger"
)

// completionSentinel mirrors the onboarding package's contract token. The
// invoker translates it into the structured signal channel so downstream
// code never has to scan free text itself.
const completionSentinel = "ONBOARDING_COMPLETE"

var routeTagRe = regexp.MustCompile(`\[route:([a-z_]+)\]`)

// GeminiInvoker generates replies with a persona system prompt per target.
type GeminiInvoker struct {
	client *genai.Client
	cfg    model.SpecialistModelConfig
}

func NewGeminiInvoker(client *genai.Client, cfg model.SpecialistModelConfig) *GeminiInvoker {
	return &GeminiInvoker{client: client, cfg: cfg}
}

// Invoke runs one blocking generation for the given target. The engine calls
// this at most once per routing decision and falls back on failure; no
// retries happen here.
func (g *GeminiInvoker) Invoke(ctx context.Context, id model.SpecialistID, message, enhancedContext string) (*model.Reply, error) {
	content := message
	if enhancedContext != "" {
		content = enhancedContext
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.cfg.Model,
		[]*genai.Content{genai.NewContentFromText(content, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt(id), genai.RoleUser),
			Temperature:       genai.Ptr(g.cfg.Temperature),
			MaxOutputTokens:   int32(g.cfg.MaxTokens),
		},
	)
	if err != nil {
		logx.Error().Err(err).Str("specialist", string(id)).Msg("specialist generation failed")
		return nil, errx.WrapSpecialist(err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, errx.WrapSpecialist(fmt.Errorf("empty response from %s", id))
	}
	return extractSignals(text), nil
}

// extractSignals lifts in-band tokens out of generated text into the
// structured Reply.Signal channel. Route tags are stripped from the visible
// text; the completion sentinel is left in place for the onboarding scan.
func extractSignals(text string) *model.Reply {
	reply := &model.Reply{Text: text}

	if m := routeTagRe.FindStringSubmatch(text); m != nil {
		if target, ok := model.ParseSpecialistID(m[1]); ok {
			reply.Signal = model.RouteSignal(target)
		}
		reply.Text = strings.TrimSpace(routeTagRe.ReplaceAllString(text, ""))
	}
	if strings.Contains(text, completionSentinel) {
		reply.Signal = model.SignalOnboardingComplete
	}
	return reply
}

var _ model.Invoker = (*GeminiInvoker)(nil)
