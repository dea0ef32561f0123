// Package classify scores free text against the three subject keyword sets.
// It is deliberately not an ML classifier: deterministic, inspectable lexical
// scoring so routing behaviour can be reasoned about and tested.
package classify

import (
	"strings"

	"github.com/skillbridge/server/internal/agent/model"
)

// Built-in trigger sets. All lowercase; scoring counts distinct triggers
// present as substrings of the lowercased message. No trigger within a set
// may be a substring of another in the same set, otherwise one word would
// count twice ("tax" and "taxes" would both hit on "taxes").
var (
	digitalTriggers = []string{
		"computer", "internet", "email", "password", "wifi", "wi-fi",
		"phone", "tablet", "app", "website", "online", "browser",
		"video call", "social media", "text message", "download",
		"install", "screen", "click", "set up", "login", "log in",
		"username",
	}
	financeTriggers = []string{
		"money", "budget", "saving", "bank", "credit", "debit", "loan",
		"debt", "invest", "retirement", "insurance", "tax", "bill",
		"payment", "interest rate", "pension", "mortgage",
	}
	healthTriggers = []string{
		"health", "doctor", "medicine", "medication", "exercise", "diet",
		"nutrition", "sleep", "stress", "blood pressure", "diabetes",
		"appointment", "symptom", "wellness", "pain", "therapy",
		"vaccine", "checkup", "walking", "hydration",
	}
)

// Classifier holds the merged trigger sets. Zero side effects after
// construction; Classify is safe for concurrent use.
type Classifier struct {
	digital []string
	finance []string
	health  []string
}

// New builds a classifier from the built-in trigger sets plus any
// deployment-supplied extras.
func New(cfg model.ClassifierConfig) *Classifier {
	return &Classifier{
		digital: mergeTriggers(digitalTriggers, cfg.ExtraDigital),
		finance: mergeTriggers(financeTriggers, cfg.ExtraFinance),
		health:  mergeTriggers(healthTriggers, cfg.ExtraHealth),
	}
}

// Classify scores the message against each trigger set and labels it with the
// highest-scoring category. Whitespace-only input yields all-zero scores and
// the none label. Pure: identical input always yields an identical result.
func (c *Classifier) Classify(message string) model.ClassificationResult {
	lowered := strings.ToLower(strings.TrimSpace(message))

	res := model.ClassificationResult{
		Message: message,
		Label:   model.IntentNone,
	}
	if lowered == "" {
		return res
	}

	res.Scores = model.CategoryScores{
		Digital: countHits(lowered, c.digital),
		Finance: countHits(lowered, c.finance),
		Health:  countHits(lowered, c.health),
	}
	res.TopScore = res.Scores.Max()

	// Label follows the fixed priority order digital > finance > health so
	// equal scores resolve deterministically.
	switch {
	case res.TopScore == 0:
		res.Label = model.IntentNone
	case res.Scores.Digital == res.TopScore:
		res.Label = model.IntentDigital
	case res.Scores.Finance == res.TopScore:
		res.Label = model.IntentFinance
	default:
		res.Label = model.IntentHealth
	}
	return res
}

// countHits counts distinct triggers present in the message. Presence only;
// repeating a trigger in the message does not raise the score.
func countHits(lowered string, triggers []string) int {
	n := 0
	for _, t := range triggers {
		if strings.Contains(lowered, t) {
			n++
		}
	}
	return n
}

func mergeTriggers(base []string, extra string) []string {
	merged := make([]string, len(base))
	copy(merged, base)

	seen := make(map[string]struct{}, len(base))
	for _, t := range base {
		seen[t] = struct{}{}
	}
	for _, raw := range strings.Split(extra, ",") {
		t := strings.ToLower(strings.TrimSpace(raw))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}
