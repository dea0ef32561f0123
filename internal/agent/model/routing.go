package model

// CategoryScores holds the per-category keyword hit counts. All three are
// kept because tie-break and clarification decisions need more than the
// winner.
type CategoryScores struct {
	Digital int `json:"digital"`
	Finance int `json:"finance"`
	Health  int `json:"health"`
}

// Max returns the highest of the three scores.
func (s CategoryScores) Max() int {
	m := s.Digital
	if s.Finance > m {
		m = s.Finance
	}
	if s.Health > m {
		m = s.Health
	}
	return m
}

// IntentLabel is the raw classifier outcome.
type IntentLabel string

const (
	IntentDigital IntentLabel = "digital"
	IntentFinance IntentLabel = "finance"
	IntentHealth  IntentLabel = "health"
	IntentNone    IntentLabel = "none"
)

// ClassificationResult is ephemeral: produced and consumed within a single
// routing call.
type ClassificationResult struct {
	Message  string
	Label    IntentLabel
	TopScore int
	Scores   CategoryScores
}

// RoutingDecision is the engine's verdict for one message. It is treated as
// immutable: the adjuster builds a new decision rather than mutating one.
type RoutingDecision struct {
	Target        SpecialistID
	Confidence    float64 // always in [0,1]
	Reasoning     string
	AgentContext  string // context handed to the chosen responder
	Clarification string // set only when Target is TargetClarification
}

// AdjustedDecision is the context adjuster's output: the (possibly
// overridden) decision plus user-facing side outputs.
type AdjustedDecision struct {
	RoutingDecision

	NotifyUser      bool
	Notification    string
	Recommendations []string

	// EnhancedContext is AgentContext plus appended diagnostics (frustration,
	// session length, assessment state, previous agent, confidence) for the
	// responder to consume.
	EnhancedContext string
}

// RoutingInfo is the observability slice of a decision exposed to callers.
type RoutingInfo struct {
	Target     SpecialistID `json:"target"`
	Confidence float64      `json:"confidence"`
	Reasoning  string       `json:"reasoning"`
}
