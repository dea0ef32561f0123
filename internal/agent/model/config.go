package model

// ================ Config ================

type ConversationConfig struct {
	TTL           string `envconfig:"CONVERSATION_TTL" default:"720h"`
	ContextWindow int    `envconfig:"CONVERSATION_CONTEXT_WINDOW" default:"3"`
}

// ClassifierConfig lets deployments extend the built-in keyword sets without
// a rebuild. Values are comma separated lowercase triggers.
type ClassifierConfig struct {
	ExtraDigital string `envconfig:"CLASSIFIER_EXTRA_DIGITAL"`
	ExtraFinance string `envconfig:"CLASSIFIER_EXTRA_FINANCE"`
	ExtraHealth  string `envconfig:"CLASSIFIER_EXTRA_HEALTH"`
}

// SpecialistModelConfig configures the generation model shared by the
// specialist personas and the general router persona.
type SpecialistModelConfig struct {
	Model       string  `envconfig:"SPECIALIST_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"SPECIALIST_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"SPECIALIST_TEMPERATURE" default:"0.4"`
}

type ServerConfig struct {
	Port            int `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout int `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10"`
}
