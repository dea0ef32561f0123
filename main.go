package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"google.golang.org/genai"

	"github.com/skillbridge/server/internal/agent/classify"
	"github.com/skillbridge/server/internal/agent/model"
	"github.com/skillbridge/server/internal/agent/orchestrator"
	"github.com/skillbridge/server/internal/agent/repo"
	"github.com/skillbridge/server/internal/agent/specialist"
	"github.com/skillbridge/server/internal/core"
	"github.com/skillbridge/server/internal/server"
	logx "github.com/skillbridge/server/pkg/logger"
	pkgredis "github.com/skillbridge/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider; leave APIKey empty to run with canned replies.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Engine configs
	Classifier   model.ClassifierConfig
	Specialist   model.SpecialistModelConfig
	Conversation model.ConversationConfig
	Server       model.ServerConfig
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise Redis client")
	}
	defer rdb.Close()
	logx.Info().Msg("connected to Redis")

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", cfg.Conversation.TTL).Msg("invalid CONVERSATION_TTL")
	}

	var invoker model.Invoker
	if cfg.APIKey != "" {
		clientCfg := &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if cfg.BaseURL != "" {
			clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
		}
		client, err := genai.NewClient(ctx, clientCfg)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to create Gemini client")
		}
		invoker = specialist.NewGeminiInvoker(client, cfg.Specialist)
	} else {
		logx.Warn().Msg("GEMINI_API_KEY not set, using canned specialist replies")
		invoker = specialist.NewStaticInvoker()
	}

	orch, err := orchestrator.New(orchestrator.Config{
		Classifier:    classify.New(cfg.Classifier),
		Profiles:      repo.NewRedisProfileStore(rdb),
		Onboardings:   repo.NewRedisOnboardingStore(rdb, ttl),
		Conversations: repo.NewRedisConversationRepository(rdb, ttl),
		Assessments:   repo.NewRedisAssessmentChecker(rdb),
		Invoker:       invoker,
		ContextWindow: cfg.Conversation.ContextWindow,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build orchestrator")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.New(orch).Routes(),
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logx.Info().Int("port", cfg.Server.Port).Msg("chat server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server error")
		}
	}()

	<-runCtx.Done()
	logx.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	}
}
