package repo

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/cloudwego/eino/schema"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
)

// In-memory store implementations. Used by tests and by local runs without
// Redis; they provide the same per-key isolation the engine documents as a
// requirement of its stores.

type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]model.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]model.UserProfile)}
}

func (s *MemoryProfileStore) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, errx.New(fmt.Errorf("profile %s", userID), http.StatusNotFound, errx.RedisNotFoundMessage)
	}
	out := p
	return &out, nil
}

func (s *MemoryProfileStore) Put(ctx context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = *profile
	return nil
}

type MemoryOnboardingStore struct {
	mu       sync.RWMutex
	progress map[string]model.OnboardingProgress
}

func NewMemoryOnboardingStore() *MemoryOnboardingStore {
	return &MemoryOnboardingStore{progress: make(map[string]model.OnboardingProgress)}
}

func (s *MemoryOnboardingStore) Get(ctx context.Context, userID string) (*model.OnboardingProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[userID]
	if !ok {
		return nil, errx.New(fmt.Errorf("onboarding %s", userID), http.StatusNotFound, errx.RedisNotFoundMessage)
	}
	out := p
	return &out, nil
}

func (s *MemoryOnboardingStore) Put(ctx context.Context, progress *model.OnboardingProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[progress.UserID] = *progress
	return nil
}

func (s *MemoryOnboardingStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.progress, userID)
	return nil
}

type MemoryConversationRepository struct {
	mu       sync.RWMutex
	messages map[string][]*schema.Message
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{messages: make(map[string][]*schema.Message)}
}

func (r *MemoryConversationRepository) AddMessage(ctx context.Context, userID string, message *schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[userID] = append(r.messages[userID], message)
	return nil
}

func (r *MemoryConversationRepository) LoadHistory(ctx context.Context, userID string) (*model.ConversationHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := make([]*schema.Message, len(r.messages[userID]))
	copy(msgs, r.messages[userID])
	return &model.ConversationHistory{UserID: userID, Messages: msgs}, nil
}

func (r *MemoryConversationRepository) ClearHistory(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, userID)
	return nil
}

func (r *MemoryConversationRepository) GetMessageCount(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages[userID]), nil
}

// MemoryAssessmentChecker records assessment completion per user and subject.
// Stands in for the external assessment service.
type MemoryAssessmentChecker struct {
	mu   sync.RWMutex
	done map[string]map[model.Subject]bool
}

func NewMemoryAssessmentChecker() *MemoryAssessmentChecker {
	return &MemoryAssessmentChecker{done: make(map[string]map[model.Subject]bool)}
}

func (c *MemoryAssessmentChecker) MarkCompleted(userID string, subject model.Subject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done[userID] == nil {
		c.done[userID] = make(map[model.Subject]bool)
	}
	c.done[userID][subject] = true
}

func (c *MemoryAssessmentChecker) HasCompletedAssessment(ctx context.Context, userID string, subject model.Subject) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done[userID][subject], nil
}

var (
	_ model.ProfileStore           = (*MemoryProfileStore)(nil)
	_ model.OnboardingStore        = (*MemoryOnboardingStore)(nil)
	_ model.ConversationRepository = (*MemoryConversationRepository)(nil)
	_ model.AssessmentChecker      = (*MemoryAssessmentChecker)(nil)
)
