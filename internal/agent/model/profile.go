package model

import (
	"strings"
	"time"
)

// Subject is a learning track a user can follow.
type Subject string

const (
	SubjectDigital Subject = "digital"
	SubjectFinance Subject = "finance"
	SubjectHealth  Subject = "health"
)

// ParseSubject normalises a free-form value into a known subject.
func ParseSubject(v string) (Subject, bool) {
	switch Subject(strings.ToLower(strings.TrimSpace(v))) {
	case SubjectDigital:
		return SubjectDigital, true
	case SubjectFinance:
		return SubjectFinance, true
	case SubjectHealth:
		return SubjectHealth, true
	default:
		return "", false
	}
}

// SkillLevel is the user's self-assessed proficiency in their subject.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// ParseSkillLevel normalises a free-form value into a known skill level.
func ParseSkillLevel(v string) (SkillLevel, bool) {
	switch SkillLevel(strings.ToLower(strings.TrimSpace(v))) {
	case SkillBeginner:
		return SkillBeginner, true
	case SkillIntermediate:
		return SkillIntermediate, true
	case SkillAdvanced:
		return SkillAdvanced, true
	default:
		return "", false
	}
}

// UserProfile is the durable record for a user. The engine reads and updates
// it through the ProfileStore; it never deletes profiles.
type UserProfile struct {
	UserID              string     `json:"user_id"`
	DisplayName         string     `json:"display_name,omitempty"`
	PreferredLanguage   string     `json:"preferred_language,omitempty"`
	SelectedSubject     Subject    `json:"selected_subject,omitempty"`
	SkillLevel          SkillLevel `json:"skill_level,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewUserProfile creates the initial record for a first-contact user.
func NewUserProfile(userID string) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
