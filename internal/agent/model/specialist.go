package model

import "strings"

// SpecialistID identifies a routing target. It is a closed set: the three
// domain specialists, the general router, and the pseudo-target used while a
// decision still needs clarification.
type SpecialistID string

const (
	SpecialistDigitalMentor SpecialistID = "digital_mentor"
	SpecialistFinanceGuide  SpecialistID = "finance_guide"
	SpecialistHealthCoach   SpecialistID = "health_coach"
	SpecialistRouter        SpecialistID = "router"

	// TargetClarification never reaches an invoker; the adjuster folds it
	// back into the router before dispatch.
	TargetClarification SpecialistID = "clarification_needed"
)

// IsSpecialist reports whether the id names one of the three domain
// specialists (as opposed to the router or the clarification pseudo-target).
func (s SpecialistID) IsSpecialist() bool {
	switch s {
	case SpecialistDigitalMentor, SpecialistFinanceGuide, SpecialistHealthCoach:
		return true
	default:
		return false
	}
}

// DisplayName returns a human-readable name for announcements.
func (s SpecialistID) DisplayName() string {
	switch s {
	case SpecialistDigitalMentor:
		return "Digital Mentor"
	case SpecialistFinanceGuide:
		return "Finance Guide"
	case SpecialistHealthCoach:
		return "Health Coach"
	default:
		return "your tutor"
	}
}

// ParseSpecialistID normalises a caller-supplied agent name. The boolean is
// false for anything outside the closed set.
func ParseSpecialistID(v string) (SpecialistID, bool) {
	switch SpecialistID(strings.ToLower(strings.TrimSpace(v))) {
	case SpecialistDigitalMentor:
		return SpecialistDigitalMentor, true
	case SpecialistFinanceGuide:
		return SpecialistFinanceGuide, true
	case SpecialistHealthCoach:
		return SpecialistHealthCoach, true
	case SpecialistRouter:
		return SpecialistRouter, true
	default:
		return "", false
	}
}

// SubjectSpecialist is the total mapping from a learning subject to the
// specialist that teaches it.
func SubjectSpecialist(s Subject) SpecialistID {
	switch s {
	case SubjectDigital:
		return SpecialistDigitalMentor
	case SubjectFinance:
		return SpecialistFinanceGuide
	case SubjectHealth:
		return SpecialistHealthCoach
	default:
		return SpecialistRouter
	}
}

// SpecialistSubject inverts SubjectSpecialist for the three specialists.
func SpecialistSubject(id SpecialistID) (Subject, bool) {
	switch id {
	case SpecialistDigitalMentor:
		return SubjectDigital, true
	case SpecialistFinanceGuide:
		return SubjectFinance, true
	case SpecialistHealthCoach:
		return SubjectHealth, true
	default:
		return "", false
	}
}
