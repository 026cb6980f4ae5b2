package validation

import (
	"fmt"

	"github.com/julianstephens/resurs/internal/models"
)

// ConflictType represents the type of problem found in stored data
type ConflictType string

const (
	ConflictNegativeFlowers   ConflictType = "negative_flowers"
	ConflictInvalidStreak     ConflictType = "invalid_streak"
	ConflictUnknownTier       ConflictType = "unknown_tier"
	ConflictInvalidWakeUpTime ConflictType = "invalid_wake_up_time"
	ConflictNotOnboarded      ConflictType = "not_onboarded_flag"
	ConflictLegacyMood        ConflictType = "legacy_mood"
	ConflictUnknownMood       ConflictType = "unknown_mood"
	ConflictDuplicateID       ConflictType = "duplicate_id"
	ConflictUnordered         ConflictType = "unordered_entries"
	ConflictEmptyAchievement  ConflictType = "empty_achievement"
)

// Conflict represents a detected problem in the stored record or logs
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // ids or field names involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

func (vr *ValidationResult) add(t ConflictType, desc string, items ...string) {
	vr.Conflicts = append(vr.Conflicts, Conflict{Type: t, Description: desc, Items: items})
}

// Validator audits persisted data for the doctor command
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateUser checks the invariants of a stored user record.
func (v *Validator) ValidateUser(user models.UserRecord) ValidationResult {
	var result ValidationResult

	if !user.IsOnboarded {
		result.add(ConflictNotOnboarded, "stored user record is not marked as onboarded", "isOnboarded")
	}
	if user.Flowers < 0 {
		result.add(ConflictNegativeFlowers, fmt.Sprintf("flower count is negative (%d)", user.Flowers), "flowers")
	}
	if user.Streak < 1 {
		result.add(ConflictInvalidStreak, fmt.Sprintf("streak must be positive (%d)", user.Streak), "streak")
	}
	if !user.SubscriptionLevel.Valid() {
		result.add(ConflictUnknownTier, fmt.Sprintf("unknown subscription level %q", user.SubscriptionLevel), "subscriptionLevel")
	}
	if err := WakeUpTime(user.Notifications.WakeUpTime); err != nil {
		result.add(ConflictInvalidWakeUpTime, err.Error(), "notifications.wakeUpTime")
	}

	return result
}

// ValidateMoods checks mood entries for legacy values, duplicate ids and ordering.
func (v *Validator) ValidateMoods(entries []models.MoodEntry) ValidationResult {
	var result ValidationResult
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		if seen[e.ID] {
			result.add(ConflictDuplicateID, fmt.Sprintf("duplicate mood entry id %s", e.ID), e.ID)
		}
		seen[e.ID] = true

		switch {
		case e.Mood.IsLegacy():
			result.add(ConflictLegacyMood, fmt.Sprintf("mood entry %s uses legacy mood %s", e.ID, e.Mood), e.ID)
		case !e.Mood.Valid():
			result.add(ConflictUnknownMood, fmt.Sprintf("mood entry %s has unknown mood %q", e.ID, e.Mood), e.ID)
		}

		if i > 0 && e.Date.After(entries[i-1].Date) {
			result.add(ConflictUnordered, fmt.Sprintf("mood entry %s is newer than the entry before it", e.ID), entries[i-1].ID, e.ID)
		}
	}

	return result
}

// ValidateAchievements checks achievement entries for empty text, duplicate ids and ordering.
func (v *Validator) ValidateAchievements(entries []models.AchievementEntry) ValidationResult {
	var result ValidationResult
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		if seen[e.ID] {
			result.add(ConflictDuplicateID, fmt.Sprintf("duplicate achievement id %s", e.ID), e.ID)
		}
		seen[e.ID] = true

		if _, err := AchievementText(e.Text); err != nil {
			result.add(ConflictEmptyAchievement, fmt.Sprintf("achievement %s has empty text", e.ID), e.ID)
		}

		if i > 0 && e.Date.After(entries[i-1].Date) {
			result.add(ConflictUnordered, fmt.Sprintf("achievement %s is newer than the entry before it", e.ID), entries[i-1].ID, e.ID)
		}
	}

	return result
}
