// Package progression owns the persisted user record and every transition
// that changes it: onboarding, practice completion, mood and achievement
// check-ins, reminder settings and the tier switch.
package progression

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/constants"
	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/journal"
	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/storage"
	"github.com/julianstephens/resurs/internal/validation"
)

type Model struct {
	store   storage.Provider
	journal *journal.Journal
	now     func() time.Time
}

type Option func(*Model)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func New(store storage.Provider, log *journal.Journal, opts ...Option) *Model {
	if log == nil {
		log = journal.New(store)
	}
	m := &Model{
		store:   store,
		journal: log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Journal returns the mood and achievement log the model appends to.
func (m *Model) Journal() *journal.Journal {
	return m.journal
}

func (m *Model) timestamp() time.Time {
	return m.now().UTC()
}

// CompleteOnboarding creates the user record and the first mood entry.
// Onboarding runs once; a second call fails without touching storage.
// A failed attempt leaves no user record, so it can be retried.
func (m *Model) CompleteOnboarding(name string, initialMood models.MoodType) (models.UserRecord, error) {
	name, err := validation.UserName(name)
	if err != nil {
		return models.UserRecord{}, err
	}
	if err := validation.Mood(initialMood); err != nil {
		return models.UserRecord{}, err
	}

	_, exists, err := m.readUser()
	if err != nil {
		return models.UserRecord{}, err
	}
	if exists {
		return models.UserRecord{}, fmt.Errorf("%w (%w)", apperrors.ErrAlreadyOnboarded,
			apperrors.NewValidationError("user", "onboarding can only run once"))
	}

	now := m.timestamp()
	user := models.UserRecord{
		Name:              name,
		IsOnboarded:       true,
		SubscriptionLevel: models.LevelFree,
		Flowers:           constants.InitialFlowers,
		Streak:            constants.InitialStreak,
		LastVisit:         &now,
		Notifications:     models.DefaultNotificationSettings(),
	}

	// The user record is written last and commits onboarding. An entry left
	// by an attempt whose record write failed is reused, not duplicated.
	pending, err := m.pendingOnboardingEntry()
	if err != nil {
		return models.UserRecord{}, err
	}
	if !pending {
		entry := models.MoodEntry{
			ID:   models.NewEntryID(now),
			Date: now,
			Mood: initialMood,
			Note: constants.OnboardingNote,
		}
		if err := m.journal.AppendMood(entry); err != nil {
			return models.UserRecord{}, err
		}
	}

	if err := m.saveUser(user); err != nil {
		return models.UserRecord{}, err
	}

	logger.Info("onboarding completed", "mood", initialMood)
	return user, nil
}

// pendingOnboardingEntry reports whether the newest mood entry is the
// onboarding entry of an attempt that never stored its user record.
func (m *Model) pendingOnboardingEntry() (bool, error) {
	moods, err := m.journal.Moods()
	if err != nil {
		return false, err
	}
	return len(moods) > 0 && moods[0].Note == constants.OnboardingNote, nil
}

// RecordMoodCheckin appends a mood entry. The user record is not changed.
func (m *Model) RecordMoodCheckin(mood models.MoodType, note string) (models.MoodEntry, error) {
	if err := validation.Mood(mood); err != nil {
		return models.MoodEntry{}, err
	}

	now := m.timestamp()
	entry := models.MoodEntry{
		ID:   models.NewEntryID(now),
		Date: now,
		Mood: mood,
		Note: note,
	}
	if err := m.journal.AppendMood(entry); err != nil {
		return models.MoodEntry{}, err
	}

	logger.Debug("mood recorded", "mood", mood)
	return entry, nil
}

// RecordAchievement appends a trimmed, non-empty achievement.
func (m *Model) RecordAchievement(text string) (models.AchievementEntry, error) {
	text, err := validation.AchievementText(text)
	if err != nil {
		return models.AchievementEntry{}, err
	}

	now := m.timestamp()
	entry := models.AchievementEntry{
		ID:   models.NewEntryID(now),
		Date: now,
		Text: text,
	}
	if err := m.journal.AppendAchievement(entry); err != nil {
		return models.AchievementEntry{}, err
	}

	logger.Debug("achievement recorded")
	return entry, nil
}

// CompletePractice grows one flower and stamps the visit. Every call counts.
func (m *Model) CompletePractice(user models.UserRecord) (models.UserRecord, error) {
	now := m.timestamp()
	user.Flowers++
	user.LastVisit = &now

	if err := m.saveUser(user); err != nil {
		return models.UserRecord{}, err
	}

	logger.Info("practice completed", "flowers", user.Flowers)
	return user, nil
}

// CompletePracticeByID completes a catalog practice for the stored user.
// Unknown and locked practices are rejected.
func (m *Model) CompletePracticeByID(practiceID string) (models.UserRecord, error) {
	practice, ok := catalog.Practice(practiceID)
	if !ok {
		return models.UserRecord{}, apperrors.NewValidationError("practice", fmt.Sprintf("unknown practice %q", practiceID))
	}
	if practice.IsLocked {
		return models.UserRecord{}, apperrors.NewValidationError("practice", fmt.Sprintf("%q is locked", practice.Title))
	}

	user, err := m.RequireUser()
	if err != nil {
		return models.UserRecord{}, err
	}
	return m.CompletePractice(user)
}

// UpdateNotificationSettings replaces the reminder settings wholesale.
func (m *Model) UpdateNotificationSettings(user models.UserRecord, settings models.NotificationSettings) (models.UserRecord, error) {
	if err := validation.NotificationSettings(settings); err != nil {
		return models.UserRecord{}, err
	}

	user.Notifications = settings
	if err := m.saveUser(user); err != nil {
		return models.UserRecord{}, err
	}
	return user, nil
}

// SetSubscriptionLevel switches the display tier. There is no payment step.
func (m *Model) SetSubscriptionLevel(user models.UserRecord, level models.SubscriptionLevel) (models.UserRecord, error) {
	if err := validation.SubscriptionLevel(level); err != nil {
		return models.UserRecord{}, err
	}

	user.SubscriptionLevel = level
	if err := m.saveUser(user); err != nil {
		return models.UserRecord{}, err
	}

	logger.Info("subscription level changed", "level", level)
	return user, nil
}

// RequireUser loads the user and fails with ErrNotOnboarded when there is none.
func (m *Model) RequireUser() (models.UserRecord, error) {
	user, ok, err := m.LoadUser()
	if err != nil {
		return models.UserRecord{}, err
	}
	if !ok {
		return models.UserRecord{}, apperrors.ErrNotOnboarded
	}
	return user, nil
}

// IsContentUnlocked reports whether userTier reaches requiredTier.
func IsContentUnlocked(userTier, requiredTier models.SubscriptionLevel) bool {
	return models.IsContentUnlocked(userTier, requiredTier)
}

// Greeting returns the home screen salutation for the hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Доброе утро"
	case h < 18:
		return "Добрый день"
	default:
		return "Добрый вечер"
	}
}

func (m *Model) saveUser(user models.UserRecord) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return apperrors.NewStorageError("encode", constants.UserKey, err)
	}
	if err := m.store.Set(constants.UserKey, raw); err != nil {
		return apperrors.NewStorageError("set", constants.UserKey, err)
	}
	return nil
}
