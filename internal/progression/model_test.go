package progression

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/resurs/internal/constants"
	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/storage/memory"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func setupModel(t *testing.T) (*Model, *memory.Store, *testClock) {
	t.Helper()
	store := memory.New()
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	clock := &testClock{t: time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)}
	return New(store, nil, WithClock(clock.Now)), store, clock
}

func onboard(t *testing.T, m *Model) models.UserRecord {
	t.Helper()
	user, err := m.CompleteOnboarding("Анна", models.MoodCalm)
	if err != nil {
		t.Fatalf("CompleteOnboarding() failed: %v", err)
	}
	return user
}

func TestCompleteOnboarding(t *testing.T) {
	m, _, clock := setupModel(t)

	if _, ok, err := m.LoadUser(); err != nil || ok {
		t.Fatalf("expected no user before onboarding, got ok=%v err=%v", ok, err)
	}

	user := onboard(t, m)

	now := clock.Now()
	want := models.UserRecord{
		Name:              "Анна",
		IsOnboarded:       true,
		SubscriptionLevel: models.LevelFree,
		Flowers:           0,
		Streak:            1,
		LastVisit:         &now,
		Notifications: models.NotificationSettings{
			WakeUpTime: "07:00",
		},
	}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}

	loaded, ok, err := m.LoadUser()
	if err != nil || !ok {
		t.Fatalf("expected stored user, got ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(want, loaded); diff != "" {
		t.Errorf("stored user mismatch (-want +got):\n%s", diff)
	}

	moods, err := m.Journal().Moods()
	if err != nil {
		t.Fatalf("Moods() failed: %v", err)
	}
	if len(moods) != 1 {
		t.Fatalf("expected 1 mood entry, got %d", len(moods))
	}
	if moods[0].Mood != models.MoodCalm || moods[0].Note != "Первый вход в приложение" {
		t.Errorf("unexpected onboarding entry: %+v", moods[0])
	}
	if !moods[0].Date.Equal(now) {
		t.Errorf("expected entry date %v, got %v", now, moods[0].Date)
	}
}

func TestCompleteOnboarding_Rejects(t *testing.T) {
	tests := []struct {
		name string
		user string
		mood models.MoodType
	}{
		{"empty name", "   ", models.MoodCalm},
		{"legacy mood", "Анна", models.MoodNeedSupport},
		{"unknown mood", "Анна", models.MoodType("BORED")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, _ := setupModel(t)
			_, err := m.CompleteOnboarding(tt.user, tt.mood)
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if store.Writes != 0 {
				t.Errorf("expected nothing persisted, got %d writes", store.Writes)
			}
		})
	}
}

func TestCompleteOnboarding_OnlyOnce(t *testing.T) {
	m, store, _ := setupModel(t)
	onboard(t, m)
	writes := store.Writes

	_, err := m.CompleteOnboarding("Оля", models.MoodJoy)
	if !errors.Is(err, apperrors.ErrAlreadyOnboarded) || !apperrors.IsValidation(err) {
		t.Fatalf("expected already-onboarded validation error, got %v", err)
	}
	if store.Writes != writes {
		t.Error("expected second onboarding to write nothing")
	}

	user, _, _ := m.LoadUser()
	if user.Name != "Анна" {
		t.Errorf("expected original user kept, got %s", user.Name)
	}
}

func TestCompleteOnboarding_StorageError(t *testing.T) {
	m, store, _ := setupModel(t)
	store.FailSet = errors.New("quota exceeded")

	_, err := m.CompleteOnboarding("Анна", models.MoodCalm)
	var se *apperrors.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Op != "set" || se.Key != constants.MoodKey {
		t.Errorf("unexpected error fields: %+v", se)
	}

	store.FailSet = nil
	if _, ok, _ := m.LoadUser(); ok {
		t.Error("expected no user after failed onboarding")
	}
}

func TestCompleteOnboarding_MoodWriteFailsThenRetry(t *testing.T) {
	m, store, _ := setupModel(t)
	store.FailSet = errors.New("quota exceeded")
	store.FailSetKey = constants.MoodKey

	if _, err := m.CompleteOnboarding("Анна", models.MoodCalm); err == nil {
		t.Fatal("expected error when the mood log cannot be written")
	}
	if _, ok, _ := m.LoadUser(); ok {
		t.Fatal("user record must not be stored when the first mood entry failed")
	}

	store.FailSet = nil
	user, err := m.CompleteOnboarding("Анна", models.MoodCalm)
	if err != nil {
		t.Fatalf("retry after failed mood write failed: %v", err)
	}
	if !user.IsOnboarded {
		t.Error("expected onboarded user after retry")
	}

	moods, err := m.Journal().Moods()
	if err != nil {
		t.Fatalf("Moods() failed: %v", err)
	}
	if len(moods) != 1 || moods[0].Note != constants.OnboardingNote {
		t.Errorf("expected one onboarding entry, got %+v", moods)
	}
}

func TestCompleteOnboarding_UserWriteFailsThenRetry(t *testing.T) {
	m, store, _ := setupModel(t)
	store.FailSet = errors.New("disk full")
	store.FailSetKey = constants.UserKey

	_, err := m.CompleteOnboarding("Анна", models.MoodJoy)
	var se *apperrors.StorageError
	if !errors.As(err, &se) || se.Key != constants.UserKey {
		t.Fatalf("expected user StorageError, got %v", err)
	}

	store.FailSet = nil
	if _, err := m.CompleteOnboarding("Анна", models.MoodJoy); err != nil {
		t.Fatalf("retry failed: %v", err)
	}

	// The entry written by the first attempt is reused
	moods, err := m.Journal().Moods()
	if err != nil {
		t.Fatalf("Moods() failed: %v", err)
	}
	if len(moods) != 1 {
		t.Errorf("expected 1 mood entry after retry, got %d", len(moods))
	}
}

func TestCompletePractice(t *testing.T) {
	m, _, clock := setupModel(t)
	user := onboard(t, m)

	const k = 5
	for i := 0; i < k; i++ {
		clock.Advance(time.Minute)
		var err error
		user, err = m.CompletePractice(user)
		if err != nil {
			t.Fatalf("CompletePractice() failed: %v", err)
		}
	}

	if user.Flowers != k {
		t.Errorf("expected %d flowers, got %d", k, user.Flowers)
	}
	if user.LastVisit == nil || !user.LastVisit.Equal(clock.Now()) {
		t.Errorf("expected lastVisit %v, got %v", clock.Now(), user.LastVisit)
	}

	loaded, _, _ := m.LoadUser()
	if loaded.Flowers != k {
		t.Errorf("expected stored flowers %d, got %d", k, loaded.Flowers)
	}
}

func TestCompletePractice_StorageError(t *testing.T) {
	m, store, _ := setupModel(t)
	user := onboard(t, m)

	store.FailSet = errors.New("disk full")
	if _, err := m.CompletePractice(user); !apperrors.IsStorage(err) {
		t.Fatalf("expected StorageError, got %v", err)
	}

	store.FailSet = nil
	loaded, _, _ := m.LoadUser()
	if loaded.Flowers != 0 {
		t.Errorf("expected stored flowers unchanged, got %d", loaded.Flowers)
	}
}

func TestCompletePracticeByID(t *testing.T) {
	m, _, _ := setupModel(t)

	if _, err := m.CompletePracticeByID("p1"); !errors.Is(err, apperrors.ErrNotOnboarded) {
		t.Errorf("expected ErrNotOnboarded, got %v", err)
	}

	onboard(t, m)

	user, err := m.CompletePracticeByID("p1")
	if err != nil {
		t.Fatalf("CompletePracticeByID() failed: %v", err)
	}
	if user.Flowers != 1 {
		t.Errorf("expected 1 flower, got %d", user.Flowers)
	}

	if _, err := m.CompletePracticeByID("p5"); !apperrors.IsValidation(err) {
		t.Errorf("expected locked practice to be rejected, got %v", err)
	}
	if _, err := m.CompletePracticeByID("nope"); !apperrors.IsValidation(err) {
		t.Errorf("expected unknown practice to be rejected, got %v", err)
	}
}

func TestRecordMoodCheckin(t *testing.T) {
	m, store, _ := setupModel(t)
	user := onboard(t, m)

	entry, err := m.RecordMoodCheckin(models.MoodAnxiety, "перед встречей")
	if err != nil {
		t.Fatalf("RecordMoodCheckin() failed: %v", err)
	}

	moods, _ := m.Journal().Moods()
	if len(moods) != 2 || moods[0].ID != entry.ID {
		t.Fatalf("expected new entry first, got %+v", moods)
	}

	loaded, _, _ := m.LoadUser()
	if diff := cmp.Diff(user, loaded); diff != "" {
		t.Errorf("mood check-in must not change the user (-before +after):\n%s", diff)
	}

	writes := store.Writes
	if _, err := m.RecordMoodCheckin(models.MoodReadyToGrow, ""); !apperrors.IsValidation(err) {
		t.Errorf("expected legacy mood to be rejected, got %v", err)
	}
	if store.Writes != writes {
		t.Error("rejected check-in must not write")
	}
}

func TestRecordAchievement(t *testing.T) {
	m, store, _ := setupModel(t)

	for _, text := range []string{"", "   "} {
		if _, err := m.RecordAchievement(text); !apperrors.IsValidation(err) {
			t.Errorf("expected ValidationError for %q, got %v", text, err)
		}
	}
	if store.Writes != 0 {
		t.Errorf("expected nothing persisted, got %d writes", store.Writes)
	}

	entry, err := m.RecordAchievement("  Я молодец ")
	if err != nil {
		t.Fatalf("RecordAchievement() failed: %v", err)
	}
	if entry.Text != "Я молодец" {
		t.Errorf("expected trimmed text, got %q", entry.Text)
	}

	wins, _ := m.Journal().Achievements()
	if len(wins) != 1 || wins[0].Text != "Я молодец" {
		t.Errorf("expected exactly one achievement, got %+v", wins)
	}
}

func TestUpdateNotificationSettings(t *testing.T) {
	m, _, _ := setupModel(t)
	user := onboard(t, m)

	settings := models.NotificationSettings{WakeUpTime: "06:45", MorningEnabled: true, WeeklyEnabled: true}
	updated, err := m.UpdateNotificationSettings(user, settings)
	if err != nil {
		t.Fatalf("UpdateNotificationSettings() failed: %v", err)
	}
	if diff := cmp.Diff(settings, updated.Notifications); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"7:00", "24:00", "12:60", "", "noon"} {
		_, err := m.UpdateNotificationSettings(updated, models.NotificationSettings{WakeUpTime: bad})
		if !apperrors.IsValidation(err) {
			t.Errorf("expected ValidationError for %q, got %v", bad, err)
		}
	}

	loaded, _, _ := m.LoadUser()
	if diff := cmp.Diff(settings, loaded.Notifications); diff != "" {
		t.Errorf("stored settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSubscriptionLevel(t *testing.T) {
	m, _, _ := setupModel(t)
	user := onboard(t, m)

	user, err := m.SetSubscriptionLevel(user, models.LevelExtended)
	if err != nil {
		t.Fatalf("SetSubscriptionLevel() failed: %v", err)
	}
	if user.SubscriptionLevel != models.LevelExtended {
		t.Errorf("expected extended, got %s", user.SubscriptionLevel)
	}

	if _, err := m.SetSubscriptionLevel(user, "gold"); !apperrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestLoadUser_Migration(t *testing.T) {
	m, store, _ := setupModel(t)
	legacy := `{"name":"Оля","isOnboarded":true,"flowers":3,"streak":1,"lastVisit":"2025-01-01T10:00:00Z"}`
	_ = store.Set(constants.UserKey, []byte(legacy))
	writes := store.Writes

	user, ok, err := m.LoadUser()
	if err != nil || !ok {
		t.Fatalf("expected migrated user, got ok=%v err=%v", ok, err)
	}
	if user.SubscriptionLevel != models.LevelFree {
		t.Errorf("expected free tier, got %q", user.SubscriptionLevel)
	}
	if diff := cmp.Diff(models.DefaultNotificationSettings(), user.Notifications); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
	if user.Flowers != 3 || user.Name != "Оля" {
		t.Errorf("expected other fields kept, got %+v", user)
	}
	if store.Writes != writes+1 {
		t.Errorf("expected patched record to be saved once, got %d writes", store.Writes-writes)
	}

	// Second load finds nothing left to patch
	again, _, err := m.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser() failed: %v", err)
	}
	if store.Writes != writes+1 {
		t.Error("expected migration to be idempotent")
	}
	if diff := cmp.Diff(user, again); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestLoadUser_UnknownTier(t *testing.T) {
	m, store, _ := setupModel(t)
	raw, _ := json.Marshal(map[string]interface{}{
		"name":              "Оля",
		"isOnboarded":       true,
		"subscriptionLevel": "platinum",
		"flowers":           1,
		"streak":            1,
		"notifications":     map[string]interface{}{"wakeUpTime": "09:00", "eveningEnabled": true},
	})
	_ = store.Set(constants.UserKey, raw)

	user, _, err := m.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser() failed: %v", err)
	}
	if user.SubscriptionLevel != models.LevelFree {
		t.Errorf("expected unknown tier to normalize to free, got %s", user.SubscriptionLevel)
	}
	if user.Notifications.WakeUpTime != "09:00" || !user.Notifications.EveningEnabled {
		t.Errorf("expected stored notifications kept, got %+v", user.Notifications)
	}
}

func TestLoadUser_Malformed(t *testing.T) {
	m, store, _ := setupModel(t)
	_ = store.Set(constants.UserKey, []byte(`{"name":`))

	_, _, err := m.LoadUser()
	var se *apperrors.StorageError
	if !errors.As(err, &se) || se.Op != "decode" {
		t.Fatalf("expected decode StorageError, got %v", err)
	}
}

func TestIsContentUnlocked(t *testing.T) {
	for _, user := range models.Levels {
		for _, required := range models.Levels {
			want := user.Rank() >= required.Rank()
			if got := IsContentUnlocked(user, required); got != want {
				t.Errorf("IsContentUnlocked(%s, %s) = %v, want %v", user, required, got, want)
			}
		}
		if !IsContentUnlocked(user, models.LevelFree) {
			t.Errorf("free content must be open to %s", user)
		}
		if user != models.LevelPremium && IsContentUnlocked(user, models.LevelPremium) {
			t.Errorf("premium content must be closed to %s", user)
		}
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Доброе утро"},
		{11, "Доброе утро"},
		{12, "Добрый день"},
		{17, "Добрый день"},
		{18, "Добрый вечер"},
		{23, "Добрый вечер"},
	}
	for _, tt := range tests {
		now := time.Date(2026, 1, 1, tt.hour, 0, 0, 0, time.Local)
		if got := Greeting(now); got != tt.want {
			t.Errorf("Greeting(%02d:00) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
