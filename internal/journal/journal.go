// Package journal keeps the append-only mood and achievement logs.
//
// Each collection lives under one storage key as a JSON array, newest entry
// first. An append reads the array, prepends and writes the whole array back.
package journal

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/resurs/internal/constants"
	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/storage"
)

type Journal struct {
	store storage.Provider
}

func New(store storage.Provider) *Journal {
	return &Journal{store: store}
}

// AppendMood prepends entry to the mood log.
func (j *Journal) AppendMood(entry models.MoodEntry) error {
	entries, err := j.Moods()
	if err != nil {
		return err
	}
	entries = append([]models.MoodEntry{entry}, entries...)
	return j.write(constants.MoodKey, entries)
}

// Moods returns the mood log, newest first. A missing key is an empty log.
func (j *Journal) Moods() ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	if err := j.read(constants.MoodKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendAchievement prepends entry to the achievement log.
func (j *Journal) AppendAchievement(entry models.AchievementEntry) error {
	entries, err := j.Achievements()
	if err != nil {
		return err
	}
	entries = append([]models.AchievementEntry{entry}, entries...)
	return j.write(constants.AchievementsKey, entries)
}

// Achievements returns the achievement log, newest first.
func (j *Journal) Achievements() ([]models.AchievementEntry, error) {
	entries := []models.AchievementEntry{}
	if err := j.read(constants.AchievementsKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (j *Journal) read(key string, out interface{}) error {
	raw, ok, err := j.store.Get(key)
	if err != nil {
		return apperrors.NewStorageError("get", key, err)
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewStorageError("decode", key, fmt.Errorf("malformed collection: %w", err))
	}
	return nil
}

func (j *Journal) write(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewStorageError("encode", key, err)
	}
	if err := j.store.Set(key, raw); err != nil {
		return apperrors.NewStorageError("set", key, err)
	}
	return nil
}
