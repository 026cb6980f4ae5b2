package models

import (
	"strconv"
	"sync"
	"time"
)

type MoodEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Mood MoodType  `json:"mood"`
	Note string    `json:"note"`
}

type AchievementEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewEntryID returns a millisecond timestamp id. Ids handed out by this
// process are strictly increasing, so two entries created in the same
// millisecond never collide.
func NewEntryID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}
