// Package scheduler works out when enabled reminders are next due. Reminder
// times are wall-clock HH:MM values in the location of the reference time.
package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/resurs/internal/constants"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/notifier"
)

// WeeklyDay is when the weekly summary is due; it shares the evening slot.
const WeeklyDay = time.Sunday

// Occurrence is the next firing of one reminder kind.
type Occurrence struct {
	Kind notifier.Kind
	At   time.Time
}

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// Upcoming returns the next occurrence of every enabled reminder after now,
// earliest first.
func (s *Scheduler) Upcoming(settings models.NotificationSettings, now time.Time) ([]Occurrence, error) {
	var out []Occurrence
	for _, kind := range []notifier.Kind{notifier.KindMorning, notifier.KindEvening, notifier.KindWeekly} {
		if !notifier.Enabled(kind, settings) {
			continue
		}
		at, err := s.Next(kind, settings, now)
		if err != nil {
			return nil, err
		}
		out = append(out, Occurrence{Kind: kind, At: at})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out, nil
}

// Next returns the first time strictly after now that kind is due,
// regardless of whether it is enabled.
func (s *Scheduler) Next(kind notifier.Kind, settings models.NotificationSettings, now time.Time) (time.Time, error) {
	switch kind {
	case notifier.KindMorning:
		return nextDaily(now, notifier.MorningTime(settings.WakeUpTime))
	case notifier.KindEvening:
		return nextDaily(now, notifier.EveningTime)
	case notifier.KindWeekly:
		return nextWeekly(now, WeeklyDay, notifier.EveningTime)
	}
	return time.Time{}, fmt.Errorf("unknown reminder kind %q", kind)
}

func parseTime(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func atMinutes(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

func nextDaily(now time.Time, hhmm string) (time.Time, error) {
	minutes, err := parseTime(hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time: %w", err)
	}
	t := atMinutes(now, minutes)
	if !t.After(now) {
		t = atMinutes(now.AddDate(0, 0, 1), minutes)
	}
	return t, nil
}

func nextWeekly(now time.Time, day time.Weekday, hhmm string) (time.Time, error) {
	minutes, err := parseTime(hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time: %w", err)
	}
	offset := (int(day) - int(now.Weekday()) + 7) % 7
	t := atMinutes(now.AddDate(0, 0, offset), minutes)
	if !t.After(now) {
		t = atMinutes(now.AddDate(0, 0, offset+7), minutes)
	}
	return t, nil
}
