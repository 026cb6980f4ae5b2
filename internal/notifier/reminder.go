package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/resurs/internal/constants"
	"github.com/julianstephens/resurs/internal/models"
)

type Kind string

const (
	KindMorning Kind = "morning"
	KindEvening Kind = "evening"
	KindWeekly  Kind = "weekly"
)

// EveningTime is when the evening practice reminder is meant to fire.
const EveningTime = "21:00"

// Reminder is one notification ready to send.
type Reminder struct {
	Kind  Kind
	Title string
	Text  string
	// At is the suggested delivery time (HH:MM); weekly reminders have none.
	At string
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindMorning, KindEvening, KindWeekly:
		return k, nil
	}
	return "", fmt.Errorf("unknown reminder kind %q (want morning, evening or weekly)", s)
}

// Enabled reports whether the user switched reminders of kind on.
func Enabled(kind Kind, s models.NotificationSettings) bool {
	switch kind {
	case KindMorning:
		return s.MorningEnabled
	case KindEvening:
		return s.EveningEnabled
	case KindWeekly:
		return s.WeeklyEnabled
	}
	return false
}

// BuildReminder composes the notification for kind.
func BuildReminder(kind Kind, user models.UserRecord) Reminder {
	switch kind {
	case KindMorning:
		return Reminder{
			Kind:  kind,
			Title: "Утренний ритуал",
			Text:  fmt.Sprintf("%s, начни день с короткой практики. Твой сад ждёт полива.", user.Name),
			At:    MorningTime(user.Notifications.WakeUpTime),
		}
	case KindEvening:
		return Reminder{
			Kind:  kind,
			Title: "Вечерняя практика",
			Text:  "Мягко заверши день и отпусти тревоги.",
			At:    EveningTime,
		}
	default:
		return Reminder{
			Kind:  KindWeekly,
			Title: "Итоги недели",
			Text:  fmt.Sprintf("В твоём саду уже %d цветов. Загляни в дневник и отметь свои победы.", user.Flowers),
		}
	}
}

// MorningTime is one hour before wakeUp; an unparsable value falls back to
// the default wake-up time.
func MorningTime(wakeUp string) string {
	t, err := time.Parse(constants.TimeFormat, wakeUp)
	if err != nil {
		t, _ = time.Parse(constants.TimeFormat, constants.DefaultWakeUpTime)
	}
	return t.Add(-time.Hour).Format(constants.TimeFormat)
}

// Message is the text handed to the tray.
func (r Reminder) Message() string {
	return r.Title + ": " + r.Text
}
