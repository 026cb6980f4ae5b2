package models

import (
	"time"

	"github.com/julianstephens/resurs/internal/constants"
)

// NotificationSettings holds the reminder preferences. Delivery timing is
// left to whatever schedules `resurs remind`.
type NotificationSettings struct {
	WakeUpTime     string `json:"wakeUpTime" validate:"required,datetime=15:04"` // HH:MM format
	MorningEnabled bool   `json:"morningEnabled"`
	EveningEnabled bool   `json:"eveningEnabled"`
	WeeklyEnabled  bool   `json:"weeklyEnabled"`
}

// AnyEnabled reports whether at least one reminder is switched on.
func (n NotificationSettings) AnyEnabled() bool {
	return n.MorningEnabled || n.EveningEnabled || n.WeeklyEnabled
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		WakeUpTime:     constants.DefaultWakeUpTime,
		MorningEnabled: constants.DefaultMorningEnabled,
		EveningEnabled: constants.DefaultEveningEnabled,
		WeeklyEnabled:  constants.DefaultWeeklyEnabled,
	}
}

// UserRecord is the single persisted user. Field names match the browser
// build so its exported data decodes unchanged.
type UserRecord struct {
	Name              string               `json:"name"`
	IsOnboarded       bool                 `json:"isOnboarded"`
	SubscriptionLevel SubscriptionLevel    `json:"subscriptionLevel"`
	Flowers           int                  `json:"flowers"` // completed practices
	Streak            int                  `json:"streak"`
	LastVisit         *time.Time           `json:"lastVisit"`
	Notifications     NotificationSettings `json:"notifications"`
}
