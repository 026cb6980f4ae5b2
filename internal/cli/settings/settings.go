package settings

import (
	"fmt"
	"time"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/notifier"
	"github.com/julianstephens/resurs/internal/scheduler"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WakeUp  *string `help:"Wake-up time (HH:MM); the morning reminder fires an hour earlier."`
	Morning *bool   `help:"Enable or disable the morning reminder."`
	Evening *bool   `help:"Enable or disable the evening reminder."`
	Weekly  *bool   `help:"Enable or disable the weekly summary."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Model.RequireUser()
	if err != nil {
		return err
	}
	settings := user.Notifications

	if c.List {
		fmt.Println("Notification Settings:")
		fmt.Printf("  Wake-up time:      %s\n", settings.WakeUpTime)
		fmt.Printf("  Morning reminder:  %v (%s)\n", settings.MorningEnabled, notifier.MorningTime(settings.WakeUpTime))
		fmt.Printf("  Evening reminder:  %v (%s)\n", settings.EveningEnabled, notifier.EveningTime)
		fmt.Printf("  Weekly summary:    %v (%s %s)\n", settings.WeeklyEnabled, scheduler.WeeklyDay, notifier.EveningTime)

		upcoming, err := scheduler.New().Upcoming(settings, time.Now())
		if err != nil {
			return err
		}
		if len(upcoming) > 0 {
			fmt.Println("\nUpcoming:")
			for _, o := range upcoming {
				fmt.Printf("  %-8s %s\n", o.Kind, cli.FormatDate(o.At))
			}
		}
		return nil
	}

	updated := false
	if c.WakeUp != nil {
		settings.WakeUpTime = *c.WakeUp
		updated = true
	}
	if c.Morning != nil {
		settings.MorningEnabled = *c.Morning
		updated = true
	}
	if c.Evening != nil {
		settings.EveningEnabled = *c.Evening
		updated = true
	}
	if c.Weekly != nil {
		settings.WeeklyEnabled = *c.Weekly
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if _, err := ctx.Model.UpdateNotificationSettings(user, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
