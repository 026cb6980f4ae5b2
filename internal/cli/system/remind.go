package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/notifier"
)

// RemindCmd sends one reminder through the tray companion, or prints it
// when no tray is running. It is meant to be run by cron or a systemd timer
// at the time the reminder is due.
type RemindCmd struct {
	Kind   string `help:"Reminder to send (morning|evening|weekly)." enum:"morning,evening,weekly" required:""`
	DryRun bool   `help:"Print the reminder instead of sending it."`
	Force  bool   `help:"Send even when this reminder is switched off in settings."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	kind, err := notifier.ParseKind(c.Kind)
	if err != nil {
		return err
	}

	user, err := ctx.Model.RequireUser()
	if err != nil {
		return err
	}

	if !c.Force && !notifier.Enabled(kind, user.Notifications) {
		if c.DryRun {
			fmt.Printf("The %s reminder is switched off in settings.\n", kind)
		}
		return nil
	}

	reminder := notifier.BuildReminder(kind, user)
	if c.DryRun {
		if reminder.At != "" {
			fmt.Printf("[DryRun] %s (%s)\n", reminder.Message(), reminder.At)
		} else {
			fmt.Println("[DryRun] " + reminder.Message())
		}
		return nil
	}

	if err := ctx.Notifier.Notify(context.Background(), reminder.Message()); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	logger.Info("reminder sent", "kind", kind)
	return nil
}
