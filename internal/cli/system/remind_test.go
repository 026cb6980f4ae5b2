package system

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/notifier"
)

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, text)
	return nil
}

func TestRemindCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	rec := &recordingNotifier{}
	ctx.Notifier = rec

	user, err := ctx.Model.CompleteOnboarding("Анна", models.MoodCalm)
	if err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}

	// Reminders start switched off
	if err := (&RemindCmd{Kind: "morning"}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if len(rec.sent) != 0 {
		t.Fatalf("disabled reminder was sent: %v", rec.sent)
	}

	settings := user.Notifications
	settings.MorningEnabled = true
	if _, err := ctx.Model.UpdateNotificationSettings(user, settings); err != nil {
		t.Fatalf("UpdateNotificationSettings failed: %v", err)
	}

	if err := (&RemindCmd{Kind: "morning"}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if len(rec.sent) != 1 || !strings.Contains(rec.sent[0], "Анна") {
		t.Fatalf("unexpected notifications: %v", rec.sent)
	}

	// --force ignores the setting, --dry-run never sends
	if err := (&RemindCmd{Kind: "weekly", Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced remind failed: %v", err)
	}
	if err := (&RemindCmd{Kind: "evening", Force: true, DryRun: true}).Run(ctx); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if len(rec.sent) != 2 {
		t.Errorf("sent %d notifications, want 2", len(rec.sent))
	}
}

func TestRemindCmd_NotOnboarded(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()
	ctx.Notifier = &recordingNotifier{}

	err := (&RemindCmd{Kind: "evening", Force: true}).Run(ctx)
	if !errors.Is(err, apperrors.ErrNotOnboarded) {
		t.Errorf("expected ErrNotOnboarded, got %v", err)
	}
}

func TestRemindCmd_NotifierFailure(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()
	ctx.Notifier = &recordingNotifier{err: errors.New("tray not running")}

	if _, err := ctx.Model.CompleteOnboarding("Анна", models.MoodCalm); err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}

	if err := (&RemindCmd{Kind: "evening", Force: true}).Run(ctx); err == nil {
		t.Error("expected the notifier error to be returned")
	}
}

func TestRemindCmd_PrintsWithoutTray(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only moves the config dir on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	var out bytes.Buffer
	n := notifier.New()
	n.Fallback = &out
	ctx.Notifier = n

	if _, err := ctx.Model.CompleteOnboarding("Анна", models.MoodCalm); err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}
	if err := (&RemindCmd{Kind: "evening", Force: true}).Run(ctx); err != nil {
		t.Fatalf("remind without tray failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "🔔 ") {
		t.Errorf("expected the reminder on the fallback writer, got %q", out.String())
	}
}
