package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/resurs/internal/affirmation"
	"github.com/julianstephens/resurs/internal/backup"
	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/config"
	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/notifier"
	"github.com/julianstephens/resurs/internal/progression"
	"github.com/julianstephens/resurs/internal/storage"
	"github.com/julianstephens/resurs/internal/storage/postgres"
)

// Notifier delivers reminder text to the desktop.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type Context struct {
	Store        storage.Provider
	Model        *progression.Model
	Affirmations *affirmation.Service
	Notifier     Notifier
	Config       config.Config
}

// NewContext wires the model, the affirmation service and the notifier
// around store.
func NewContext(store storage.Provider, cfg config.Config) *Context {
	provider := affirmation.NewGenAIProvider(cfg.APIKey, cfg.AffirmationModel)
	return &Context{
		Store:        store,
		Model:        progression.New(store, nil),
		Affirmations: affirmation.NewService(provider, cfg.AffirmationTimeout),
		Notifier:     notifier.New(),
		Config:       cfg,
	}
}

// IsLocal reports whether the store is a file that can be backed up.
func (c *Context) IsLocal() bool {
	_, isPostgres := c.Store.(*postgres.Store)
	return !isPostgres
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.IsLocal() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// BackupManager returns the manager for the current store, or
// backup.ErrUnsupported for PostgreSQL.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if !c.IsLocal() {
		return nil, backup.ErrUnsupported
	}
	return backup.NewManager(c.Store.GetConfigPath()), nil
}

// UserName returns the onboarded user's name, or empty when nobody has
// onboarded yet.
func (c *Context) UserName() string {
	user, ok, err := c.Model.LoadUser()
	if err != nil || !ok {
		return ""
	}
	return user.Name
}

// terminalIcons maps catalog icon tokens onto glyphs a terminal can show.
var terminalIcons = map[string]string{
	"smile":       "😊",
	"heart":       "💛",
	"zap":         "⚡",
	"anchor":      "⚓",
	"coffee":      "☕",
	"wind":        "🌬",
	"cloud-rain":  "🌧",
	"frown":       "😣",
	"help-circle": "❔",
}

// MoodBadge renders a mood as icon and label, e.g. "⚓ Спокойствие".
func MoodBadge(m models.MoodType) string {
	info, _ := catalog.MoodMetadata(m)
	icon, ok := terminalIcons[info.Icon]
	if !ok {
		icon = terminalIcons["help-circle"]
	}
	return icon + " " + info.Label
}

// MoodOptions lists the selectable moods for huh select fields.
func MoodOptions() []huh.Option[models.MoodType] {
	moods := catalog.Moods()
	opts := make([]huh.Option[models.MoodType], 0, len(moods))
	for _, m := range moods {
		opts = append(opts, huh.NewOption(MoodBadge(m.Type), m.Type))
	}
	return opts
}

// ParseMoodArg parses a --mood value and lists the accepted values on failure.
func ParseMoodArg(s string) (models.MoodType, error) {
	mood, err := models.ParseMood(s)
	if err != nil {
		names := ""
		for i, m := range catalog.Moods() {
			if i > 0 {
				names += ", "
			}
			names += string(m.Type)
		}
		return "", fmt.Errorf("%w (use one of: %s)", err, names)
	}
	return mood, nil
}

// FormatDate renders an entry timestamp in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format("02.01.2006 15:04")
}

// IsAborted reports whether err is the user closing a huh form.
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
