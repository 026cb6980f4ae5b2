package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/constants"
	"github.com/julianstephens/resurs/internal/keyring"
	"github.com/julianstephens/resurs/internal/migration"
	"github.com/julianstephens/resurs/internal/validation"
)

// schemaReporter is implemented by the SQL stores.
type schemaReporter interface {
	SchemaStatus() (migration.Status, error)
}

// errSkipped marks a check that does not apply to the current store.
type errSkipped struct{ reason string }

func (e errSkipped) Error() string { return e.reason }

type check struct {
	name string
	run  func(ctx *cli.Context) error
	// warnOnly checks print ⚠ instead of failing the run
	warnOnly bool
	// needsStore checks are skipped when the store cannot be loaded
	needsStore bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsStore: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsStore: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "User record", run: checkUserRecord, needsStore: true},
	{name: "Mood journal", run: checkMoodJournal, needsStore: true},
	{name: "Legacy moods", run: checkLegacyMoods, warnOnly: true, needsStore: true},
	{name: "Achievements", run: checkAchievements, needsStore: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
	{name: "Affirmation provider", run: checkAffirmationProvider, warnOnly: true},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClockTimezone() }},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := true

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		storeReachable = false
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsStore && !storeReachable {
			fmt.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case isSkipped(err):
			fmt.Printf("⊘ %s: SKIPPED (%v)\n", c.name, err)
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func isSkipped(err error) bool {
	_, ok := err.(errSkipped)
	return ok
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query storage: %w", err)
	}
	return nil
}

func schemaStatus(ctx *cli.Context) (migration.Status, error) {
	reporter, ok := ctx.Store.(schemaReporter)
	if !ok {
		return migration.Status{}, errSkipped{"store has no schema"}
	}
	return reporter.SchemaStatus()
}

func checkSchemaVersion(ctx *cli.Context) error {
	_, err := schemaStatus(ctx)
	return err
}

func checkMigrationsComplete(ctx *cli.Context) error {
	st, err := schemaStatus(ctx)
	if err != nil {
		return err
	}
	if !st.UpToDate() {
		return fmt.Errorf("%d pending migration(s), schema at version %d of %d", len(st.Pending), st.Current, st.Latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if err != nil {
		return errSkipped{"PostgreSQL stores are backed up by the server"}
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'resurs backup create'")
	}
	return nil
}

// checkUserRecord loads the user through the model, so an old record is
// migrated before it is audited.
func checkUserRecord(ctx *cli.Context) error {
	user, ok, err := ctx.Model.LoadUser()
	if err != nil {
		return err
	}
	if !ok {
		return errSkipped{"nobody has onboarded yet"}
	}
	result := validation.New().ValidateUser(user)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkMoodJournal(ctx *cli.Context) error {
	entries, err := ctx.Model.Journal().Moods()
	if err != nil {
		return err
	}
	result := withoutLegacy(validation.New().ValidateMoods(entries))
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

// checkLegacyMoods only warns: legacy values still decode, and they are
// rewritten the next time the journal is saved.
func checkLegacyMoods(ctx *cli.Context) error {
	entries, err := ctx.Model.Journal().Moods()
	if err != nil {
		return err
	}
	legacy := 0
	for _, c := range validation.New().ValidateMoods(entries).Conflicts {
		if c.Type == validation.ConflictLegacyMood {
			legacy++
		}
	}
	if legacy > 0 {
		return fmt.Errorf("%d mood entr(ies) use legacy mood names; they are rewritten on the next check-in", legacy)
	}
	return nil
}

func withoutLegacy(result validation.ValidationResult) validation.ValidationResult {
	var filtered validation.ValidationResult
	for _, c := range result.Conflicts {
		if c.Type != validation.ConflictLegacyMood {
			filtered.Conflicts = append(filtered.Conflicts, c)
		}
	}
	return filtered
}

func checkAchievements(ctx *cli.Context) error {
	entries, err := ctx.Model.Journal().Achievements()
	if err != nil {
		return err
	}
	result := validation.New().ValidateAchievements(entries)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available; use %s for the API key instead", constants.EnvAPIKey)
	}
	return nil
}

func checkAffirmationProvider(ctx *cli.Context) error {
	if ctx.Config.APIKey == "" {
		return fmt.Errorf("no API key configured; built-in affirmations will be shown")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}
