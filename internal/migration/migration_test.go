package migration

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/resurs/migrations"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunner_FreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{})

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestRunner_ApplyInOrder(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE second (id INTEGER);")},
		"001_first.sql":  {Data: []byte("CREATE TABLE first (id INTEGER);")},
		"README.md":      {Data: []byte("ignored")},
	}
	runner := NewRunner(db, mfs)

	var messages []string
	applied, err := runner.Apply(func(msg string) { messages = append(messages, msg) })
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}
	if !strings.Contains(strings.Join(messages, "\n"), "001_first") {
		t.Errorf("expected progress messages, got %v", messages)
	}

	version, _ := runner.CurrentVersion()
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// Second run is a no-op
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on second run, got %d", applied)
	}
}

func TestRunner_FailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE ok (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE nope (")},
	}
	runner := NewRunner(db, mfs)

	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before failure, got %d", applied)
	}
	version, _ := runner.CurrentVersion()
	if version != 1 {
		t.Errorf("expected version to stay at 1, got %d", version)
	}
}

func TestRunner_InvalidFilenames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"no underscore", "001.sql"},
		{"non numeric", "abc_init.sql"},
		{"zero version", "000_init.sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(openTestDB(t), fstest.MapFS{tt.file: {Data: []byte("SELECT 1;")}})
			if _, err := runner.ReadMigrations(); err == nil {
				t.Errorf("expected error for %s", tt.file)
			}
		})
	}
}

func TestRunner_DuplicateVersions(t *testing.T) {
	runner := NewRunner(openTestDB(t), fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"1_b.sql":   {Data: []byte("SELECT 1;")},
	})
	if _, err := runner.ReadMigrations(); err == nil {
		t.Error("expected duplicate version error")
	}
}

func TestRunner_NewerDatabaseRejected(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{"001_a.sql": {Data: []byte("SELECT 1;")}})
	if err := runner.ensureVersionTable(); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (5)"); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for newer schema")
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("failed to open embedded migrations: %v", err)
	}
	db := openTestDB(t)
	runner := NewRunner(db, sub)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("embedded migrations failed: %v", err)
	}
	st, err := runner.Status()
	if err != nil {
		t.Fatal(err)
	}
	if !st.UpToDate() {
		t.Errorf("expected up to date, got current=%d latest=%d", st.Current, st.Latest)
	}
	if _, err := db.Exec("INSERT INTO kv (key, value, updated_at) VALUES ('k', 'v', 'now')"); err != nil {
		t.Errorf("kv table missing: %v", err)
	}
}
